package controllers

import (
	"innovation-platform-api/config"
	"innovation-platform-api/models"
	"innovation-platform-api/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// GetProfile returns the current user together with the teams they belong
// to.
func GetProfile(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var teams []models.Team
	if err := config.DB.
		Joins("JOIN team_members ON team_members.team_id = teams.team_id").
		Where("team_members.user_id = ?", user.UserID).
		Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load teams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"teams": teams,
	})
}

// UpdateProfile applies self-service edits to the whitelisted profile
// fields only.
func UpdateProfile(c *gin.Context) {
	type profileUpdateRequest struct {
		Name       *string `json:"name"`
		Email      *string `json:"email"`
		Department *string `json:"department"`
		Interests  *string `json:"interests"`
		Skills     *string `json:"skills"`
	}

	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = utils.SanitizeInput(*req.Name)
	}
	if req.Email != nil {
		email := utils.SanitizeInput(*req.Email)
		if !utils.ValidateEmail(email) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
			return
		}
		updates["email"] = email
	}
	if req.Department != nil {
		updates["department"] = *req.Department
	}
	if req.Interests != nil {
		updates["interests"] = *req.Interests
	}
	if req.Skills != nil {
		updates["skills"] = *req.Skills
	}

	if len(updates) == 0 {
		c.JSON(http.StatusOK, gin.H{"user": user})
		return
	}
	updates["update_at"] = time.Now()

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetUsers lists users with page/limit pagination. Admin only.
func GetUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := config.DB.Model(&models.User{}).Where("delete_at IS NULL").Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count users"})
		return
	}

	var users []models.User
	if err := config.DB.Where("delete_at IS NULL").
		Order("create_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUser returns one user by id. Admin only.
func GetUser(c *gin.Context) {
	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", c.Param("userId")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// DeleteUser soft-deletes a user account. Admin only.
func DeleteUser(c *gin.Context) {
	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", c.Param("userId")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&user).Update("delete_at", now).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// UpdateUserRole changes a user's role. Admin only.
func UpdateUserRole(c *gin.Context) {
	type roleUpdateRequest struct {
		Role string `json:"role" binding:"required"`
	}

	var req roleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if !models.IsValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", c.Param("userId")).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"role":      req.Role,
		"update_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update role"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
