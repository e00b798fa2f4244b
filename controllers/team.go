package controllers

import (
	"innovation-platform-api/config"
	"innovation-platform-api/models"
	"innovation-platform-api/utils"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type createTeamRequest struct {
	Name        string `json:"name" binding:"required"`
	ChallengeID int    `json:"challenge_id" binding:"required"`
}

// CreateTeam creates a team for a challenge. The referenced challenge must
// exist and the authenticated creator becomes the sole initial member.
func CreateTeam(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and challenge_id are required"})
		return
	}

	var challenge models.Challenge
	if err := config.DB.Where("challenge_id = ? AND delete_at IS NULL", req.ChallengeID).First(&challenge).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Challenge not found"})
		return
	}

	userID, _ := c.Get("userID")
	now := time.Now()
	team := models.Team{
		Name:        utils.SanitizeInput(req.Name),
		CreatorID:   userID.(int),
		ChallengeID: req.ChallengeID,
		CreateAt:    &now,
		UpdateAt:    &now,
		Members: []models.TeamMember{
			{UserID: userID.(int), JoinedAt: &now},
		},
	}

	if err := config.DB.Create(&team).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create team"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team": team})
}

// GetTeams lists teams with page/limit pagination.
func GetTeams(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := config.DB.Model(&models.Team{}).Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to count teams"})
		return
	}

	var teams []models.Team
	if err := config.DB.
		Order("create_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Preload("Members.User").
		Preload("Challenge").
		Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load teams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teams": teams,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetTeam returns one team with members and challenge resolved.
func GetTeam(c *gin.Context) {
	var team models.Team
	if err := config.DB.
		Where("team_id = ?", c.Param("teamId")).
		Preload("Members.User").
		Preload("Challenge").
		Preload("Creator").
		First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": team})
}

// AddMember adds a user to a team. Unknown users are rejected, and so are
// users who are already members.
func AddMember(c *gin.Context) {
	type addMemberRequest struct {
		UserID int `json:"user_id" binding:"required"`
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var team models.Team
	if err := config.DB.Where("team_id = ?", c.Param("teamId")).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", req.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var count int64
	if err := config.DB.Model(&models.TeamMember{}).
		Where("team_id = ? AND user_id = ?", team.TeamID, user.UserID).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add member"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User is already a member of this team"})
		return
	}

	now := time.Now()
	member := models.TeamMember{
		TeamID:   team.TeamID,
		UserID:   user.UserID,
		JoinedAt: &now,
	}
	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add member"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member added successfully"})
}

// RemoveMember removes a user from a team; absent members are rejected.
func RemoveMember(c *gin.Context) {
	var team models.Team
	if err := config.DB.Where("team_id = ?", c.Param("teamId")).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	result := config.DB.
		Where("team_id = ? AND user_id = ?", team.TeamID, c.Param("userId")).
		Delete(&models.TeamMember{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove member"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User is not a member of this team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member removed successfully"})
}

// SendMessage appends a message to the team log, attributed to the caller
// with a server timestamp.
func SendMessage(c *gin.Context) {
	type messageRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var team models.Team
	if err := config.DB.Where("team_id = ?", c.Param("teamId")).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	userID, _ := c.Get("userID")
	now := time.Now()
	message := models.TeamMessage{
		TeamID:   team.TeamID,
		SenderID: userID.(int),
		Text:     req.Text,
		CreateAt: &now,
	}
	if err := config.DB.Create(&message).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"team_message": message})
}

// GetMessages returns the full message log with sender identity resolved.
func GetMessages(c *gin.Context) {
	var team models.Team
	if err := config.DB.Where("team_id = ?", c.Param("teamId")).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	var messages []models.TeamMessage
	if err := config.DB.
		Where("team_id = ?", team.TeamID).
		Order("create_at ASC").
		Preload("Sender").
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// DeleteTeam removes a team with its members and messages. Only the
// creator or an admin may delete it.
func DeleteTeam(c *gin.Context) {
	var team models.Team
	if err := config.DB.Where("team_id = ?", c.Param("teamId")).First(&team).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Team not found"})
		return
	}

	userID, _ := c.Get("userID")
	role, _ := c.Get("role")
	if team.CreatorID != userID.(int) && role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"message": "Only the team creator can delete the team"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("team_id = ?", team.TeamID).Delete(&models.TeamMember{}).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", team.TeamID).Delete(&models.TeamMessage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&team).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team deleted successfully"})
}
