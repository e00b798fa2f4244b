package controllers

import (
	"innovation-platform-api/config"
	"innovation-platform-api/models"
	"innovation-platform-api/services"
	"innovation-platform-api/utils"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// GetIdeaSpaces lists all idea spaces together with global challenge and
// idea counts for the dashboard.
func GetIdeaSpaces(c *gin.Context) {
	var spaces []models.IdeaSpace
	if err := config.DB.Where("delete_at IS NULL").Order("create_at DESC").Find(&spaces).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load idea spaces"})
		return
	}

	var totalChallenges int64
	if err := config.DB.Model(&models.Challenge{}).Where("delete_at IS NULL").Count(&totalChallenges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load counts"})
		return
	}

	var totalIdeas int64
	if err := config.DB.Model(&models.Idea{}).Count(&totalIdeas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load counts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"idea_spaces":      spaces,
		"total_challenges": totalChallenges,
		"total_ideas":      totalIdeas,
	})
}

// GetIdeaSpace returns one idea space by id.
func GetIdeaSpace(c *gin.Context) {
	var space models.IdeaSpace
	if err := config.DB.Where("idea_space_id = ? AND delete_at IS NULL", c.Param("id")).First(&space).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Idea space not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"idea_space": space})
}

// SearchIdeaSpaces matches the query against title and description,
// case-insensitively, OR-combined.
func SearchIdeaSpaces(c *gin.Context) {
	q := "%" + strings.ToLower(strings.TrimSpace(c.Query("q"))) + "%"

	var spaces []models.IdeaSpace
	if err := config.DB.
		Where("delete_at IS NULL").
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", q, q).
		Order("create_at DESC").
		Find(&spaces).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to search idea spaces"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"idea_spaces": spaces})
}

// CreateIdeaSpace creates an idea space from a multipart form with an
// optional thumbnail upload.
func CreateIdeaSpace(c *gin.Context) {
	title := utils.SanitizeInput(c.PostForm("title"))
	description := utils.SanitizeInput(c.PostForm("description"))

	if title == "" || description == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and description are required"})
		return
	}

	thumbnailURL := ""
	if file, err := c.FormFile("thumbnail"); err == nil && file != nil {
		uploaded, err := services.UploadThumbnail(c.Request.Context(), file)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to upload thumbnail"})
			return
		}
		thumbnailURL = uploaded
	}

	now := time.Now()
	space := models.IdeaSpace{
		Title:        title,
		Description:  description,
		ThumbnailURL: thumbnailURL,
		CreateAt:     &now,
		UpdateAt:     &now,
	}

	if err := config.DB.Create(&space).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create idea space"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"idea_space": space})
}
