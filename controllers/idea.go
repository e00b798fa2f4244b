package controllers

import (
	"innovation-platform-api/config"
	"innovation-platform-api/models"
	"innovation-platform-api/utils"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// AverageScores holds the per-dimension arithmetic means across an idea's
// feedback entries. A dimension stays nil when no entry scored it.
type AverageScores struct {
	Scalability    *float64 `json:"scalability"`
	Sustainability *float64 `json:"sustainability"`
	Innovation     *float64 `json:"innovation"`
	Impact         *float64 `json:"impact"`
}

type ideaListItem struct {
	models.Idea
	AverageScores AverageScores `json:"average_scores"`
}

type feedbackAverageRow struct {
	IdeaID         int      `gorm:"column:idea_id"`
	Scalability    *float64 `gorm:"column:scalability"`
	Sustainability *float64 `gorm:"column:sustainability"`
	Innovation     *float64 `gorm:"column:innovation"`
	Impact         *float64 `gorm:"column:impact"`
}

// feedbackAverages computes the mean of each feedback dimension per idea.
// SQL AVG ignores NULL scores, so the denominator for a dimension is the
// count of entries that actually scored it. Ideas without feedback are
// absent from the result.
func feedbackAverages() (map[int]AverageScores, error) {
	var rows []feedbackAverageRow
	err := config.DB.Model(&models.IdeaFeedback{}).
		Select("idea_id, AVG(scalability) AS scalability, AVG(sustainability) AS sustainability, AVG(innovation) AS innovation, AVG(impact) AS impact").
		Group("idea_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	averages := make(map[int]AverageScores, len(rows))
	for _, row := range rows {
		averages[row.IdeaID] = AverageScores{
			Scalability:    row.Scalability,
			Sustainability: row.Sustainability,
			Innovation:     row.Innovation,
			Impact:         row.Impact,
		}
	}
	return averages, nil
}

// GetIdeas lists all ideas with their creator resolved and average
// feedback scores attached.
func GetIdeas(c *gin.Context) {
	var ideas []models.Idea
	if err := config.DB.
		Order("create_at DESC").
		Preload("Creator").
		Find(&ideas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load ideas"})
		return
	}

	averages, err := feedbackAverages()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load ideas"})
		return
	}

	items := make([]ideaListItem, 0, len(ideas))
	for _, idea := range ideas {
		items = append(items, ideaListItem{
			Idea:          idea,
			AverageScores: averages[idea.IdeaID],
		})
	}

	c.JSON(http.StatusOK, gin.H{"ideas": items})
}

// GetIdea returns one idea with comments and feedback resolved.
func GetIdea(c *gin.Context) {
	var idea models.Idea
	if err := config.DB.
		Where("idea_id = ?", c.Param("ideaId")).
		Preload("Creator").
		Preload("Team").
		Preload("Comments.Author").
		Preload("Feedback.Author").
		First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Idea not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"idea": idea})
}

type createIdeaRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	ChallengeID int     `json:"challenge_id" binding:"required"`
	TeamID      *int    `json:"team_id"`
	StageID     *int    `json:"stage_id"`
	SessionID   *string `json:"session_id"`
}

// CreateIdea persists a new submission. The request is bound to a typed
// DTO so only whitelisted fields reach the row.
func CreateIdea(c *gin.Context) {
	var req createIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var challenge models.Challenge
	if err := config.DB.Where("challenge_id = ? AND delete_at IS NULL", req.ChallengeID).First(&challenge).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Challenge not found"})
		return
	}

	userID, _ := c.Get("userID")
	now := time.Now()
	idea := models.Idea{
		Title:       utils.SanitizeInput(req.Title),
		Description: req.Description,
		CreatorID:   userID.(int),
		ChallengeID: req.ChallengeID,
		TeamID:      req.TeamID,
		StageID:     req.StageID,
		SessionID:   req.SessionID,
		Status:      models.IdeaStatusSubmitted,
		CreateAt:    &now,
		UpdateAt:    &now,
	}

	if err := config.DB.Create(&idea).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create idea"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"idea": idea})
}

// AddComment appends a comment to an idea, attributed to the caller.
func AddComment(c *gin.Context) {
	type commentRequest struct {
		Text string `json:"text" binding:"required"`
	}

	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var idea models.Idea
	if err := config.DB.Where("idea_id = ?", c.Param("ideaId")).First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Idea not found"})
		return
	}

	userID, _ := c.Get("userID")
	now := time.Now()
	comment := models.IdeaComment{
		IdeaID:   idea.IdeaID,
		AuthorID: userID.(int),
		Text:     req.Text,
		CreateAt: &now,
	}

	if err := config.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// SubmitFeedback appends a feedback entry carrying the four dimension
// scores, attributed to the caller with a server-assigned timestamp.
// Entries are append-only; averages are always derived, never stored.
func SubmitFeedback(c *gin.Context) {
	type feedbackRequest struct {
		Scalability    *float64 `json:"scalability"`
		Sustainability *float64 `json:"sustainability"`
		Innovation     *float64 `json:"innovation"`
		Impact         *float64 `json:"impact"`
		Comment        string   `json:"comment"`
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var idea models.Idea
	if err := config.DB.Where("idea_id = ?", c.Param("ideaId")).First(&idea).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Idea not found"})
		return
	}

	userID, _ := c.Get("userID")
	now := time.Now()
	feedback := models.IdeaFeedback{
		IdeaID:         idea.IdeaID,
		AuthorID:       userID.(int),
		Scalability:    req.Scalability,
		Sustainability: req.Sustainability,
		Innovation:     req.Innovation,
		Impact:         req.Impact,
		Comment:        req.Comment,
		CreateAt:       &now,
	}

	if err := config.DB.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"feedback": feedback})
}
