package controllers

import (
	"encoding/json"
	"innovation-platform-api/config"
	"innovation-platform-api/models"
	"innovation-platform-api/services"
	"innovation-platform-api/utils"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CommunityBlock is the display block rendered next to a challenge,
// sourced from its associated idea space when one is set.
type CommunityBlock struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

var defaultCommunity = CommunityBlock{
	Title:        "Innovation Community",
	ThumbnailURL: "",
}

type challengeListItem struct {
	models.Challenge
	Community CommunityBlock `json:"community"`
}

// challengeSortOrder maps the sort query parameter to an ORDER BY clause.
// The default and "date" both mean newest first; "popularity" sorts by view
// count.
func challengeSortOrder(sort string) string {
	if sort == "popularity" {
		return "view_count DESC"
	}
	return "create_at DESC"
}

// GetChallenges lists challenges, optionally sorted by recency or
// popularity, each enriched with its community block.
func GetChallenges(c *gin.Context) {
	listChallenges(c, config.DB)
}

// SearchChallenges lists challenges whose title contains the query,
// case-insensitively, with the same sort options as GetChallenges.
func SearchChallenges(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	query := config.DB.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(q)+"%")
	listChallenges(c, query)
}

func listChallenges(c *gin.Context, query *gorm.DB) {
	var challenges []models.Challenge
	if err := query.
		Where("delete_at IS NULL").
		Order(challengeSortOrder(c.Query("sort"))).
		Preload("Stages", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Organizers").
		Find(&challenges).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load challenges"})
		return
	}

	communities, err := communityBlocks(challenges)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load challenges"})
		return
	}

	items := make([]challengeListItem, 0, len(challenges))
	for _, challenge := range challenges {
		items = append(items, challengeListItem{
			Challenge: challenge,
			Community: communityFor(challenge, communities),
		})
	}

	c.JSON(http.StatusOK, gin.H{"challenges": items})
}

// communityBlocks loads every idea space referenced by the given challenges
// in one query.
func communityBlocks(challenges []models.Challenge) (map[int]CommunityBlock, error) {
	ids := make([]int, 0, len(challenges))
	for _, challenge := range challenges {
		if challenge.IdeaSpaceID != nil {
			ids = append(ids, *challenge.IdeaSpaceID)
		}
	}

	blocks := make(map[int]CommunityBlock, len(ids))
	if len(ids) == 0 {
		return blocks, nil
	}

	var spaces []models.IdeaSpace
	if err := config.DB.Where("idea_space_id IN ? AND delete_at IS NULL", ids).Find(&spaces).Error; err != nil {
		return nil, err
	}

	for _, space := range spaces {
		blocks[space.IdeaSpaceID] = CommunityBlock{
			Title:        space.Title,
			ThumbnailURL: space.ThumbnailURL,
		}
	}
	return blocks, nil
}

func communityFor(challenge models.Challenge, blocks map[int]CommunityBlock) CommunityBlock {
	if challenge.IdeaSpaceID != nil {
		if block, ok := blocks[*challenge.IdeaSpaceID]; ok {
			return block
		}
	}
	return defaultCommunity
}

// GetChallenge returns one challenge enriched with derived metrics: the
// total idea count summed across stages and the organizer count.
func GetChallenge(c *gin.Context) {
	var challenge models.Challenge
	if err := config.DB.
		Where("challenge_id = ? AND delete_at IS NULL", c.Param("id")).
		Preload("Stages", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Stages.Submissions").
		Preload("Organizers").
		First(&challenge).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Challenge not found"})
		return
	}

	totalIdeas := 0
	for _, stage := range challenge.Stages {
		totalIdeas += len(stage.Submissions)
	}

	communities, err := communityBlocks([]models.Challenge{challenge})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load challenge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"challenge":    challenge,
		"total_ideas":  totalIdeas,
		"active_users": len(challenge.Organizers),
		"community":    communityFor(challenge, communities),
	})
}

type stageInput struct {
	Name     string     `json:"name"`
	Deadline *time.Time `json:"deadline"`
}

// CreateChallenge creates a challenge from a multipart form. The stages
// field carries a JSON-encoded array; the thumbnail file is optional. The
// authenticated caller becomes the first organizer.
func CreateChallenge(c *gin.Context) {
	title := utils.SanitizeInput(c.PostForm("title"))
	description := utils.SanitizeInput(c.PostForm("description"))
	category := utils.SanitizeInput(c.PostForm("category"))

	if title == "" || description == "" || category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title, description and category are required"})
		return
	}

	if !models.IsValidCategory(category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	var stages []stageInput
	if raw := c.PostForm("stages"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &stages); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid stages format"})
			return
		}
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
	challenge := models.Challenge{
		Title:        title,
		Description:  description,
		Category:     category,
		Status:       models.ChallengeStatusOpen,
		ThumbnailURL: thumbnailURL,
		CreateAt:     &now,
		UpdateAt:     &now,
	}
	for i, stage := range stages {
		challenge.Stages = append(challenge.Stages, models.ChallengeStage{
			Name:     stage.Name,
			Deadline: stage.Deadline,
			Position: i,
		})
	}

	if err := config.DB.Create(&challenge).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create challenge"})
		return
	}

	userID, _ := c.Get("userID")
	var organizer models.User
	if err := config.DB.Where("user_id = ?", userID).First(&organizer).Error; err == nil {
		if err := config.DB.Model(&challenge).Association("Organizers").Append(&organizer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to assign organizer"})
			return
		}
	}

	c.JSON(http.StatusCreated, gin.H{"challenge": challenge})
}

// DeleteChallenge removes a challenge and its stages. The stored thumbnail
// object is removed first; challenges without a thumbnail skip the storage
// call.
func DeleteChallenge(c *gin.Context) {
	var challenge models.Challenge
	if err := config.DB.Where("challenge_id = ? AND delete_at IS NULL", c.Param("id")).First(&challenge).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Challenge not found"})
		return
	}

	if challenge.ThumbnailURL != "" {
		if err := services.DeleteThumbnail(c.Request.Context(), challenge.ThumbnailURL); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete thumbnail"})
			return
		}
	}

	if err := config.DB.Where("challenge_id = ?", challenge.ChallengeID).Delete(&models.ChallengeStage{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete challenge"})
		return
	}

	if err := config.DB.Delete(&challenge).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete challenge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Challenge deleted successfully"})
}

// IncrementViewCount bumps the view counter with a single atomic UPDATE so
// concurrent increments never lose writes.
func IncrementViewCount(c *gin.Context) {
	result := config.DB.Model(&models.Challenge{}).
		Where("challenge_id = ? AND delete_at IS NULL", c.Param("id")).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update view count"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Challenge not found"})
		return
	}

	var challenge models.Challenge
	if err := config.DB.Where("challenge_id = ?", c.Param("id")).First(&challenge).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load challenge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"view_count": challenge.ViewCount})
}

// ArchiveChallenge transitions a challenge to the archived status.
func ArchiveChallenge(c *gin.Context) {
	var challenge models.Challenge
	if err := config.DB.Where("challenge_id = ? AND delete_at IS NULL", c.Param("id")).First(&challenge).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Challenge not found"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&challenge).Updates(map[string]interface{}{
		"status":    models.ChallengeStatusArchived,
		"update_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to archive challenge"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"challenge": challenge})
}

// GetChallengeTeams lists the teams registered for a challenge.
func GetChallengeTeams(c *gin.Context) {
	var challenge models.Challenge
	if err := config.DB.Where("challenge_id = ? AND delete_at IS NULL", c.Param("id")).First(&challenge).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Challenge not found"})
		return
	}

	var teams []models.Team
	if err := config.DB.Where("challenge_id = ?", challenge.ChallengeID).
		Preload("Members.User").
		Find(&teams).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to load teams"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"teams": teams})
}
