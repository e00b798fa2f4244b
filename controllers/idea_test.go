package controllers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"innovation-platform-api/config"
	"innovation-platform-api/middleware"
	"innovation-platform-api/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func ideaRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/ideas", GetIdeas)
	r.GET("/api/ideas/:ideaId", GetIdea)
	r.POST("/api/ideas", middleware.AuthMiddleware(), CreateIdea)
	r.POST("/api/ideas/:ideaId/comments", middleware.AuthMiddleware(), AddComment)
	r.POST("/api/ideas/:ideaId/feedback", middleware.AuthMiddleware(), SubmitFeedback)
	return r
}

func seedIdea(t *testing.T, creator models.User, challenge models.Challenge, title string) models.Idea {
	t.Helper()

	now := time.Now()
	idea := models.Idea{
		Title:       title,
		Description: "an idea",
		CreatorID:   creator.UserID,
		ChallengeID: challenge.ChallengeID,
		Status:      models.IdeaStatusSubmitted,
		CreateAt:    &now,
		UpdateAt:    &now,
	}
	require.NoError(t, config.DB.Create(&idea).Error)
	return idea
}

func addFeedback(t *testing.T, idea models.Idea, author models.User, scalability *float64) {
	t.Helper()

	now := time.Now()
	fb := models.IdeaFeedback{
		IdeaID:      idea.IdeaID,
		AuthorID:    author.UserID,
		Scalability: scalability,
		CreateAt:    &now,
	}
	require.NoError(t, config.DB.Create(&fb).Error)
}

func f64(v float64) *float64 { return &v }

func TestIdeaListAveragesFeedbackScores(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	challenge := seedChallenge(t, "C", 0, 0)

	rated := seedIdea(t, user, challenge, "Rated")
	addFeedback(t, rated, user, f64(2))
	addFeedback(t, rated, user, f64(4))

	unrated := seedIdea(t, user, challenge, "Unrated")

	r := ideaRouter()
	w := serve(r, jsonRequest(t, http.MethodGet, "/api/ideas", nil, ""))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	ideas := body["ideas"].([]interface{})
	require.Len(t, ideas, 2)

	for _, raw := range ideas {
		item := raw.(map[string]interface{})
		scores := item["average_scores"].(map[string]interface{})
		switch item["idea_id"] {
		case float64(rated.IdeaID):
			require.Equal(t, float64(3), scores["scalability"], "average of 2 and 4 must be 3")
			require.Nil(t, scores["impact"], "unrated dimension stays null")
		case float64(unrated.IdeaID):
			require.Nil(t, scores["scalability"])
			require.Nil(t, scores["sustainability"])
			require.Nil(t, scores["innovation"])
			require.Nil(t, scores["impact"])
		}
	}
}

func TestIdeaListResolvesCreator(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Creator Name", "creator@x.com", "pw123456", models.RoleUser)
	challenge := seedChallenge(t, "C", 0, 0)
	seedIdea(t, user, challenge, "Mine")

	r := ideaRouter()
	w := serve(r, jsonRequest(t, http.MethodGet, "/api/ideas", nil, ""))
	require.Equal(t, http.StatusOK, w.Code)

	ideas := decodeBody(t, w)["ideas"].([]interface{})
	creator := ideas[0].(map[string]interface{})["creator"].(map[string]interface{})
	require.Equal(t, "Creator Name", creator["name"])
}

func TestCreateIdeaWhitelistsFields(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	challenge := seedChallenge(t, "C", 0, 0)
	token := sessionToken(t, user)
	r := ideaRouter()

	w := serve(r, jsonRequest(t, http.MethodPost, "/api/ideas", map[string]interface{}{
		"title":        "Legit",
		"description":  "desc",
		"challenge_id": challenge.ChallengeID,
		// Fields outside the whitelist must be dropped.
		"votes":  999,
		"status": models.IdeaStatusAccepted,
	}, token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var stored models.Idea
	require.NoError(t, config.DB.Where("title = ?", "Legit").First(&stored).Error)
	require.Equal(t, 0, stored.Votes)
	require.Equal(t, models.IdeaStatusSubmitted, stored.Status)
	require.Equal(t, user.UserID, stored.CreatorID)
}

func TestCreateIdeaRequiresExistingChallenge(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	token := sessionToken(t, user)
	r := ideaRouter()

	w := serve(r, jsonRequest(t, http.MethodPost, "/api/ideas", map[string]interface{}{
		"title":        "Orphan",
		"challenge_id": 4242,
	}, token))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCommentAttributedToCaller(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	challenge := seedChallenge(t, "C", 0, 0)
	idea := seedIdea(t, user, challenge, "Commented")
	token := sessionToken(t, user)
	r := ideaRouter()

	w := serve(r, jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/ideas/%d/comments", idea.IdeaID), map[string]string{
		"text": "nice one",
	}, token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var comments []models.IdeaComment
	require.NoError(t, config.DB.Where("idea_id = ?", idea.IdeaID).Find(&comments).Error)
	require.Len(t, comments, 1)
	require.Equal(t, user.UserID, comments[0].AuthorID)
	require.Equal(t, "nice one", comments[0].Text)
	require.NotNil(t, comments[0].CreateAt)
}

func TestSubmitFeedbackAppendsEntry(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	challenge := seedChallenge(t, "C", 0, 0)
	idea := seedIdea(t, user, challenge, "Reviewed")
	token := sessionToken(t, user)
	r := ideaRouter()

	w := serve(r, jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/ideas/%d/feedback", idea.IdeaID), map[string]interface{}{
		"scalability":    4,
		"sustainability": 3,
		"innovation":     5,
		"impact":         2,
		"comment":        "solid",
	}, token))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// A second entry appends rather than replaces.
	w = serve(r, jsonRequest(t, http.MethodPost, fmt.Sprintf("/api/ideas/%d/feedback", idea.IdeaID), map[string]interface{}{
		"scalability": 2,
	}, token))
	require.Equal(t, http.StatusCreated, w.Code)

	var entries []models.IdeaFeedback
	require.NoError(t, config.DB.Where("idea_id = ?", idea.IdeaID).Find(&entries).Error)
	require.Len(t, entries, 2)
	require.Equal(t, user.UserID, entries[0].AuthorID)
	require.Equal(t, float64(4), *entries[0].Scalability)
	require.Nil(t, entries[1].Impact)
}

func TestSubmitFeedbackUnknownIdea(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	token := sessionToken(t, user)
	r := ideaRouter()

	w := serve(r, jsonRequest(t, http.MethodPost, "/api/ideas/777/feedback", map[string]interface{}{
		"scalability": 1,
	}, token))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIdeaResolvesRelations(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	challenge := seedChallenge(t, "C", 0, 0)
	idea := seedIdea(t, user, challenge, "Detailed")
	addFeedback(t, idea, user, f64(5))

	r := ideaRouter()
	w := serve(r, jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/ideas/%d", idea.IdeaID), nil, ""))
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)["idea"].(map[string]interface{})
	require.Equal(t, "Detailed", body["title"])
	feedback := body["feedback"].([]interface{})
	require.Len(t, feedback, 1)
}
