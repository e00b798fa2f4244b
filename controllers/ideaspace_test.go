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
)

func ideaSpaceRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/ideaspaces", GetIdeaSpaces)
	r.GET("/api/ideaspaces/search", SearchIdeaSpaces)
	r.GET("/api/ideaspaces/:id", GetIdeaSpace)
	r.POST("/api/ideaspaces", middleware.AuthMiddleware(), CreateIdeaSpace)
	return r
}

func seedIdeaSpace(t *testing.T, title, description string) models.IdeaSpace {
	t.Helper()

	now := time.Now()
	space := models.IdeaSpace{
		Title:       title,
		Description: description,
		CreateAt:    &now,
	}
	if err := config.DB.Create(&space).Error; err != nil {
		t.Fatalf("failed to seed idea space: %v", err)
	}
	return space
}

func TestIdeaSpaceListIncludesGlobalCounts(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	seedIdeaSpace(t, "Hub", "a hub")

	challenge := seedChallenge(t, "C1", 0, 0)
	seedChallenge(t, "C2", 0, time.Hour)
	seedIdea(t, user, challenge, "I1")

	r := ideaSpaceRouter()
	w := serve(r, jsonRequest(t, http.MethodGet, "/api/ideaspaces", nil, ""))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["total_challenges"].(float64) != 2 {
		t.Fatalf("expected 2 challenges, got %v", body["total_challenges"])
	}
	if body["total_ideas"].(float64) != 1 {
		t.Fatalf("expected 1 idea, got %v", body["total_ideas"])
	}
	if len(body["idea_spaces"].([]interface{})) != 1 {
		t.Fatalf("expected 1 idea space")
	}
}

func TestSearchIdeaSpacesMatchesTitleOrDescription(t *testing.T) {
	setupTestDB(t)
	seedIdeaSpace(t, "Robotics Lab", "machines")
	seedIdeaSpace(t, "Garden Corner", "urban ROBOTICS experiments")
	seedIdeaSpace(t, "Cooking Club", "recipes")

	r := ideaSpaceRouter()
	w := serve(r, jsonRequest(t, http.MethodGet, "/api/ideaspaces/search?q=robotics", nil, ""))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	spaces := decodeBody(t, w)["idea_spaces"].([]interface{})
	if len(spaces) != 2 {
		t.Fatalf("expected 2 matches (title OR description), got %d", len(spaces))
	}
}

func TestGetIdeaSpaceNotFound(t *testing.T) {
	setupTestDB(t)
	r := ideaSpaceRouter()

	w := serve(r, jsonRequest(t, http.MethodGet, "/api/ideaspaces/4242", nil, ""))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestCreateIdeaSpace(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	token := sessionToken(t, user)
	r := ideaSpaceRouter()

	w := serve(r, multipartRequest(t, "/api/ideaspaces", map[string]string{
		"title":       "New Space",
		"description": "fresh",
	}, token))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.IdeaSpace
	if err := config.DB.Where("title = ?", "New Space").First(&stored).Error; err != nil {
		t.Fatalf("idea space not persisted: %v", err)
	}

	// Missing required fields are rejected.
	w = serve(r, multipartRequest(t, "/api/ideaspaces", map[string]string{
		"title": "No description",
	}, token))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}

	found := serve(r, jsonRequest(t, http.MethodGet, fmt.Sprintf("/api/ideaspaces/%d", stored.IdeaSpaceID), nil, ""))
	if found.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching created space, got %d", found.Code)
	}
}
