package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"innovation-platform-api/config"
	"innovation-platform-api/middleware"
	"innovation-platform-api/models"

	"github.com/gin-gonic/gin"
)

func userRouter() *gin.Engine {
	r := gin.New()
	authed := r.Group("/api/users", middleware.AuthMiddleware())
	authed.GET("/profile", GetProfile)
	authed.PUT("/profile", UpdateProfile)

	admin := r.Group("/api/users", middleware.AuthMiddleware(), middleware.RequireRole(models.RoleAdmin))
	admin.GET("", GetUsers)
	admin.GET("/:userId", GetUser)
	admin.DELETE("/:userId", DeleteUser)
	admin.PATCH("/:userId/role", UpdateUserRole)
	return r
}

func TestGetProfileIncludesTeams(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	challenge := seedChallenge(t, "C", 0, 0)
	seedTeam(t, user, challenge, "My Team")
	r := userRouter()

	w := serve(r, jsonRequest(t, http.MethodGet, "/api/users/profile", nil, sessionToken(t, user)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	teams := body["teams"].([]interface{})
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}
	if teams[0].(map[string]interface{})["name"] != "My Team" {
		t.Fatalf("unexpected team payload: %v", teams[0])
	}
}

func TestUpdateProfileWhitelistsFields(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "Old Name", "a@x.com", "pw123456", models.RoleUser)
	r := userRouter()

	w := serve(r, jsonRequest(t, http.MethodPut, "/api/users/profile", map[string]interface{}{
		"name":       "New Name",
		"department": "R&D",
		// Role changes must go through the admin endpoint.
		"role":   models.RoleAdmin,
		"points": 9000,
	}, sessionToken(t, user)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.User
	config.DB.Where("user_id = ?", user.UserID).First(&stored)
	if stored.Name != "New Name" {
		t.Fatalf("name not updated: %q", stored.Name)
	}
	if stored.Department == nil || *stored.Department != "R&D" {
		t.Fatalf("department not updated: %v", stored.Department)
	}
	if stored.Role != models.RoleUser || stored.Points != 0 {
		t.Fatalf("non-whitelisted fields must not change: role=%q points=%d", stored.Role, stored.Points)
	}
}

func TestUpdateProfileRejectsInvalidEmail(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	r := userRouter()

	w := serve(r, jsonRequest(t, http.MethodPut, "/api/users/profile", map[string]string{
		"email": "not-an-email",
	}, sessionToken(t, user)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestUserListIsAdminOnly(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "A", "a@x.com", "pw123456", models.RoleUser)
	admin := createTestUser(t, "Admin", "admin@x.com", "pw123456", models.RoleAdmin)
	r := userRouter()

	w := serve(r, jsonRequest(t, http.MethodGet, "/api/users", nil, sessionToken(t, user)))
	if w.Code != http.StatusForbidden {
		t.Fatalf("regular user must not list users, got %d", w.Code)
	}

	w = serve(r, jsonRequest(t, http.MethodGet, "/api/users", nil, sessionToken(t, admin)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["total"].(float64) != 2 {
		t.Fatalf("expected total 2, got %v", body["total"])
	}
}

func TestUserListPagination(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "Admin", "admin@x.com", "pw123456", models.RoleAdmin)
	for i := 0; i < 5; i++ {
		createTestUser(t, fmt.Sprintf("U%d", i), fmt.Sprintf("u%d@x.com", i), "pw123456", models.RoleUser)
	}
	r := userRouter()

	w := serve(r, jsonRequest(t, http.MethodGet, "/api/users?page=2&limit=4", nil, sessionToken(t, admin)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["total"].(float64) != 6 {
		t.Fatalf("expected total 6, got %v", body["total"])
	}
	if len(body["users"].([]interface{})) != 2 {
		t.Fatalf("page 2 with limit 4 must hold the remaining 2 users, got %d", len(body["users"].([]interface{})))
	}
}

func TestDeleteUserIsSoftDelete(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "Admin", "admin@x.com", "pw123456", models.RoleAdmin)
	victim := createTestUser(t, "B", "b@x.com", "pw123456", models.RoleUser)
	r := userRouter()

	w := serve(r, jsonRequest(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", victim.UserID), nil, sessionToken(t, admin)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.User
	if err := config.DB.Where("user_id = ?", victim.UserID).First(&stored).Error; err != nil {
		t.Fatalf("row must survive a soft delete: %v", err)
	}
	if stored.DeleteAt == nil {
		t.Fatal("delete_at must be set")
	}

	// The deleted account no longer authenticates.
	w = serve(r, jsonRequest(t, http.MethodGet, "/api/users/profile", nil, sessionToken(t, victim)))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("deleted user must not authenticate, got %d", w.Code)
	}
}

func TestUpdateUserRole(t *testing.T) {
	setupTestDB(t)
	admin := createTestUser(t, "Admin", "admin@x.com", "pw123456", models.RoleAdmin)
	user := createTestUser(t, "B", "b@x.com", "pw123456", models.RoleUser)
	r := userRouter()

	w := serve(r, jsonRequest(t, http.MethodPatch, fmt.Sprintf("/api/users/%d/role", user.UserID), map[string]string{
		"role": "superuser",
	}, sessionToken(t, admin)))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown role must be rejected, got %d", w.Code)
	}

	w = serve(r, jsonRequest(t, http.MethodPatch, fmt.Sprintf("/api/users/%d/role", user.UserID), map[string]string{
		"role": models.RoleAdmin,
	}, sessionToken(t, admin)))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var stored models.User
	config.DB.Where("user_id = ?", user.UserID).First(&stored)
	if stored.Role != models.RoleAdmin {
		t.Fatalf("role not updated: %q", stored.Role)
	}
}
