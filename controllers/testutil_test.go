package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"innovation-platform-api/config"
	"innovation-platform-api/middleware"
	"innovation-platform-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret")
}

// setupTestDB swaps an in-memory SQLite database into the global handle.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// A second connection to :memory: would be a different database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Challenge{},
		&models.ChallengeStage{},
		&models.Idea{},
		&models.IdeaComment{},
		&models.IdeaFeedback{},
		&models.Team{},
		&models.TeamMember{},
		&models.TeamMessage{},
		&models.IdeaSpace{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	config.DB = db
}

// stubMail replaces the mail sender for the duration of a test.
func stubMail(t *testing.T, fn func(to []string, subject, html string) error) {
	t.Helper()
	orig := sendMailFunc
	sendMailFunc = fn
	t.Cleanup(func() { sendMailFunc = orig })
}

func createTestUser(t *testing.T, name, email, password, role string) models.User {
	t.Helper()

	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now()
	user := models.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		Role:     role,
		CreateAt: &now,
		UpdateAt: &now,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

func sessionToken(t *testing.T, user models.User) string {
	t.Helper()

	token, err := generateToken(user, middleware.PurposeSession, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate session token: %v", err)
	}
	return token
}

func jsonRequest(t *testing.T, method, target string, body interface{}, token string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func multipartRequest(t *testing.T, target string, fields map[string]string, token string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}
