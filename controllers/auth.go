package controllers

import (
	"innovation-platform-api/config"
	"innovation-platform-api/middleware"
	"innovation-platform-api/models"
	"innovation-platform-api/utils"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Token lifetimes per purpose.
const (
	sessionTokenTTL       = time.Hour
	confirmTokenTTL       = 24 * time.Hour
	passwordResetTTL      = 15 * time.Minute
	registrationOKMsg     = "Registration successful, please confirm your email"
	registrationNoMailMsg = "Registration successful, but the confirmation email could not be sent"
)

// sendMailFunc is swapped out in tests.
var sendMailFunc = config.SendMail

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token   string      `json:"token"`
	User    models.User `json:"user"`
	Message string      `json:"message"`
}

// Register creates an unverified user account and sends a confirmation
// email. Registration still succeeds when the email cannot be delivered;
// the response message says which happened.
func Register(c *gin.Context) {
	registerUser(c, models.RoleUser)
}

// RegisterAdmin creates an account with the admin role. The route is gated
// to admins.
func RegisterAdmin(c *gin.Context) {
	registerUser(c, models.RoleAdmin)
}

func registerUser(c *gin.Context, role string) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	req.Name = utils.SanitizeInput(req.Name)
	req.Email = utils.SanitizeInput(req.Email)
	if !utils.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email format"})
		return
	}

	var existing models.User
	err := config.DB.Where("email = ? AND delete_at IS NULL", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}
	if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process request"})
		return
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	now := time.Now()
	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     role,
		CreateAt: &now,
		UpdateAt: &now,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		return
	}

	confirmToken, err := generateToken(user, middleware.PurposeConfirmEmail, confirmTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate confirmation token"})
		return
	}

	user.ConfirmationToken = &confirmToken
	if err := config.DB.Model(&user).Update("confirmation_token", confirmToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store confirmation token"})
		return
	}

	message := registrationOKMsg
	if err := sendConfirmationEmail(user, confirmToken); err != nil {
		message = registrationNoMailMsg
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": message,
		"user":    user,
	})
}

// ConfirmEmail flips the verified flag for the user a confirmation token
// belongs to and clears the stored token.
func ConfirmEmail(c *gin.Context) {
	tokenString := c.Param("token")
	if tokenString == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Token is required"})
		return
	}

	claims, err := middleware.ParseToken(tokenString)
	if err != nil || claims.Purpose != middleware.PurposeConfirmEmail {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", claims.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if user.IsVerified {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already confirmed"})
		return
	}

	if user.ConfirmationToken == nil || *user.ConfirmationToken != tokenString {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired token"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"is_verified":        true,
		"confirmation_token": nil,
		"update_at":          now,
	}
	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to confirm email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Email confirmed successfully"})
}

// Login verifies credentials and issues a session token. A wrong password
// and an unknown email produce the same response so callers cannot tell
// which field was wrong.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ? AND delete_at IS NULL", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	if !CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		return
	}

	token, err := generateToken(user, middleware.PurposeSession, sessionTokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   token,
		User:    user,
		Message: "Login successful",
	})
}

// Logout is a stateless acknowledgement; tokens expire on their own.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// ChangePassword overwrites the password after checking the current one.
func ChangePassword(c *gin.Context) {
	type PasswordChangeRequest struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}

	var req PasswordChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID, _ := c.Get("userID")

	var user models.User
	if err := config.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if !CheckPasswordHash(req.CurrentPassword, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Current password is incorrect"})
		return
	}

	hashed, err := HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to hash password"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"password":  hashed,
		"update_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// generateToken creates a signed JWT for the given purpose.
func generateToken(user models.User, purpose string, ttl time.Duration) (string, error) {
	claims := middleware.Claims{
		UserID:  user.UserID,
		Email:   user.Email,
		Name:    user.Name,
		Role:    user.Role,
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// HashPassword hashes password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares password with hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
