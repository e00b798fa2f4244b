package models

import (
	"time"
)

// Role values for users. Roles are stored as plain strings on the user row.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRoles lists every role a user can be assigned.
var ValidRoles = []string{RoleUser, RoleAdmin}

// IsValidRole reports whether role is one of the known roles.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	UserID            int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Name              string     `gorm:"column:name" json:"name"`
	Email             string     `gorm:"column:email;unique" json:"email"`
	Password          string     `gorm:"column:password" json:"-"`
	Role              string     `gorm:"column:role;size:20;default:user" json:"role"`
	Points            int        `gorm:"column:points;default:0" json:"points"`
	Department        *string    `gorm:"column:department" json:"department,omitempty"`
	Interests         *string    `gorm:"column:interests" json:"interests,omitempty"`
	Skills            *string    `gorm:"column:skills" json:"skills,omitempty"`
	IsVerified        bool       `gorm:"column:is_verified;default:false" json:"is_verified"`
	ConfirmationToken *string    `gorm:"column:confirmation_token" json:"-"`
	CreateAt          *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt          *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt          *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}
