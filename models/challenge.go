package models

import (
	"time"
)

// Challenge status values.
const (
	ChallengeStatusOpen     = "open"
	ChallengeStatusClosed   = "closed"
	ChallengeStatusArchived = "archived"
)

// ValidCategories is the closed set of challenge categories.
var ValidCategories = []string{
	"SUSTAINABILITY",
	"SOCIAL INNOVATION",
	"TECHNOLOGY",
	"HEALTHCARE",
	"EDUCATION",
}

// IsValidCategory reports whether category is one of the known categories.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Challenge struct {
	ChallengeID  int        `gorm:"primaryKey;column:challenge_id" json:"challenge_id"`
	Title        string     `gorm:"column:title" json:"title"`
	Description  string     `gorm:"column:description;type:text" json:"description"`
	Status       string     `gorm:"column:status;size:20;default:open" json:"status"`
	Category     string     `gorm:"column:category;size:50" json:"category"`
	ThumbnailURL string     `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	ViewCount    int        `gorm:"column:view_count;default:0" json:"view_count"`
	IdeaSpaceID  *int       `gorm:"column:idea_space_id" json:"idea_space_id,omitempty"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Stages     []ChallengeStage `gorm:"foreignKey:ChallengeID" json:"stages,omitempty"`
	Organizers []User           `gorm:"many2many:challenge_organizers;joinForeignKey:ChallengeID;joinReferences:UserID" json:"organizers,omitempty"`
}

type ChallengeStage struct {
	StageID     int        `gorm:"primaryKey;column:stage_id" json:"stage_id"`
	ChallengeID int        `gorm:"column:challenge_id;index" json:"challenge_id"`
	Name        string     `gorm:"column:name" json:"name"`
	Deadline    *time.Time `gorm:"column:deadline" json:"deadline,omitempty"`
	Position    int        `gorm:"column:position;default:0" json:"position"`

	// Ideas submitted into this stage.
	Submissions []Idea `gorm:"foreignKey:StageID" json:"submissions,omitempty"`
}

func (Challenge) TableName() string {
	return "challenges"
}

func (ChallengeStage) TableName() string {
	return "challenge_stages"
}
