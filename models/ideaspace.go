package models

import (
	"time"
)

// IdeaSpace is a thematic grouping container. It has no behavior beyond
// CRUD and search; challenges may reference one for their community block.
type IdeaSpace struct {
	IdeaSpaceID  int        `gorm:"primaryKey;column:idea_space_id" json:"idea_space_id"`
	Title        string     `gorm:"column:title" json:"title"`
	Description  string     `gorm:"column:description;type:text" json:"description"`
	ThumbnailURL string     `gorm:"column:thumbnail_url" json:"thumbnail_url"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (IdeaSpace) TableName() string {
	return "idea_spaces"
}
