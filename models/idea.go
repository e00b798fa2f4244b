package models

import (
	"time"
)

// Idea status values.
const (
	IdeaStatusSubmitted  = "submitted"
	IdeaStatusInProgress = "in-progress"
	IdeaStatusRejected   = "rejected"
	IdeaStatusAccepted   = "accepted"
)

type Idea struct {
	IdeaID      int        `gorm:"primaryKey;column:idea_id" json:"idea_id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description string     `gorm:"column:description;type:text" json:"description"`
	CreatorID   int        `gorm:"column:creator_id;index" json:"creator_id"`
	TeamID      *int       `gorm:"column:team_id;index" json:"team_id,omitempty"`
	ChallengeID int        `gorm:"column:challenge_id;index" json:"challenge_id"`
	StageID     *int       `gorm:"column:stage_id;index" json:"stage_id,omitempty"`
	SessionID   *string    `gorm:"column:session_id" json:"session_id,omitempty"`
	Status      string     `gorm:"column:status;size:20;default:submitted" json:"status"`
	Votes       int        `gorm:"column:votes;default:0" json:"votes"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Creator  User           `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Team     *Team          `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Comments []IdeaComment  `gorm:"foreignKey:IdeaID" json:"comments,omitempty"`
	Feedback []IdeaFeedback `gorm:"foreignKey:IdeaID" json:"feedback,omitempty"`
}

type IdeaComment struct {
	CommentID int        `gorm:"primaryKey;column:comment_id" json:"comment_id"`
	IdeaID    int        `gorm:"column:idea_id;index" json:"idea_id"`
	AuthorID  int        `gorm:"column:author_id" json:"author_id"`
	Text      string     `gorm:"column:text;type:text" json:"text"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// IdeaFeedback is one reviewer rating. Dimension scores are nullable so a
// reviewer can skip dimensions; averages only count the scores present.
type IdeaFeedback struct {
	FeedbackID     int        `gorm:"primaryKey;column:feedback_id" json:"feedback_id"`
	IdeaID         int        `gorm:"column:idea_id;index" json:"idea_id"`
	AuthorID       int        `gorm:"column:author_id" json:"author_id"`
	Scalability    *float64   `gorm:"column:scalability" json:"scalability,omitempty"`
	Sustainability *float64   `gorm:"column:sustainability" json:"sustainability,omitempty"`
	Innovation     *float64   `gorm:"column:innovation" json:"innovation,omitempty"`
	Impact         *float64   `gorm:"column:impact" json:"impact,omitempty"`
	Comment        string     `gorm:"column:comment;type:text" json:"comment"`
	CreateAt       *time.Time `gorm:"column:create_at" json:"create_at"`

	Author User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Idea) TableName() string {
	return "ideas"
}

func (IdeaComment) TableName() string {
	return "idea_comments"
}

func (IdeaFeedback) TableName() string {
	return "idea_feedback"
}
