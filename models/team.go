package models

import (
	"time"
)

type Team struct {
	TeamID      int        `gorm:"primaryKey;column:team_id" json:"team_id"`
	Name        string     `gorm:"column:name" json:"name"`
	CreatorID   int        `gorm:"column:creator_id" json:"creator_id"`
	ChallengeID int        `gorm:"column:challenge_id;index" json:"challenge_id"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`

	// Relations
	Creator   User          `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Challenge Challenge     `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
	Members   []TeamMember  `gorm:"foreignKey:TeamID" json:"members,omitempty"`
	Messages  []TeamMessage `gorm:"foreignKey:TeamID" json:"messages,omitempty"`
}

// TeamMember is one membership row. The composite unique index makes
// duplicate membership impossible at the storage layer as well as in the
// controller check.
type TeamMember struct {
	MemberID int        `gorm:"primaryKey;column:member_id" json:"member_id"`
	TeamID   int        `gorm:"column:team_id;uniqueIndex:idx_team_user" json:"team_id"`
	UserID   int        `gorm:"column:user_id;uniqueIndex:idx_team_user" json:"user_id"`
	JoinedAt *time.Time `gorm:"column:joined_at" json:"joined_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type TeamMessage struct {
	MessageID int        `gorm:"primaryKey;column:message_id" json:"message_id"`
	TeamID    int        `gorm:"column:team_id;index" json:"team_id"`
	SenderID  int        `gorm:"column:sender_id" json:"sender_id"`
	Text      string     `gorm:"column:text;type:text" json:"text"`
	CreateAt  *time.Time `gorm:"column:create_at" json:"create_at"`

	Sender User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

func (TeamMember) TableName() string {
	return "team_members"
}

func (TeamMessage) TableName() string {
	return "team_messages"
}
