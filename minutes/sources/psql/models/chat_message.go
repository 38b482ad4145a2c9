package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ChatMessage is one question/answer pair against the meeting corpus,
// recording which meetings were used as context.
type ChatMessage struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	WorkspaceID uuid.UUID `json:"workspace_id" gorm:"type:uuid;not null;index"`
	Workspace   Workspace `json:"-" gorm:"foreignKey:WorkspaceID;references:ID;constraint:OnDelete:CASCADE"`
	UserID      int       `json:"user_id" gorm:"not null"`
	User        User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	Response    string    `json:"response" gorm:"type:text;not null"`
	ContextIDs  UUIDList  `json:"context_meeting_ids" gorm:"type:jsonb"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}
