package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"

	ActionItemPending   = "pending"
	ActionItemCompleted = "completed"
)

type ActionItem struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MeetingID   uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Meeting     Meeting    `json:"-" gorm:"foreignKey:MeetingID;references:ID;constraint:OnDelete:CASCADE"`
	WorkspaceID uuid.UUID  `json:"workspace_id" gorm:"type:uuid;not null;index"`
	Task        string     `json:"task" gorm:"type:text;not null"`
	// AssigneeName is free text from the summarizer; it is not required to
	// match a registered user.
	AssigneeName string     `json:"assignee_name" gorm:"type:varchar(255);default:''"`
	Priority     string     `json:"priority" gorm:"type:varchar(20);not null;default:'medium'"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Status       string     `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (ActionItem) TableName() string {
	return "action_items"
}

func (a *ActionItem) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}
