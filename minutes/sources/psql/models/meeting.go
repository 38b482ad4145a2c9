package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingStatus string

const (
	MeetingScheduled MeetingStatus = "scheduled"
	MeetingRecording MeetingStatus = "recording"
	MeetingCompleted MeetingStatus = "completed"
)

type Meeting struct {
	ID          uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	WorkspaceID uuid.UUID     `json:"workspace_id" gorm:"type:uuid;not null;index"`
	Workspace   Workspace     `json:"-" gorm:"foreignKey:WorkspaceID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedBy   int           `json:"created_by" gorm:"not null"`
	Creator     User          `json:"-" gorm:"foreignKey:CreatedBy;references:ID;constraint:OnDelete:CASCADE"`
	Title       string        `json:"title" gorm:"type:varchar(255);not null"`
	Status      MeetingStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled'"`
	StartTime   *time.Time    `json:"start_time,omitempty"`
	EndTime     *time.Time    `json:"end_time,omitempty"`
	// Duration is derived at stop time, in whole seconds.
	Duration  int    `json:"duration" gorm:"not null;default:0"`
	WordCount int    `json:"word_count" gorm:"not null;default:0"`
	AudioKey  string `json:"audio_key,omitempty" gorm:"type:varchar(512);default:''"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Meeting) TableName() string {
	return "meetings"
}

func (m *Meeting) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}
