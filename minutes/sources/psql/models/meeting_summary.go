package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MeetingSummary is created exactly once per completed meeting and never
// updated afterwards.
type MeetingSummary struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MeetingID    uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;unique"`
	Meeting      Meeting    `json:"-" gorm:"foreignKey:MeetingID;references:ID;constraint:OnDelete:CASCADE"`
	Summary      string     `json:"summary" gorm:"type:text;not null"`
	KeyTakeaways StringList `json:"key_takeaways" gorm:"type:jsonb"`
	Decisions    StringList `json:"decisions" gorm:"type:jsonb"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

func (MeetingSummary) TableName() string {
	return "meeting_summaries"
}

func (s *MeetingSummary) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}
