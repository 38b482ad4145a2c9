package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TranscriptSegment rows are append-only; a meeting's transcript is the
// concatenation of its segments ordered by Timestamp.
type TranscriptSegment struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	MeetingID  uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Meeting    Meeting   `json:"-" gorm:"foreignKey:MeetingID;references:ID;constraint:OnDelete:CASCADE"`
	Speaker    string    `json:"speaker" gorm:"type:varchar(255);not null;default:'Unknown Speaker'"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	Timestamp  time.Time `json:"timestamp" gorm:"not null"`
	Confidence float64   `json:"confidence" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (TranscriptSegment) TableName() string {
	return "transcript_segments"
}

func (s *TranscriptSegment) BeforeCreate(tx *gorm.DB) (err error) {
	return tx.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error
}
