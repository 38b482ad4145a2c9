package dao

import (
	"context"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TranscriptDAO struct {
	DB *gorm.DB
}

func NewTranscriptDAO(db *gorm.DB) *TranscriptDAO {
	return &TranscriptDAO{DB: db}
}

func (dao *TranscriptDAO) AppendSegment(ctx context.Context, segment *models.TranscriptSegment) error {
	return dao.DB.WithContext(ctx).Create(segment).Error
}

// ListSegmentsByMeeting returns segments in timestamp order, which defines
// the canonical transcript ordering.
func (dao *TranscriptDAO) ListSegmentsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]models.TranscriptSegment, error) {
	var segments []models.TranscriptSegment
	err := dao.DB.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("timestamp ASC").
		Find(&segments).Error
	if err != nil {
		return nil, err
	}
	return segments, nil
}
