package dao

import (
	"context"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SummaryDAO struct {
	DB *gorm.DB
}

func NewSummaryDAO(db *gorm.DB) *SummaryDAO {
	return &SummaryDAO{DB: db}
}

func (dao *SummaryDAO) CreateSummary(ctx context.Context, summary *models.MeetingSummary) error {
	return dao.DB.WithContext(ctx).Create(summary).Error
}

// GetSummaryByMeeting returns (nil, nil) when the meeting has no summary yet.
func (dao *SummaryDAO) GetSummaryByMeeting(ctx context.Context, meetingID uuid.UUID) (*models.MeetingSummary, error) {
	var summary models.MeetingSummary
	err := dao.DB.WithContext(ctx).Where("meeting_id = ?", meetingID).First(&summary).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
