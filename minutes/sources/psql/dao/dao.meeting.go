package dao

import (
	"context"
	"time"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MeetingDAO struct {
	DB *gorm.DB
}

func NewMeetingDAO(db *gorm.DB) *MeetingDAO {
	return &MeetingDAO{DB: db}
}

func (dao *MeetingDAO) CreateMeeting(ctx context.Context, meeting *models.Meeting) error {
	return dao.DB.WithContext(ctx).Create(meeting).Error
}

// GetMeetingByID returns (nil, nil) when no row exists.
func (dao *MeetingDAO) GetMeetingByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := dao.DB.WithContext(ctx).Where("id = ?", id).First(&meeting).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

func (dao *MeetingDAO) UpdateMeeting(ctx context.Context, meeting *models.Meeting) error {
	return dao.DB.WithContext(ctx).Save(meeting).Error
}

func (dao *MeetingDAO) ListMeetingsByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]models.Meeting, error) {
	var meetings []models.Meeting
	q := dao.DB.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&meetings).Error; err != nil {
		return nil, err
	}
	return meetings, nil
}

func (dao *MeetingDAO) CountMeetingsSince(ctx context.Context, workspaceID uuid.UUID, since time.Time) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.Meeting{}).
		Where("workspace_id = ? AND created_at >= ?", workspaceID, since).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
