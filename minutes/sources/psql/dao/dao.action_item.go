package dao

import (
	"context"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActionItemDAO struct {
	DB *gorm.DB
}

func NewActionItemDAO(db *gorm.DB) *ActionItemDAO {
	return &ActionItemDAO{DB: db}
}

func (dao *ActionItemDAO) CreateActionItems(ctx context.Context, items []models.ActionItem) error {
	if len(items) == 0 {
		return nil
	}
	return dao.DB.WithContext(ctx).Create(&items).Error
}

// GetActionItemByID returns (nil, nil) when no row exists.
func (dao *ActionItemDAO) GetActionItemByID(ctx context.Context, id uuid.UUID) (*models.ActionItem, error) {
	var item models.ActionItem
	err := dao.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (dao *ActionItemDAO) UpdateActionItem(ctx context.Context, item *models.ActionItem) error {
	return dao.DB.WithContext(ctx).Save(item).Error
}

func (dao *ActionItemDAO) ListActionItemsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]models.ActionItem, error) {
	var items []models.ActionItem
	err := dao.DB.WithContext(ctx).
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (dao *ActionItemDAO) ListActionItemsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.ActionItem, error) {
	var items []models.ActionItem
	err := dao.DB.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (dao *ActionItemDAO) CountActionItems(ctx context.Context, workspaceID uuid.UUID, status string) (int64, error) {
	var count int64
	q := dao.DB.WithContext(ctx).
		Model(&models.ActionItem{}).
		Where("workspace_id = ?", workspaceID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
