package dao

import (
	"context"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceDAO struct {
	DB *gorm.DB
}

func NewWorkspaceDAO(db *gorm.DB) *WorkspaceDAO {
	return &WorkspaceDAO{DB: db}
}

func (dao *WorkspaceDAO) CreateWorkspace(ctx context.Context, workspace *models.Workspace) error {
	if err := dao.DB.WithContext(ctx).Create(workspace).Error; err != nil {
		return err
	}
	// The owner is always a member.
	member := models.WorkspaceMember{
		WorkspaceID: workspace.ID,
		UserID:      workspace.OwnerID,
		Role:        "owner",
	}
	return dao.DB.WithContext(ctx).Create(&member).Error
}

// GetWorkspaceByID returns (nil, nil) when no row exists.
func (dao *WorkspaceDAO) GetWorkspaceByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	err := dao.DB.WithContext(ctx).Where("id = ?", id).First(&workspace).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}

func (dao *WorkspaceDAO) AddMember(ctx context.Context, workspaceID uuid.UUID, userID int) error {
	member := models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
	}
	return dao.DB.WithContext(ctx).Create(&member).Error
}

func (dao *WorkspaceDAO) CountMembers(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	var count int64
	err := dao.DB.WithContext(ctx).
		Model(&models.WorkspaceMember{}).
		Where("workspace_id = ?", workspaceID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
