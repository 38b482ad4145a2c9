package dao

import (
	"context"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatMessageDAO struct {
	DB *gorm.DB
}

func NewChatMessageDAO(db *gorm.DB) *ChatMessageDAO {
	return &ChatMessageDAO{DB: db}
}

func (dao *ChatMessageDAO) SaveMessage(ctx context.Context, msg *models.ChatMessage) error {
	return dao.DB.WithContext(ctx).Create(msg).Error
}

// ListMessagesByWorkspace returns up to limit messages in chronological
// order, keeping the most recent ones when the log exceeds the limit.
func (dao *ChatMessageDAO) ListMessagesByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	q := dao.DB.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&messages).Error; err != nil {
		return nil, err
	}
	// Reverse into chronological order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
