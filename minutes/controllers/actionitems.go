package controllers

import (
	"context"
	"fmt"

	"minutes/minutes/sources/psql/models"
	"minutes/minutes/utils/types"

	"github.com/google/uuid"
)

type ActionItemsController struct {
	items ActionItemStore
}

func NewActionItemsController(items ActionItemStore) *ActionItemsController {
	return &ActionItemsController{items: items}
}

// UpdateActionItem applies a partial update; absent fields are untouched.
func (c *ActionItemsController) UpdateActionItem(ctx context.Context, id uuid.UUID, req types.UpdateActionItemRequest) (*models.ActionItem, error) {
	item, err := c.items.GetActionItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, fmt.Errorf("%w: action item %s", ErrNotFound, id)
	}

	if req.Task != nil {
		if *req.Task == "" {
			return nil, fmt.Errorf("%w: task cannot be empty", ErrInvalidArgument)
		}
		item.Task = *req.Task
	}
	if req.AssigneeName != nil {
		item.AssigneeName = *req.AssigneeName
	}
	if req.Priority != nil {
		switch *req.Priority {
		case models.PriorityHigh, models.PriorityMedium, models.PriorityLow:
			item.Priority = *req.Priority
		default:
			return nil, fmt.Errorf("%w: priority must be high, medium or low", ErrInvalidArgument)
		}
	}
	if req.Status != nil {
		switch *req.Status {
		case models.ActionItemPending, models.ActionItemCompleted:
			item.Status = *req.Status
		default:
			return nil, fmt.Errorf("%w: status must be pending or completed", ErrInvalidArgument)
		}
	}
	if req.DueDate != nil {
		item.DueDate = parseDueDate(*req.DueDate)
	}

	if err := c.items.UpdateActionItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (c *ActionItemsController) ListWorkspaceActionItems(ctx context.Context, workspaceID uuid.UUID) ([]models.ActionItem, error) {
	items, err := c.items.ListActionItemsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.ActionItem{}
	}
	return items, nil
}
