package controllers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"minutes/minutes/sources/psql/models"
	"minutes/minutes/utils/types"

	"github.com/google/uuid"
)

type WorkspaceStore interface {
	CreateWorkspace(ctx context.Context, workspace *models.Workspace) error
	GetWorkspaceByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	AddMember(ctx context.Context, workspaceID uuid.UUID, userID int) error
	CountMembers(ctx context.Context, workspaceID uuid.UUID) (int64, error)
}

type MeetingCounter interface {
	CountMeetingsSince(ctx context.Context, workspaceID uuid.UUID, since time.Time) (int64, error)
}

type ActionItemCounter interface {
	CountActionItems(ctx context.Context, workspaceID uuid.UUID, status string) (int64, error)
}

type WorkspacesController struct {
	workspaces WorkspaceStore
	meetings   MeetingCounter
	items      ActionItemCounter

	now func() time.Time
}

func NewWorkspacesController(workspaces WorkspaceStore, meetings MeetingCounter, items ActionItemCounter) *WorkspacesController {
	return &WorkspacesController{
		workspaces: workspaces,
		meetings:   meetings,
		items:      items,
		now:        time.Now,
	}
}

func (c *WorkspacesController) CreateWorkspace(ctx context.Context, userID int, name string) (*models.Workspace, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}
	workspace := &models.Workspace{Name: name, OwnerID: userID}
	if err := c.workspaces.CreateWorkspace(ctx, workspace); err != nil {
		return nil, err
	}
	return workspace, nil
}

func (c *WorkspacesController) AddMember(ctx context.Context, workspaceID uuid.UUID, userID int) error {
	workspace, err := c.workspaces.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if workspace == nil {
		return fmt.Errorf("%w: workspace %s", ErrNotFound, workspaceID)
	}
	return c.workspaces.AddMember(ctx, workspaceID, userID)
}

func (c *WorkspacesController) Stats(ctx context.Context, workspaceID uuid.UUID) (*types.WorkspaceStats, error) {
	workspace, err := c.workspaces.GetWorkspaceByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, fmt.Errorf("%w: workspace %s", ErrNotFound, workspaceID)
	}

	weekly, err := c.meetings.CountMeetingsSince(ctx, workspaceID, c.now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	total, err := c.items.CountActionItems(ctx, workspaceID, "")
	if err != nil {
		return nil, err
	}
	pending, err := c.items.CountActionItems(ctx, workspaceID, models.ActionItemPending)
	if err != nil {
		return nil, err
	}
	members, err := c.workspaces.CountMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return &types.WorkspaceStats{
		WeeklyMeetings:     weekly,
		TotalActionItems:   total,
		PendingActionItems: pending,
		MemberCount:        members,
	}, nil
}
