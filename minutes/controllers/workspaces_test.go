package controllers

import (
	"context"
	"errors"
	"testing"
	"time"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
)

type fakeWorkspaceStore struct {
	workspaces map[uuid.UUID]*models.Workspace
	members    map[uuid.UUID][]int
}

func newFakeWorkspaceStore() *fakeWorkspaceStore {
	return &fakeWorkspaceStore{
		workspaces: map[uuid.UUID]*models.Workspace{},
		members:    map[uuid.UUID][]int{},
	}
}

func (f *fakeWorkspaceStore) CreateWorkspace(ctx context.Context, workspace *models.Workspace) error {
	if workspace.ID == uuid.Nil {
		workspace.ID = uuid.New()
	}
	cp := *workspace
	f.workspaces[workspace.ID] = &cp
	f.members[workspace.ID] = []int{workspace.OwnerID}
	return nil
}

func (f *fakeWorkspaceStore) GetWorkspaceByID(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	workspace, ok := f.workspaces[id]
	if !ok {
		return nil, nil
	}
	cp := *workspace
	return &cp, nil
}

func (f *fakeWorkspaceStore) AddMember(ctx context.Context, workspaceID uuid.UUID, userID int) error {
	f.members[workspaceID] = append(f.members[workspaceID], userID)
	return nil
}

func (f *fakeWorkspaceStore) CountMembers(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	return int64(len(f.members[workspaceID])), nil
}

type fakeCounters struct {
	weekly       int64
	sinceArg     time.Time
	byStatus     map[string]int64
	statusesSeen []string
}

func (f *fakeCounters) CountMeetingsSince(ctx context.Context, workspaceID uuid.UUID, since time.Time) (int64, error) {
	f.sinceArg = since
	return f.weekly, nil
}

func (f *fakeCounters) CountActionItems(ctx context.Context, workspaceID uuid.UUID, status string) (int64, error) {
	f.statusesSeen = append(f.statusesSeen, status)
	return f.byStatus[status], nil
}

func TestCreateWorkspace(t *testing.T) {
	ctx := context.Background()
	store := newFakeWorkspaceStore()
	c := NewWorkspacesController(store, &fakeCounters{}, &fakeCounters{})

	workspace, err := c.CreateWorkspace(ctx, 4, "  Platform Team  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if workspace.Name != "Platform Team" {
		t.Errorf("expected trimmed name, got %q", workspace.Name)
	}
	if workspace.OwnerID != 4 {
		t.Errorf("expected owner 4, got %d", workspace.OwnerID)
	}

	if _, err := c.CreateWorkspace(ctx, 4, "   "); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for blank name, got %v", err)
	}
}

func TestAddMemberUnknownWorkspace(t *testing.T) {
	c := NewWorkspacesController(newFakeWorkspaceStore(), &fakeCounters{}, &fakeCounters{})
	if err := c.AddMember(context.Background(), uuid.New(), 9); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestWorkspaceStats(t *testing.T) {
	ctx := context.Background()
	store := newFakeWorkspaceStore()
	meetings := &fakeCounters{weekly: 3}
	items := &fakeCounters{byStatus: map[string]int64{"": 10, models.ActionItemPending: 4}}
	c := NewWorkspacesController(store, meetings, items)

	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	workspace, err := c.CreateWorkspace(ctx, 1, "Platform Team")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stats, err := c.Stats(ctx, workspace.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if stats.WeeklyMeetings != 3 || stats.TotalActionItems != 10 || stats.PendingActionItems != 4 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.MemberCount != 1 {
		t.Errorf("expected owner counted as member, got %d", stats.MemberCount)
	}
	if want := now.AddDate(0, 0, -7); !meetings.sinceArg.Equal(want) {
		t.Errorf("expected weekly window starting %v, got %v", want, meetings.sinceArg)
	}

	if _, err := c.Stats(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown workspace, got %v", err)
	}
}
