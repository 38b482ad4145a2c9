package chatcontext

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
)

type fakeStore struct {
	meetings []models.Meeting
	summary  map[uuid.UUID]*models.MeetingSummary
	items    map[uuid.UUID][]models.ActionItem
	segments map[uuid.UUID][]models.TranscriptSegment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		summary:  map[uuid.UUID]*models.MeetingSummary{},
		items:    map[uuid.UUID][]models.ActionItem{},
		segments: map[uuid.UUID][]models.TranscriptSegment{},
	}
}

func (f *fakeStore) addMeeting(title string) models.Meeting {
	meeting := models.Meeting{
		ID:          uuid.New(),
		WorkspaceID: uuid.New(),
		Title:       title,
		Status:      models.MeetingCompleted,
		CreatedAt:   time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	f.meetings = append(f.meetings, meeting)
	return meeting
}

func (f *fakeStore) GetMeetingByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error) {
	for _, meeting := range f.meetings {
		if meeting.ID == id {
			cp := meeting
			return &cp, nil
		}
	}
	return nil, nil
}

// ListMeetingsByWorkspace returns most recent first, like the DAO.
func (f *fakeStore) ListMeetingsByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]models.Meeting, error) {
	var out []models.Meeting
	for i := len(f.meetings) - 1; i >= 0; i-- {
		out = append(out, f.meetings[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (f *fakeStore) GetSummaryByMeeting(ctx context.Context, meetingID uuid.UUID) (*models.MeetingSummary, error) {
	return f.summary[meetingID], nil
}

func (f *fakeStore) ListActionItemsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]models.ActionItem, error) {
	return f.items[meetingID], nil
}

func (f *fakeStore) ListSegmentsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]models.TranscriptSegment, error) {
	return f.segments[meetingID], nil
}

func TestBuildFallsBackToRecentMeetings(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	for i := 0; i < 8; i++ {
		store.addMeeting(fmt.Sprintf("Meeting %d", i))
	}
	a := NewAssembler(store)

	_, used, err := a.Build(ctx, uuid.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(used) != 5 {
		t.Errorf("expected fallback to 5 recent meetings, got %d", len(used))
	}
	// Most recent first.
	if used[0] != store.meetings[7].ID {
		t.Errorf("expected most recent meeting first, got %s", used[0])
	}
}

func TestBuildHonorsExplicitSelection(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	first := store.addMeeting("Planning")
	second := store.addMeeting("Retro")
	store.addMeeting("Unrelated")
	a := NewAssembler(store)

	text, used, err := a.Build(ctx, uuid.New(), []uuid.UUID{second.ID, first.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(used) != 2 || used[0] != second.ID || used[1] != first.ID {
		t.Errorf("expected selection order preserved, got %v", used)
	}
	if strings.Contains(text, "Unrelated") {
		t.Error("unselected meeting leaked into the context")
	}
	if strings.Index(text, "Retro") > strings.Index(text, "Planning") {
		t.Error("blocks out of selection order")
	}
}

func TestBuildSkipsMissingMeetings(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	known := store.addMeeting("Planning")
	a := NewAssembler(store)

	_, used, err := a.Build(ctx, uuid.New(), []uuid.UUID{uuid.New(), known.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(used) != 1 || used[0] != known.ID {
		t.Errorf("expected only the known meeting, got %v", used)
	}
}

func TestMeetingBlockContent(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	meeting := store.addMeeting("Q3 Planning")
	store.summary[meeting.ID] = &models.MeetingSummary{
		MeetingID:    meeting.ID,
		Summary:      "The team planned Q3.",
		KeyTakeaways: models.StringList{"Focus on reliability"},
		Decisions:    models.StringList{"Hire two engineers"},
	}
	store.items[meeting.ID] = []models.ActionItem{
		{Task: "Draft the roadmap", AssigneeName: "Alice", Priority: models.PriorityHigh},
	}
	store.segments[meeting.ID] = []models.TranscriptSegment{
		{Speaker: "Alice", Text: "reliability first"},
	}
	a := NewAssembler(store)

	text, _, err := a.Build(ctx, uuid.New(), []uuid.UUID{meeting.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"## Meeting: Q3 Planning",
		"Date: 2026-03-14",
		"Summary: The team planned Q3.",
		"- Focus on reliability",
		"- Hire two engineers",
		"- Draft the roadmap (Alice, high)",
		"- Alice: reliability first",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("context missing %q:\n%s", want, text)
		}
	}
}

func TestMeetingBlockCapsSegments(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	meeting := store.addMeeting("Long Meeting")
	for i := 0; i < 25; i++ {
		store.segments[meeting.ID] = append(store.segments[meeting.ID], models.TranscriptSegment{
			Speaker: "Bob",
			Text:    fmt.Sprintf("point %d", i),
		})
	}
	a := NewAssembler(store)

	text, _, err := a.Build(ctx, uuid.New(), []uuid.UUID{meeting.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(text, "- Bob:"); got != 10 {
		t.Errorf("expected 10 quoted segments, got %d", got)
	}
	if strings.Contains(text, "point 10") {
		t.Error("segments past the excerpt cap leaked into the context")
	}
}

func TestBuildEmptyWorkspace(t *testing.T) {
	a := NewAssembler(newFakeStore())
	text, used, err := a.Build(context.Background(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "" || len(used) != 0 {
		t.Errorf("expected empty context, got %q with %v", text, used)
	}
}
