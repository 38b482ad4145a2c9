package chatcontext

import (
	"context"
	"fmt"
	"strings"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
)

const (
	// How many recent meetings to include when the caller names none.
	recentMeetingLimit = 5
	// How many transcript segments to quote per meeting.
	segmentExcerptLimit = 10
)

// Store is the read-only slice of persistence the assembler needs.
type Store interface {
	GetMeetingByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error)
	ListMeetingsByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]models.Meeting, error)
	GetSummaryByMeeting(ctx context.Context, meetingID uuid.UUID) (*models.MeetingSummary, error)
	ListActionItemsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]models.ActionItem, error)
	ListSegmentsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]models.TranscriptSegment, error)
}

// Assembler builds the plain-text context handed to the query-answering
// gateway. Context grows linearly with selected meetings; there is no
// relevance ranking or token budget at the target (small workspace) scale.
type Assembler struct {
	store Store
}

func NewAssembler(store Store) *Assembler {
	return &Assembler{store: store}
}

// Build returns the concatenated context blocks plus the ids of the
// meetings actually included, in order. An empty meetingIDs list falls
// back to the workspace's most recent meetings.
func (a *Assembler) Build(ctx context.Context, workspaceID uuid.UUID, meetingIDs []uuid.UUID) (string, []uuid.UUID, error) {
	var meetings []models.Meeting
	if len(meetingIDs) == 0 {
		recent, err := a.store.ListMeetingsByWorkspace(ctx, workspaceID, recentMeetingLimit)
		if err != nil {
			return "", nil, err
		}
		meetings = recent
	} else {
		for _, id := range meetingIDs {
			meeting, err := a.store.GetMeetingByID(ctx, id)
			if err != nil {
				return "", nil, err
			}
			if meeting == nil {
				continue
			}
			meetings = append(meetings, *meeting)
		}
	}

	var sb strings.Builder
	used := make([]uuid.UUID, 0, len(meetings))
	for _, meeting := range meetings {
		block, err := a.meetingBlock(ctx, meeting)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(block)
		used = append(used, meeting.ID)
	}
	return sb.String(), used, nil
}

func (a *Assembler) meetingBlock(ctx context.Context, meeting models.Meeting) (string, error) {
	var sb strings.Builder

	date := meeting.CreatedAt
	if meeting.StartTime != nil {
		date = *meeting.StartTime
	}
	fmt.Fprintf(&sb, "## Meeting: %s\n", meeting.Title)
	fmt.Fprintf(&sb, "Date: %s\n", date.Format("2006-01-02"))

	summary, err := a.store.GetSummaryByMeeting(ctx, meeting.ID)
	if err != nil {
		return "", err
	}
	if summary != nil {
		fmt.Fprintf(&sb, "Summary: %s\n", summary.Summary)
		if len(summary.KeyTakeaways) > 0 {
			sb.WriteString("Key takeaways:\n")
			for _, t := range summary.KeyTakeaways {
				fmt.Fprintf(&sb, "- %s\n", t)
			}
		}
		if len(summary.Decisions) > 0 {
			sb.WriteString("Decisions:\n")
			for _, d := range summary.Decisions {
				fmt.Fprintf(&sb, "- %s\n", d)
			}
		}
	}

	items, err := a.store.ListActionItemsByMeeting(ctx, meeting.ID)
	if err != nil {
		return "", err
	}
	if len(items) > 0 {
		sb.WriteString("Action items:\n")
		for _, item := range items {
			fmt.Fprintf(&sb, "- %s (%s, %s)\n", item.Task, item.AssigneeName, item.Priority)
		}
	}

	segments, err := a.store.ListSegmentsByMeeting(ctx, meeting.ID)
	if err != nil {
		return "", err
	}
	if len(segments) > 0 {
		sb.WriteString("Discussion points:\n")
		for i, segment := range segments {
			if i >= segmentExcerptLimit {
				break
			}
			fmt.Fprintf(&sb, "- %s: %s\n", segment.Speaker, segment.Text)
		}
	}

	sb.WriteString("\n")
	return sb.String(), nil
}
