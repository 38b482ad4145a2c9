package controllers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"minutes/minutes/services/ai"
	"minutes/minutes/sources/psql/models"
	"minutes/minutes/utils/logging"
	"minutes/minutes/utils/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// PlaceholderSummary is persisted when no transcript content exists or
	// the summarization gateway fails, so every completed meeting carries
	// exactly one summary.
	PlaceholderSummary = "No transcript content was captured for this meeting."

	// DefaultMeetingTitle is never allowed to overwrite a user title.
	DefaultMeetingTitle = "Untitled Meeting"
)

type MeetingStore interface {
	CreateMeeting(ctx context.Context, meeting *models.Meeting) error
	GetMeetingByID(ctx context.Context, id uuid.UUID) (*models.Meeting, error)
	UpdateMeeting(ctx context.Context, meeting *models.Meeting) error
	ListMeetingsByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]models.Meeting, error)
}

type TranscriptStore interface {
	AppendSegment(ctx context.Context, segment *models.TranscriptSegment) error
	ListSegmentsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]models.TranscriptSegment, error)
}

type SummaryStore interface {
	CreateSummary(ctx context.Context, summary *models.MeetingSummary) error
	GetSummaryByMeeting(ctx context.Context, meetingID uuid.UUID) (*models.MeetingSummary, error)
}

type ActionItemStore interface {
	CreateActionItems(ctx context.Context, items []models.ActionItem) error
	GetActionItemByID(ctx context.Context, id uuid.UUID) (*models.ActionItem, error)
	UpdateActionItem(ctx context.Context, item *models.ActionItem) error
	ListActionItemsByMeeting(ctx context.Context, meetingID uuid.UUID) ([]models.ActionItem, error)
	ListActionItemsByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]models.ActionItem, error)
}

// Summarizer is the summarization gateway seen from the orchestrator.
type Summarizer interface {
	Summarize(ctx context.Context, transcript, title string) (*ai.MeetingDigest, error)
}

// AudioReader fetches archived recordings by key; nil when archiving is
// disabled.
type AudioReader interface {
	GetRecording(ctx context.Context, key string) ([]byte, error)
}

// MeetingsController orchestrates the meeting lifecycle: start, stop,
// derived fields, and the post-stop summarization workflow.
type MeetingsController struct {
	meetings    MeetingStore
	transcripts TranscriptStore
	summaries   SummaryStore
	items       ActionItemStore
	summarizer  Summarizer
	audio       AudioReader

	now   func() time.Time
	spawn func(func())
}

func NewMeetingsController(meetings MeetingStore, transcripts TranscriptStore, summaries SummaryStore, items ActionItemStore, summarizer Summarizer, audio AudioReader) *MeetingsController {
	return &MeetingsController{
		meetings:    meetings,
		transcripts: transcripts,
		summaries:   summaries,
		items:       items,
		summarizer:  summarizer,
		audio:       audio,
		now:         time.Now,
		spawn:       func(f func()) { go f() },
	}
}

// StartMeeting creates a meeting already in recording state.
func (c *MeetingsController) StartMeeting(ctx context.Context, workspaceID uuid.UUID, userID int, title string) (*models.Meeting, error) {
	title = strings.TrimSpace(title)
	if workspaceID == uuid.Nil || title == "" {
		return nil, fmt.Errorf("%w: workspaceId and title are required", ErrInvalidArgument)
	}
	start := c.now()
	meeting := &models.Meeting{
		WorkspaceID: workspaceID,
		CreatedBy:   userID,
		Title:       title,
		Status:      models.MeetingRecording,
		StartTime:   &start,
	}
	if err := c.meetings.CreateMeeting(ctx, meeting); err != nil {
		return nil, err
	}
	return meeting, nil
}

// StopMeeting completes the meeting, derives its duration, and schedules
// summary generation off the caller's path. A second stop on an already
// completed meeting is a no-op.
func (c *MeetingsController) StopMeeting(ctx context.Context, meetingID uuid.UUID) error {
	meeting, err := c.meetings.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if meeting == nil {
		return fmt.Errorf("%w: meeting %s", ErrNotFound, meetingID)
	}
	if meeting.Status == models.MeetingCompleted {
		return nil
	}

	end := c.now()
	duration := 0
	if meeting.StartTime != nil && end.After(*meeting.StartTime) {
		duration = int(end.Sub(*meeting.StartTime).Seconds())
	}
	meeting.Status = models.MeetingCompleted
	meeting.EndTime = &end
	meeting.Duration = duration
	if err := c.meetings.UpdateMeeting(ctx, meeting); err != nil {
		return err
	}

	c.spawn(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if err := c.GenerateSummary(ctx, meetingID); err != nil {
			logging.ErrorLogger.Error("summary generation failed",
				zap.String("meeting", meetingID.String()),
				zap.Error(err),
			)
		}
	})
	return nil
}

// GenerateSummary produces the meeting's one and only summary. An empty
// transcript or a gateway failure both degrade to a placeholder summary
// with no action items; the gateway is never called on an empty
// transcript.
func (c *MeetingsController) GenerateSummary(ctx context.Context, meetingID uuid.UUID) error {
	meeting, err := c.meetings.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if meeting == nil {
		return fmt.Errorf("%w: meeting %s", ErrNotFound, meetingID)
	}

	existing, err := c.summaries.GetSummaryByMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	segments, err := c.transcripts.ListSegmentsByMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	transcript := Transcript(segments)
	if strings.TrimSpace(transcript) == "" {
		return c.summaries.CreateSummary(ctx, placeholder(meetingID))
	}

	digest, err := c.summarizer.Summarize(ctx, transcript, meeting.Title)
	if err != nil {
		logging.ErrorLogger.Error("summarization gateway failed",
			zap.String("meeting", meetingID.String()),
			zap.Error(err),
		)
		return c.summaries.CreateSummary(ctx, placeholder(meetingID))
	}

	summary := &models.MeetingSummary{
		MeetingID:    meetingID,
		Summary:      digest.Summary,
		KeyTakeaways: digest.KeyTakeaways,
		Decisions:    digest.Decisions,
	}
	if err := c.summaries.CreateSummary(ctx, summary); err != nil {
		return err
	}

	items := make([]models.ActionItem, 0, len(digest.ActionItems))
	for _, d := range digest.ActionItems {
		task := strings.TrimSpace(d.Task)
		if task == "" {
			continue
		}
		assignee := strings.TrimSpace(d.Assignee)
		if assignee == "" {
			assignee = "Unassigned"
		}
		items = append(items, models.ActionItem{
			MeetingID:    meetingID,
			WorkspaceID:  meeting.WorkspaceID,
			Task:         task,
			AssigneeName: assignee,
			Priority:     normalizePriority(d.Priority),
			DueDate:      parseDueDate(d.DueDate),
			Status:       models.ActionItemPending,
		})
	}
	if err := c.items.CreateActionItems(ctx, items); err != nil {
		return err
	}

	// Documented side effect: the summarizer may replace the user-supplied
	// title with its own suggestion.
	aiTitle := strings.TrimSpace(digest.Title)
	if aiTitle != "" && aiTitle != DefaultMeetingTitle && aiTitle != meeting.Title {
		meeting.Title = aiTitle
		if err := c.meetings.UpdateMeeting(ctx, meeting); err != nil {
			return err
		}
	}
	return nil
}

// GetMeetingDetail assembles the full meeting payload.
func (c *MeetingsController) GetMeetingDetail(ctx context.Context, meetingID uuid.UUID) (*types.MeetingDetail, error) {
	meeting, err := c.meetings.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, fmt.Errorf("%w: meeting %s", ErrNotFound, meetingID)
	}
	segments, err := c.transcripts.ListSegmentsByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	summary, err := c.summaries.GetSummaryByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	items, err := c.items.ListActionItemsByMeeting(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if segments == nil {
		segments = []models.TranscriptSegment{}
	}
	if items == nil {
		items = []models.ActionItem{}
	}
	return &types.MeetingDetail{
		Meeting:            meeting,
		Participants:       []string{},
		TranscriptSegments: segments,
		Summary:            summary,
		ActionItems:        items,
		Tags:               []string{},
	}, nil
}

func (c *MeetingsController) ListWorkspaceMeetings(ctx context.Context, workspaceID uuid.UUID, limit int) ([]models.Meeting, error) {
	return c.meetings.ListMeetingsByWorkspace(ctx, workspaceID, limit)
}

// AppendTranscript persists one segment and recomputes the meeting's word
// count from the full transcript. Recomputation is O(total words), which
// is acceptable because segments are append-only.
func (c *MeetingsController) AppendTranscript(ctx context.Context, meetingID uuid.UUID, speaker, text string, at time.Time, confidence float64) error {
	if strings.TrimSpace(speaker) == "" {
		speaker = "Unknown Speaker"
	}
	segment := &models.TranscriptSegment{
		MeetingID:  meetingID,
		Speaker:    speaker,
		Text:       text,
		Timestamp:  at,
		Confidence: confidence,
	}
	if err := c.transcripts.AppendSegment(ctx, segment); err != nil {
		return err
	}

	meeting, err := c.meetings.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if meeting == nil {
		return fmt.Errorf("%w: meeting %s", ErrNotFound, meetingID)
	}
	segments, err := c.transcripts.ListSegmentsByMeeting(ctx, meetingID)
	if err != nil {
		return err
	}
	meeting.WordCount = wordCount(segments)
	return c.meetings.UpdateMeeting(ctx, meeting)
}

// RecordingAudio returns the archived recording of a meeting. Meetings
// recorded before archiving was enabled, or on deployments without an
// archive, have no audio and report NotFound.
func (c *MeetingsController) RecordingAudio(ctx context.Context, meetingID uuid.UUID) ([]byte, error) {
	meeting, err := c.meetings.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}
	if meeting == nil {
		return nil, fmt.Errorf("%w: meeting %s", ErrNotFound, meetingID)
	}
	if c.audio == nil || meeting.AudioKey == "" {
		return nil, fmt.Errorf("%w: no archived audio for meeting %s", ErrNotFound, meetingID)
	}
	return c.audio.GetRecording(ctx, meeting.AudioKey)
}

// SetAudioKey records where the raw recording was archived.
func (c *MeetingsController) SetAudioKey(ctx context.Context, meetingID uuid.UUID, key string) error {
	meeting, err := c.meetings.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return err
	}
	if meeting == nil {
		return fmt.Errorf("%w: meeting %s", ErrNotFound, meetingID)
	}
	meeting.AudioKey = key
	return c.meetings.UpdateMeeting(ctx, meeting)
}

// Transcript renders segments as speaker-prefixed lines in timestamp
// order.
func Transcript(segments []models.TranscriptSegment) string {
	var sb strings.Builder
	for _, segment := range segments {
		fmt.Fprintf(&sb, "%s: %s\n", segment.Speaker, segment.Text)
	}
	return sb.String()
}

func wordCount(segments []models.TranscriptSegment) int {
	total := 0
	for _, segment := range segments {
		total += len(strings.Fields(segment.Text))
	}
	return total
}

func placeholder(meetingID uuid.UUID) *models.MeetingSummary {
	return &models.MeetingSummary{
		MeetingID:    meetingID,
		Summary:      PlaceholderSummary,
		KeyTakeaways: models.StringList{},
		Decisions:    models.StringList{},
	}
}

func normalizePriority(p string) string {
	switch strings.ToLower(strings.TrimSpace(p)) {
	case models.PriorityHigh:
		return models.PriorityHigh
	case models.PriorityLow:
		return models.PriorityLow
	default:
		return models.PriorityMedium
	}
}

func parseDueDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
