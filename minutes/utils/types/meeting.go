package types

import "minutes/minutes/sources/psql/models"

type StartMeetingRequest struct {
	WorkspaceID string `json:"workspaceId"`
	Title       string `json:"title"`
}

type StopMeetingResponse struct {
	Success bool `json:"success"`
}

// MeetingDetail is the full GET /api/meetings/{id} payload. Participants
// and tags are carried for response-shape stability even though nothing
// populates them yet.
type MeetingDetail struct {
	Meeting            *models.Meeting            `json:"meeting"`
	Participants       []string                   `json:"participants"`
	TranscriptSegments []models.TranscriptSegment `json:"transcriptSegments"`
	Summary            *models.MeetingSummary     `json:"summary,omitempty"`
	ActionItems        []models.ActionItem        `json:"actionItems"`
	Tags               []string                   `json:"tags"`
}

type UpdateActionItemRequest struct {
	Task         *string `json:"task,omitempty"`
	AssigneeName *string `json:"assignee_name,omitempty"`
	Priority     *string `json:"priority,omitempty"`
	DueDate      *string `json:"due_date,omitempty"`
	Status       *string `json:"status,omitempty"`
}

type WorkspaceStats struct {
	WeeklyMeetings     int64 `json:"weeklyMeetings"`
	TotalActionItems   int64 `json:"totalActionItems"`
	PendingActionItems int64 `json:"pendingActionItems"`
	MemberCount        int64 `json:"memberCount"`
}

type CreateWorkspaceRequest struct {
	Name string `json:"name"`
}

type AddMemberRequest struct {
	UserID int `json:"userId"`
}

type AddMemberResponse struct {
	Success bool `json:"success"`
}
