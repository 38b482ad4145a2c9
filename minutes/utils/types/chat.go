package types

type ChatRequest struct {
	WorkspaceID string   `json:"workspaceId"`
	Message     string   `json:"message"`
	MeetingIDs  []string `json:"meetingIds,omitempty"`
}

type ChatResponse struct {
	ID       string `json:"id"`
	Message  string `json:"message"`
	Response string `json:"response"`
}
