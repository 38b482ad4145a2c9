package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"minutes/minutes/utils/jsonutils"
	"minutes/minutes/utils/logging"

	"go.uber.org/zap"
)

// MeetingDigest is the structured output of one summarization call.
type MeetingDigest struct {
	Title        string             `json:"title"`
	Summary      string             `json:"summary"`
	KeyTakeaways []string           `json:"keyTakeaways"`
	Decisions    []string           `json:"decisions"`
	ActionItems  []DigestActionItem `json:"actionItems"`
}

type DigestActionItem struct {
	Task     string `json:"task"`
	Assignee string `json:"assignee"`
	Priority string `json:"priority"`
	DueDate  string `json:"dueDate,omitempty"`
}

const summarizeSystemPrompt = `You are a meeting analyst. Given a meeting transcript, produce a JSON object with:
- "title": a short descriptive meeting title
- "summary": 2-4 sentences of prose summarizing the conversation
- "keyTakeaways": ordered list of the most important points
- "decisions": ordered list of decisions that were made
- "actionItems": list of {"task", "assignee", "priority", "dueDate"} where priority is one of high/medium/low, assignee is the person's name as mentioned (or "Unassigned"), and dueDate is ISO 8601 or omitted
Respond with JSON only.`

// Summarize turns a full transcript into a structured digest.
func (c *Client) Summarize(ctx context.Context, transcript, title string) (*MeetingDigest, error) {
	defer logging.LogDuration(ctx, "ai_summarize")()

	user := fmt.Sprintf("Meeting title: %s\n\nTranscript:\n%s", title, transcript)
	raw, err := c.Chat(ctx, []Message{
		{Role: "system", Content: summarizeSystemPrompt},
		{Role: "user", Content: user},
	})
	if err != nil {
		return nil, err
	}

	var digest MeetingDigest
	if err := json.Unmarshal([]byte(jsonutils.ExtractJSON(raw)), &digest); err != nil {
		logging.ErrorLogger.Error("summarizer returned unparseable JSON", zap.Error(err))
		return nil, fmt.Errorf("invalid digest format: %w", err)
	}
	return &digest, nil
}
