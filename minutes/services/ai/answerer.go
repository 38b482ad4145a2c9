package ai

import (
	"context"
	"fmt"

	"minutes/minutes/utils/logging"
)

const answerSystemPrompt = `You are a meeting assistant. Answer the user's question using only the meeting context provided. When the context does not contain the answer, say so plainly.`

// Answer resolves a free-text question against assembled meeting context.
func (c *Client) Answer(ctx context.Context, question, meetingContext string) (string, error) {
	defer logging.LogDuration(ctx, "ai_answer")()

	user := fmt.Sprintf("Meeting context:\n%s\n\nQuestion: %s", meetingContext, question)
	return c.Chat(ctx, []Message{
		{Role: "system", Content: answerSystemPrompt},
		{Role: "user", Content: user},
	})
}
