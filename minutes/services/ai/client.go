package ai

import (
	"context"
	"fmt"

	"minutes/minutes/config"
	httputils "minutes/minutes/utils/http"
	"minutes/minutes/utils/logging"
)

const (
	chatModel          = "gpt-4o-mini"
	transcriptionModel = "whisper-1"
)

// Client talks to an OpenAI-compatible API. Pointing OpenAIBaseURL at a
// local server (Ollama, vLLM) works as long as it speaks the same routes.
type Client struct {
	apiKey  string
	baseURL string
}

func NewClient(cfg config.Config) *Client {
	return &Client{
		apiKey:  cfg.OpenAIAPIKey,
		baseURL: cfg.OpenAIBaseURL,
	}
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) headers() map[string]string {
	return map[string]string{"Authorization": "Bearer " + c.apiKey}
}

// Chat runs one non-streaming completion and returns the first choice.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	defer logging.LogDuration(ctx, "ai_chat")()

	req := chatRequest{Model: chatModel, Messages: messages}
	var resp chatResponse
	if err := httputils.PostJSON(ctx, c.baseURL+"/chat/completions", c.headers(), req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no content in completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
