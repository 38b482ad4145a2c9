package ai

import (
	"context"

	httputils "minutes/minutes/utils/http"
	"minutes/minutes/utils/logging"

	"go.uber.org/zap"
)

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe sends one audio blob to the speech-to-text endpoint and
// returns the recognized text. Failures and empty results are both
// reported as an empty string with the error; callers treat them as a
// degraded (not fatal) outcome.
func (c *Client) Transcribe(ctx context.Context, audio []byte) (string, error) {
	defer logging.LogDuration(ctx, "ai_transcribe")()

	fields := map[string]string{"model": transcriptionModel}
	var resp transcriptionResponse
	err := httputils.PostMultipart(ctx, c.baseURL+"/audio/transcriptions", c.headers(),
		fields, "file", "audio.webm", audio, &resp)
	if err != nil {
		logging.ErrorLogger.Error("transcription request failed", zap.Error(err))
		return "", err
	}
	return resp.Text, nil
}
