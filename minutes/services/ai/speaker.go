package ai

import (
	"context"
	"strings"
)

// SpeakerLabeler attributes a transcript chunk to a speaker and returns
// the cleaned text. Implementations are best-effort; swapping in a real
// diarization signal later only touches this interface.
type SpeakerLabeler interface {
	Label(ctx context.Context, text string) (speaker, cleaned string)
}

// StaticLabeler attributes everything to one fixed name.
type StaticLabeler struct {
	Name string
}

func (l StaticLabeler) Label(_ context.Context, text string) (string, string) {
	name := l.Name
	if name == "" {
		name = "Unknown Speaker"
	}
	return name, text
}

// PrefixLabeler recognizes a leading "Name: text" pattern, the shape
// speech-to-text engines emit when diarization is on. Anything else falls
// through to Unknown Speaker.
type PrefixLabeler struct{}

func (PrefixLabeler) Label(_ context.Context, text string) (string, string) {
	idx := strings.Index(text, ":")
	if idx <= 0 || idx > 40 {
		return "Unknown Speaker", text
	}
	name := strings.TrimSpace(text[:idx])
	rest := strings.TrimSpace(text[idx+1:])
	if name == "" || rest == "" || strings.ContainsAny(name, ".!?\n") {
		return "Unknown Speaker", text
	}
	return name, rest
}
