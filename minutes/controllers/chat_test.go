package controllers

import (
	"context"
	"errors"
	"testing"

	"minutes/minutes/sources/psql/models"

	"github.com/google/uuid"
)

type fakeChatStore struct {
	messages []models.ChatMessage
}

func (f *fakeChatStore) SaveMessage(ctx context.Context, msg *models.ChatMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeChatStore) ListMessagesByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, msg := range f.messages {
		if msg.WorkspaceID == workspaceID {
			out = append(out, msg)
		}
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

type fakeContextBuilder struct {
	context string
	used    []uuid.UUID
	gotIDs  []uuid.UUID
}

func (f *fakeContextBuilder) Build(ctx context.Context, workspaceID uuid.UUID, meetingIDs []uuid.UUID) (string, []uuid.UUID, error) {
	f.gotIDs = meetingIDs
	return f.context, f.used, nil
}

type fakeAnswerer struct {
	answer      string
	err         error
	gotQuestion string
	gotContext  string
}

func (f *fakeAnswerer) Answer(ctx context.Context, question, meetingContext string) (string, error) {
	f.gotQuestion = question
	f.gotContext = meetingContext
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func TestChatAnswersAgainstContext(t *testing.T) {
	ctx := context.Background()
	used := []uuid.UUID{uuid.New(), uuid.New()}
	store := &fakeChatStore{}
	builder := &fakeContextBuilder{context: "## Meeting: Standup", used: used}
	answerer := &fakeAnswerer{answer: "Alice owns the release notes."}
	c := NewChatController(store, builder, answerer)

	workspaceID := uuid.New()
	msg, err := c.Chat(ctx, 3, workspaceID, "who owns the release notes?", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Response != "Alice owns the release notes." {
		t.Errorf("unexpected response: %q", msg.Response)
	}
	if answerer.gotContext != "## Meeting: Standup" {
		t.Errorf("answerer did not receive the assembled context: %q", answerer.gotContext)
	}
	if len(msg.ContextIDs) != 2 {
		t.Errorf("expected the meetings used as context to be recorded, got %v", msg.ContextIDs)
	}
	if len(store.messages) != 1 {
		t.Fatalf("expected one saved message, got %d", len(store.messages))
	}
	if store.messages[0].UserID != 3 || store.messages[0].Message != "who owns the release notes?" {
		t.Errorf("unexpected saved message: %+v", store.messages[0])
	}
}

func TestChatGatewayFailureApologizes(t *testing.T) {
	ctx := context.Background()
	store := &fakeChatStore{}
	builder := &fakeContextBuilder{context: "corpus"}
	answerer := &fakeAnswerer{err: errors.New("model overloaded")}
	c := NewChatController(store, builder, answerer)

	msg, err := c.Chat(ctx, 1, uuid.New(), "what did we decide?", nil)
	if err != nil {
		t.Fatalf("gateway failure should degrade, not error: %v", err)
	}
	if msg.Response != ApologyAnswer {
		t.Errorf("expected apology answer, got %q", msg.Response)
	}
	if len(store.messages) != 1 {
		t.Error("the exchange must still be logged to history")
	}
}

func TestChatValidation(t *testing.T) {
	ctx := context.Background()
	c := NewChatController(&fakeChatStore{}, &fakeContextBuilder{}, &fakeAnswerer{})

	if _, err := c.Chat(ctx, 1, uuid.Nil, "hello", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for nil workspace, got %v", err)
	}
	if _, err := c.Chat(ctx, 1, uuid.New(), "   ", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument for blank message, got %v", err)
	}
}

func TestChatForwardsRequestedMeetings(t *testing.T) {
	ctx := context.Background()
	builder := &fakeContextBuilder{}
	c := NewChatController(&fakeChatStore{}, builder, &fakeAnswerer{answer: "ok"})

	requested := []uuid.UUID{uuid.New()}
	if _, err := c.Chat(ctx, 1, uuid.New(), "summarize this one", requested); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(builder.gotIDs) != 1 || builder.gotIDs[0] != requested[0] {
		t.Errorf("expected requested meeting ids forwarded to the builder, got %v", builder.gotIDs)
	}
}

func TestHistoryNeverNil(t *testing.T) {
	c := NewChatController(&fakeChatStore{}, &fakeContextBuilder{}, &fakeAnswerer{})
	messages, err := c.History(context.Background(), uuid.New(), 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if messages == nil {
		t.Error("expected empty slice, got nil")
	}
}
