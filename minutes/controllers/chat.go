package controllers

import (
	"context"
	"fmt"
	"strings"

	"minutes/minutes/sources/psql/models"
	"minutes/minutes/utils/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ApologyAnswer is returned instead of an error when the query-answering
// gateway is unreachable; the question is still logged to history.
const ApologyAnswer = "Sorry, I couldn't process that question right now. Please try again."

// Answerer is the query-answering gateway.
type Answerer interface {
	Answer(ctx context.Context, question, meetingContext string) (string, error)
}

// ContextBuilder assembles the meeting context for one question.
type ContextBuilder interface {
	Build(ctx context.Context, workspaceID uuid.UUID, meetingIDs []uuid.UUID) (string, []uuid.UUID, error)
}

type ChatStore interface {
	SaveMessage(ctx context.Context, msg *models.ChatMessage) error
	ListMessagesByWorkspace(ctx context.Context, workspaceID uuid.UUID, limit int) ([]models.ChatMessage, error)
}

type ChatController struct {
	store    ChatStore
	builder  ContextBuilder
	answerer Answerer
}

func NewChatController(store ChatStore, builder ContextBuilder, answerer Answerer) *ChatController {
	return &ChatController{store: store, builder: builder, answerer: answerer}
}

// Chat answers one question against the meeting corpus and appends the
// exchange to the workspace's chat log.
func (c *ChatController) Chat(ctx context.Context, userID int, workspaceID uuid.UUID, message string, meetingIDs []uuid.UUID) (*models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if workspaceID == uuid.Nil || message == "" {
		return nil, fmt.Errorf("%w: workspaceId and message are required", ErrInvalidArgument)
	}

	meetingContext, used, err := c.builder.Build(ctx, workspaceID, meetingIDs)
	if err != nil {
		return nil, err
	}

	answer, err := c.answerer.Answer(ctx, message, meetingContext)
	if err != nil {
		logging.ErrorLogger.Error("query-answering gateway failed",
			zap.String("workspace", workspaceID.String()),
			zap.Error(err),
		)
		answer = ApologyAnswer
	}

	msg := &models.ChatMessage{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Message:     message,
		Response:    answer,
		ContextIDs:  used,
	}
	if err := c.store.SaveMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (c *ChatController) History(ctx context.Context, workspaceID uuid.UUID, limit int) ([]models.ChatMessage, error) {
	messages, err := c.store.ListMessagesByWorkspace(ctx, workspaceID, limit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []models.ChatMessage{}
	}
	return messages, nil
}
