package routes

import (
	"encoding/json"
	"fmt"
	"net/http"

	"minutes/minutes/config"
	"minutes/minutes/controllers"
	"minutes/minutes/middlewares"
	"minutes/minutes/utils/types"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func ChatRoutes(ctrl *controllers.ChatController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.ChatRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			workspaceID, err := uuid.Parse(req.WorkspaceID)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: invalid workspaceId", controllers.ErrInvalidArgument)
			}
			meetingIDs := make([]uuid.UUID, 0, len(req.MeetingIDs))
			for _, raw := range req.MeetingIDs {
				id, err := uuid.Parse(raw)
				if err != nil {
					return nil, 0, fmt.Errorf("%w: invalid meeting id %q", controllers.ErrInvalidArgument, raw)
				}
				meetingIDs = append(meetingIDs, id)
			}
			userID, _ := middlewares.UserIDFromContext(r.Context())
			msg, err := ctrl.Chat(r.Context(), userID, workspaceID, req.Message, meetingIDs)
			if err != nil {
				return nil, 0, err
			}
			return types.ChatResponse{
				ID:       msg.ID.String(),
				Message:  msg.Message,
				Response: msg.Response,
			}, http.StatusOK, nil
		}))
	})
	return r
}
