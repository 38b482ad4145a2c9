package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"minutes/minutes/config"
	"minutes/minutes/controllers"
	"minutes/minutes/middlewares"
	"minutes/minutes/utils/types"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func WorkspaceRoutes(workspaces *controllers.WorkspacesController, meetings *controllers.MeetingsController, items *controllers.ActionItemsController, chat *controllers.ChatController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.CreateWorkspaceRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			userID, _ := middlewares.UserIDFromContext(r.Context())
			workspace, err := workspaces.CreateWorkspace(r.Context(), userID, req.Name)
			if err != nil {
				return nil, 0, err
			}
			return workspace, http.StatusOK, nil
		}))

		gr.Post("/{workspace_id}/members", handleJSON(func(r *http.Request) (any, int, error) {
			workspaceID, err := parseWorkspaceID(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.AddMemberRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			if req.UserID <= 0 {
				return nil, 0, fmt.Errorf("%w: userId is required", controllers.ErrInvalidArgument)
			}
			if err := workspaces.AddMember(r.Context(), workspaceID, req.UserID); err != nil {
				return nil, 0, err
			}
			return types.AddMemberResponse{Success: true}, http.StatusOK, nil
		}))

		gr.Get("/{workspace_id}/meetings", handleJSON(func(r *http.Request) (any, int, error) {
			workspaceID, err := parseWorkspaceID(r)
			if err != nil {
				return nil, 0, err
			}
			limit := parseLimit(r, 50)
			list, err := meetings.ListWorkspaceMeetings(r.Context(), workspaceID, limit)
			if err != nil {
				return nil, 0, err
			}
			return list, http.StatusOK, nil
		}))

		gr.Get("/{workspace_id}/action-items", handleJSON(func(r *http.Request) (any, int, error) {
			workspaceID, err := parseWorkspaceID(r)
			if err != nil {
				return nil, 0, err
			}
			list, err := items.ListWorkspaceActionItems(r.Context(), workspaceID)
			if err != nil {
				return nil, 0, err
			}
			return list, http.StatusOK, nil
		}))

		gr.Get("/{workspace_id}/chat-history", handleJSON(func(r *http.Request) (any, int, error) {
			workspaceID, err := parseWorkspaceID(r)
			if err != nil {
				return nil, 0, err
			}
			limit := parseLimit(r, 50)
			history, err := chat.History(r.Context(), workspaceID, limit)
			if err != nil {
				return nil, 0, err
			}
			return history, http.StatusOK, nil
		}))

		gr.Get("/{workspace_id}/stats", handleJSON(func(r *http.Request) (any, int, error) {
			workspaceID, err := parseWorkspaceID(r)
			if err != nil {
				return nil, 0, err
			}
			stats, err := workspaces.Stats(r.Context(), workspaceID)
			if err != nil {
				return nil, 0, err
			}
			return stats, http.StatusOK, nil
		}))
	})
	return r
}

func parseWorkspaceID(r *http.Request) (uuid.UUID, error) {
	workspaceID, err := uuid.Parse(chi.URLParam(r, "workspace_id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid workspace id", controllers.ErrInvalidArgument)
	}
	return workspaceID, nil
}

func parseLimit(r *http.Request, fallback int) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
