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

func MeetingRoutes(ctrl *controllers.MeetingsController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Post("/start", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.StartMeetingRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			workspaceID, err := uuid.Parse(req.WorkspaceID)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: invalid workspaceId", controllers.ErrInvalidArgument)
			}
			userID, _ := middlewares.UserIDFromContext(r.Context())
			meeting, err := ctrl.StartMeeting(r.Context(), workspaceID, userID, req.Title)
			if err != nil {
				return nil, 0, err
			}
			return meeting, http.StatusOK, nil
		}))

		gr.Post("/{meeting_id}/stop", handleJSON(func(r *http.Request) (any, int, error) {
			meetingID, err := uuid.Parse(chi.URLParam(r, "meeting_id"))
			if err != nil {
				return nil, 0, fmt.Errorf("%w: invalid meeting id", controllers.ErrInvalidArgument)
			}
			if err := ctrl.StopMeeting(r.Context(), meetingID); err != nil {
				return nil, 0, err
			}
			return types.StopMeetingResponse{Success: true}, http.StatusOK, nil
		}))

		gr.Get("/{meeting_id}", handleJSON(func(r *http.Request) (any, int, error) {
			meetingID, err := uuid.Parse(chi.URLParam(r, "meeting_id"))
			if err != nil {
				return nil, 0, fmt.Errorf("%w: invalid meeting id", controllers.ErrInvalidArgument)
			}
			detail, err := ctrl.GetMeetingDetail(r.Context(), meetingID)
			if err != nil {
				return nil, 0, err
			}
			return detail, http.StatusOK, nil
		}))

		// Raw bytes, not JSON.
		gr.Get("/{meeting_id}/audio", func(w http.ResponseWriter, r *http.Request) {
			meetingID, err := uuid.Parse(chi.URLParam(r, "meeting_id"))
			if err != nil {
				http.Error(w, "invalid meeting id", http.StatusBadRequest)
				return
			}
			audio, err := ctrl.RecordingAudio(r.Context(), meetingID)
			if err != nil {
				http.Error(w, err.Error(), statusFor(err, 0))
				return
			}
			w.Header().Set("Content-Type", "audio/webm")
			w.Write(audio)
		})
	})
	return r
}
