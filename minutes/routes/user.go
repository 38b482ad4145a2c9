package routes

import (
	"encoding/json"
	"net/http"

	"minutes/minutes/config"
	"minutes/minutes/controllers"
	"minutes/minutes/middlewares"
	"minutes/minutes/utils/types"

	"github.com/go-chi/chi/v5"
)

func UserRoutes(ctrl *controllers.UserController, cfg config.Config) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Get("/me", handleJSON(func(r *http.Request) (any, int, error) {
			id, ok := middlewares.UserIDFromContext(r.Context())
			if !ok {
				return nil, http.StatusUnauthorized, nil
			}
			user, err := ctrl.GetUser(r.Context(), id)
			if err != nil {
				return nil, 0, err
			}
			return user, http.StatusOK, nil
		}))
	})

	r.Post("/create", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, err
		}
		user, err := ctrl.CreateUser(r.Context(), req.Username, req.Email, req.FullName)
		if err != nil {
			return nil, 0, err
		}
		return user, http.StatusOK, nil
	}))

	return r
}
