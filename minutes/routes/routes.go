package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"minutes/minutes/controllers"
)

// handleJSON wraps a handler returning (payload, status, error) to cut
// encoder boilerplate.
func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			http.Error(w, err.Error(), statusFor(err, status))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(res)
	}
}

// statusFor maps controller sentinel errors onto HTTP status codes.
func statusFor(err error, fallback int) int {
	switch {
	case errors.Is(err, controllers.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, controllers.ErrNotFound):
		return http.StatusNotFound
	case fallback >= 400:
		return fallback
	default:
		return http.StatusInternalServerError
	}
}
