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

func ActionItemRoutes(ctrl *controllers.ActionItemsController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Patch("/{item_id}", handleJSON(func(r *http.Request) (any, int, error) {
			itemID, err := uuid.Parse(chi.URLParam(r, "item_id"))
			if err != nil {
				return nil, 0, fmt.Errorf("%w: invalid action item id", controllers.ErrInvalidArgument)
			}
			var req types.UpdateActionItemRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				return nil, http.StatusBadRequest, err
			}
			item, err := ctrl.UpdateActionItem(r.Context(), itemID, req)
			if err != nil {
				return nil, 0, err
			}
			return item, http.StatusOK, nil
		}))
	})
	return r
}
