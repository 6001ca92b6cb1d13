package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/services"
)

// TabDeleter defines the interface that the service must implement.
type TabDeleter interface {
	DeleteByID(ctx context.Context, id int64) error
}

// NewDeleteTabHandler returns an HTTP handler for deleting a tab by id.
// @Summary Delete a tab
// @Tags tabs
// @Produce json
// @Param id path int true "Tab id"
// @Success 204 "Tab deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid tab id"
// @Failure 404 {object} handlers.ErrorResponse "Tab not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/tabs/{id} [delete]
func NewDeleteTabHandler(svc TabDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid tab id",
			})
			return
		}

		if err := svc.DeleteByID(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrTabNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Tab not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
