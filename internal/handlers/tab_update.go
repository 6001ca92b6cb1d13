package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
	"github.com/knlox/guitar-tab-api/internal/services"
)

// TabUpdater defines the interface that the service must implement.
type TabUpdater interface {
	UpdateByID(ctx context.Context, id int64, tab *models.TabDB) (*models.TabDB, error)
}

// NewUpdateTabHandler returns an HTTP handler for updating a tab by id.
// Only title, artist, tuning, and content are overwritten; id and creation
// timestamp are never touched.
// @Summary Update a tab
// @Tags tabs
// @Accept json
// @Produce json
// @Param id path int true "Tab id"
// @Param tab body models.TabDB true "Tab fields"
// @Success 200 {object} models.TabDB "Updated tab"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Tab not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/tabs/{id} [put]
func NewUpdateTabHandler(svc TabUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid tab id",
			})
			return
		}

		var tab models.TabDB
		if err := json.NewDecoder(r.Body).Decode(&tab); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		updated, err := svc.UpdateByID(r.Context(), id, &tab)
		if err != nil {
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

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(updated)
	}
}
