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

// TabGetter defines the interface that the service must implement.
type TabGetter interface {
	GetByID(ctx context.Context, id int64) (*models.TabDB, error)
}

// NewGetTabHandler returns an HTTP handler for fetching a single tab by id.
// @Summary Get tab by id
// @Tags tabs
// @Produce json
// @Param id path int true "Tab id"
// @Success 200 {object} models.TabDB "Matching tab"
// @Failure 400 {object} handlers.ErrorResponse "Invalid tab id"
// @Failure 404 {object} handlers.ErrorResponse "Tab not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/tabs/{id} [get]
func NewGetTabHandler(svc TabGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid tab id",
			})
			return
		}

		tab, err := svc.GetByID(r.Context(), id)
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
		json.NewEncoder(w).Encode(tab)
	}
}
