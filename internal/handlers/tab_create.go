package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
)

// TabCreator defines the interface that the service must implement.
type TabCreator interface {
	Create(ctx context.Context, tab *models.TabDB) (*models.TabDB, error)
}

// NewCreateTabHandler returns an HTTP handler for creating a tab.
// The creation timestamp is populated server-side only when the payload
// omits it.
// @Summary Create a tab
// @Tags tabs
// @Accept json
// @Produce json
// @Param tab body models.TabDB true "Tab payload"
// @Success 201 {object} models.TabDB "Created tab"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/tabs [post]
func NewCreateTabHandler(svc TabCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tab models.TabDB

		if err := json.NewDecoder(r.Body).Decode(&tab); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		created, err := svc.Create(r.Context(), &tab)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}
