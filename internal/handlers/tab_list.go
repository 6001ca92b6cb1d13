package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
)

// TabLister defines the interface that the service must implement.
type TabLister interface {
	List(ctx context.Context) ([]models.TabDB, error)
}

// NewListTabsHandler returns an HTTP handler for listing all tabs.
// @Summary List tabs
// @Description Returns every stored tab in store-native order, unpaginated.
// @Tags tabs
// @Produce json
// @Success 200 {array} models.TabDB "All tabs"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/tabs [get]
func NewListTabsHandler(svc TabLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tabs, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		if tabs == nil {
			tabs = []models.TabDB{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(tabs)
	}
}
