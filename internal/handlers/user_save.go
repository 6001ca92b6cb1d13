package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
)

// UserSaver defines the interface that the service must implement.
type UserSaver interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
}

// NewSaveUserHandler returns an HTTP handler for the user upsert. A payload
// without an id inserts a new row; one with an id fully overwrites the
// existing row, password included.
// @Summary Create or update a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.UserDB true "User payload"
// @Success 200 {object} models.UserDB "Persisted user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [post]
func NewSaveUserHandler(svc UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.UserDB

		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		saved, err := svc.Save(r.Context(), &user)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(saved)
	}
}
