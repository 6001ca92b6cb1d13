package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
}

// NewRegisterHandler returns an HTTP handler for user registration.
// Registration is a plain upsert of the user payload; the persisted record
// is echoed back verbatim, password included.
// @Summary Register a user
// @Description Upserts the submitted user and returns the stored record. No validation, no password hashing.
// @Tags auth
// @Accept json
// @Produce json
// @Param user body models.UserDB true "User payload"
// @Success 200 {object} models.UserDB "Persisted user"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var user models.UserDB

		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		saved, err := svc.Register(r.Context(), &user)
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
