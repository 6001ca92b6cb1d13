package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
	"github.com/knlox/guitar-tab-api/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// NewGetUserHandler returns an HTTP handler for looking a user up by email.
// Emails are not unique in the schema; with duplicates this returns
// whichever row the store yields first.
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email query string true "User email"
// @Success 200 {object} models.UserDB "Matching user"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /api/users [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.URL.Query().Get("email")

		user, err := svc.GetByEmail(r.Context(), email)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{
					Error: "User not found",
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
		json.NewEncoder(w).Encode(user)
	}
}
