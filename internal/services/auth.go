package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
)

// ErrInvalidCredentials is returned when the email is unknown or the
// submitted password does not match the stored one.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService handles registration and login on top of the user store.
// NOTE: passwords are stored and compared in cleartext by design of this
// demo API; there is no session or token, callers re-send credentials.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Register forwards the payload to the user upsert and returns the
// persisted user verbatim. No validation, no uniqueness check.
func (svc *AuthService) Register(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to register user", "err", err)
		return nil, err
	}
	return saved, nil
}

// Login looks the user up by email and compares the stored password string
// with the submitted one. On a match the full stored record is returned.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		logger.Log.Errorw("failed to get user for login", "err", err)
		return nil, err
	}

	if user.Password != password {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
