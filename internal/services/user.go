package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
)

// ErrUserNotFound is returned when no user matches the requested email or id.
var ErrUserNotFound = errors.New("user not found")

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error)
	Delete(ctx context.Context, id int64) error
}

// UserService handles user lookup and upsert-by-identity.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// GetByEmail returns the first user stored under the given email.
func (svc *UserService) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user by email", "email", email, "err", err)
		return nil, err
	}
	return user, nil
}

// Save performs an upsert-by-identity and returns the persisted user.
func (svc *UserService) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}
	return saved, nil
}

// DeleteByID removes the user with the given id.
func (svc *UserService) DeleteByID(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "id", id, "err", err)
		return err
	}
	return nil
}
