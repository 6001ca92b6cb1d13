package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
)

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns at most one user matching the email, or sql.ErrNoRows.
// Emails carry no uniqueness constraint; with duplicates this returns
// whichever row the store yields first.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT id, email, password
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, email)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"result", user,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an upsert-by-identity: a zero id inserts a fresh row with a
// sequence-assigned id, a non-zero id fully overwrites the existing row,
// password included. The persisted row is returned.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) (*models.UserDB, error) {
	const insertQuery = `
		INSERT INTO users (email, password)
		VALUES ($1, $2)
		RETURNING id, email, password
	`
	const upsertQuery = `
		INSERT INTO users (id, email, password)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
		    password = EXCLUDED.password
		RETURNING id, email, password
	`

	query := insertQuery
	args := []any{user.Email, user.Password}
	if user.ID != 0 {
		query = upsertQuery
		args = []any{user.ID, user.Email, user.Password}
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var saved models.UserDB
	err := sqlx.GetContext(ctx, executor, &saved, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.ID, user.Email},
		"result", saved,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// Delete removes the row with the given id, returning sql.ErrNoRows when
// no such row exists.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM users
		WHERE id = $1
		RETURNING id
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var deleted int64
	err := sqlx.GetContext(ctx, executor, &deleted, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", deleted,
		"error", err,
	)

	return err
}
