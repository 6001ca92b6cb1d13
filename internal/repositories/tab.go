package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
)

// TabReadRepository handles tab read operations
type TabReadRepository struct {
	db *sqlx.DB
}

func NewTabReadRepository(db *sqlx.DB) *TabReadRepository {
	return &TabReadRepository{db: db}
}

// List returns every tab row in store-native order.
func (r *TabReadRepository) List(ctx context.Context) ([]models.TabDB, error) {
	const query = `
		SELECT id, title, artist, tuning, tab_content, created_at
		FROM tabs
	`

	var tabs []models.TabDB
	err := r.db.SelectContext(ctx, &tabs, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(tabs),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return tabs, nil
}

// GetByID returns the tab with the given id, or sql.ErrNoRows when absent.
func (r *TabReadRepository) GetByID(ctx context.Context, id int64) (*models.TabDB, error) {
	const query = `
		SELECT id, title, artist, tuning, tab_content, created_at
		FROM tabs
		WHERE id = $1
	`

	var tab models.TabDB
	err := r.db.GetContext(ctx, &tab, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", tab,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &tab, nil
}

// TabWriteRepository handles tab write operations
type TabWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTabWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TabWriteRepository {
	return &TabWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new row when tab.ID is zero and otherwise overwrites the
// mutable fields of the existing row, leaving created_at untouched.
// The persisted row is returned in both cases.
func (r *TabWriteRepository) Save(ctx context.Context, tab *models.TabDB) (*models.TabDB, error) {
	const insertQuery = `
		INSERT INTO tabs (title, artist, tuning, tab_content, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, artist, tuning, tab_content, created_at
	`
	const updateQuery = `
		UPDATE tabs
		SET title = $2, artist = $3, tuning = $4, tab_content = $5
		WHERE id = $1
		RETURNING id, title, artist, tuning, tab_content, created_at
	`

	query := insertQuery
	args := []any{tab.Title, tab.Artist, tab.Tuning, tab.TabContent, tab.CreatedAt}
	if tab.ID != 0 {
		query = updateQuery
		args = []any{tab.ID, tab.Title, tab.Artist, tab.Tuning, tab.TabContent}
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var saved models.TabDB
	err := sqlx.GetContext(ctx, executor, &saved, query, args...)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
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
func (r *TabWriteRepository) Delete(ctx context.Context, id int64) error {
	const query = `
		DELETE FROM tabs
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
