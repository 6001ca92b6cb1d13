package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/knlox/guitar-tab-api/internal/logger"
	"github.com/knlox/guitar-tab-api/internal/models"
)

// ErrTabNotFound is returned when no tab matches the requested id.
var ErrTabNotFound = errors.New("tab not found")

// TabReader defines read-only operations for tabs.
type TabReader interface {
	List(ctx context.Context) ([]models.TabDB, error)
	GetByID(ctx context.Context, id int64) (*models.TabDB, error)
}

// TabWriter defines write operations for tabs.
type TabWriter interface {
	Save(ctx context.Context, tab *models.TabDB) (*models.TabDB, error)
	Delete(ctx context.Context, id int64) error
}

// TabService handles tab CRUD operations.
type TabService struct {
	reader TabReader
	writer TabWriter
}

// NewTabService creates a new TabService instance.
func NewTabService(reader TabReader, writer TabWriter) *TabService {
	return &TabService{
		reader: reader,
		writer: writer,
	}
}

// List returns every stored tab.
func (svc *TabService) List(ctx context.Context) ([]models.TabDB, error) {
	tabs, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list tabs", "err", err)
		return nil, err
	}
	return tabs, nil
}

// GetByID returns the tab with the given id.
func (svc *TabService) GetByID(ctx context.Context, id int64) (*models.TabDB, error) {
	tab, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTabNotFound
		}
		logger.Log.Errorw("failed to get tab", "id", id, "err", err)
		return nil, err
	}
	return tab, nil
}

// Create inserts a new tab. The creation timestamp is populated only when
// the payload did not supply one; the payload id is ignored.
func (svc *TabService) Create(ctx context.Context, tab *models.TabDB) (*models.TabDB, error) {
	tab.ID = 0
	if tab.CreatedAt.IsZero() {
		tab.CreatedAt = time.Now()
	}

	saved, err := svc.writer.Save(ctx, tab)
	if err != nil {
		logger.Log.Errorw("failed to create tab", "err", err)
		return nil, err
	}
	return saved, nil
}

// UpdateByID overwrites title, artist, tuning, and content of an existing
// tab. Id and creation timestamp stay untouched regardless of the payload.
func (svc *TabService) UpdateByID(ctx context.Context, id int64, tab *models.TabDB) (*models.TabDB, error) {
	existing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTabNotFound
		}
		logger.Log.Errorw("failed to load tab for update", "id", id, "err", err)
		return nil, err
	}

	existing.Title = tab.Title
	existing.Artist = tab.Artist
	existing.Tuning = tab.Tuning
	existing.TabContent = tab.TabContent

	saved, err := svc.writer.Save(ctx, existing)
	if err != nil {
		logger.Log.Errorw("failed to update tab", "id", id, "err", err)
		return nil, err
	}
	return saved, nil
}

// DeleteByID removes the tab with the given id.
func (svc *TabService) DeleteByID(ctx context.Context, id int64) error {
	if err := svc.writer.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTabNotFound
		}
		logger.Log.Errorw("failed to delete tab", "id", id, "err", err)
		return err
	}
	return nil
}
