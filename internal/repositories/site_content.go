package repositories

import (
	"context"

	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/jmoiron/sqlx"
)

// SiteContentRepository stores free-form key/value site copy
type SiteContentRepository struct {
	db *sqlx.DB
}

func NewSiteContentRepository(db *sqlx.DB) *SiteContentRepository {
	return &SiteContentRepository{db: db}
}

func (r *SiteContentRepository) List(ctx context.Context) ([]models.SiteContent, error) {
	const query = `SELECT key, COALESCE(value, '') AS value FROM site_content ORDER BY key`

	entries := []models.SiteContent{}
	err := r.db.SelectContext(ctx, &entries, query)
	logQuery(query, nil, len(entries), err)

	return entries, err
}

// Upsert inserts the key or overwrites its value when it already exists.
func (r *SiteContentRepository) Upsert(ctx context.Context, key, value string) (*models.SiteContent, error) {
	const query = `
		INSERT INTO site_content (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value
		RETURNING key, value
	`
	args := []any{key, value}

	var entry models.SiteContent
	err := r.db.GetContext(ctx, &entry, query, args...)
	logQuery(query, args, entry, err)

	if err != nil {
		return nil, err
	}
	return &entry, nil
}
