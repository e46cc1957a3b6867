package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const dnaColumns = `id, title, description, image`

// DnaRepository stores the brand pillar blocks
type DnaRepository struct {
	db *sqlx.DB
}

func NewDnaRepository(db *sqlx.DB) *DnaRepository {
	return &DnaRepository{db: db}
}

func (r *DnaRepository) List(ctx context.Context) ([]models.DnaItem, error) {
	const query = `SELECT ` + dnaColumns + ` FROM dna ORDER BY id`

	items := []models.DnaItem{}
	err := r.db.SelectContext(ctx, &items, query)
	logQuery(query, nil, len(items), err)

	return items, err
}

func (r *DnaRepository) Create(ctx context.Context, d models.DnaItem) (*models.DnaItem, error) {
	const query = `
		INSERT INTO dna (title, description, image)
		VALUES ($1, $2, $3)
		RETURNING ` + dnaColumns
	args := []any{d.Title, d.Description, d.Image}

	var created models.DnaItem
	err := r.db.GetContext(ctx, &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the editable fields. A nil item means no row has the given id.
func (r *DnaRepository) Update(ctx context.Context, d models.DnaItem) (*models.DnaItem, error) {
	const query = `
		UPDATE dna
		SET title = $1, description = $2, image = $3
		WHERE id = $4
		RETURNING ` + dnaColumns
	args := []any{d.Title, d.Description, d.Image, d.ID}

	var updated models.DnaItem
	err := r.db.GetContext(ctx, &updated, query, args...)
	logQuery(query, args, updated.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *DnaRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "dna", id)
}
