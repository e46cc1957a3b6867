package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const portfolioColumns = `id, title, category, image, description, project_url, tech_stack,
	COALESCE(is_featured, FALSE) AS is_featured`

// PortfolioRepository stores portfolio case studies
type PortfolioRepository struct {
	db *sqlx.DB
}

func NewPortfolioRepository(db *sqlx.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

func (r *PortfolioRepository) List(ctx context.Context) ([]models.PortfolioItem, error) {
	const query = `SELECT ` + portfolioColumns + ` FROM portfolio ORDER BY id`

	items := []models.PortfolioItem{}
	err := r.db.SelectContext(ctx, &items, query)
	logQuery(query, nil, len(items), err)

	return items, err
}

func (r *PortfolioRepository) Create(ctx context.Context, p models.PortfolioItem) (*models.PortfolioItem, error) {
	const query = `
		INSERT INTO portfolio (title, category, image, description, project_url, tech_stack, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + portfolioColumns
	args := []any{p.Title, p.Category, p.Image, p.Description, p.ProjectURL, p.TechStack, p.IsFeatured}

	var created models.PortfolioItem
	err := r.db.GetContext(ctx, &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the editable fields. A nil item means no row has the given id.
func (r *PortfolioRepository) Update(ctx context.Context, p models.PortfolioItem) (*models.PortfolioItem, error) {
	const query = `
		UPDATE portfolio
		SET title = $1, category = $2, image = $3, description = $4,
		    project_url = $5, tech_stack = $6, is_featured = $7
		WHERE id = $8
		RETURNING ` + portfolioColumns
	args := []any{p.Title, p.Category, p.Image, p.Description, p.ProjectURL, p.TechStack, p.IsFeatured, p.ID}

	var updated models.PortfolioItem
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

func (r *PortfolioRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "portfolio", id)
}
