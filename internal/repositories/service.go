package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const serviceColumns = `id, title, description, icon`

// ServiceRepository stores the services listed on the public site
type ServiceRepository struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) List(ctx context.Context) ([]models.Service, error) {
	const query = `SELECT ` + serviceColumns + ` FROM services ORDER BY id`

	services := []models.Service{}
	err := r.db.SelectContext(ctx, &services, query)
	logQuery(query, nil, len(services), err)

	return services, err
}

func (r *ServiceRepository) Create(ctx context.Context, s models.Service) (*models.Service, error) {
	const query = `
		INSERT INTO services (title, description, icon)
		VALUES ($1, $2, $3)
		RETURNING ` + serviceColumns
	args := []any{s.Title, s.Description, s.Icon}

	var created models.Service
	err := r.db.GetContext(ctx, &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the editable fields. A nil service means no row has the given id.
func (r *ServiceRepository) Update(ctx context.Context, s models.Service) (*models.Service, error) {
	const query = `
		UPDATE services
		SET title = $1, description = $2, icon = $3
		WHERE id = $4
		RETURNING ` + serviceColumns
	args := []any{s.Title, s.Description, s.Icon, s.ID}

	var updated models.Service
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

// Delete removes the row and reports how many rows were affected.
func (r *ServiceRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "services", id)
}
