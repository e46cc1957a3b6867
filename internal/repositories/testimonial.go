package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const testimonialColumns = `id, name, role, content, image_url, linkedin_url`

// TestimonialRepository stores client testimonials
type TestimonialRepository struct {
	db *sqlx.DB
}

func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func (r *TestimonialRepository) List(ctx context.Context) ([]models.Testimonial, error) {
	const query = `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY id`

	testimonials := []models.Testimonial{}
	err := r.db.SelectContext(ctx, &testimonials, query)
	logQuery(query, nil, len(testimonials), err)

	return testimonials, err
}

func (r *TestimonialRepository) Create(ctx context.Context, t models.Testimonial) (*models.Testimonial, error) {
	const query = `
		INSERT INTO testimonials (name, role, content, image_url, linkedin_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + testimonialColumns
	args := []any{t.Name, t.Role, t.Content, t.ImageURL, t.LinkedinURL}

	var created models.Testimonial
	err := r.db.GetContext(ctx, &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the editable fields. A nil testimonial means no row has the given id.
func (r *TestimonialRepository) Update(ctx context.Context, t models.Testimonial) (*models.Testimonial, error) {
	const query = `
		UPDATE testimonials
		SET name = $1, role = $2, content = $3, image_url = $4, linkedin_url = $5
		WHERE id = $6
		RETURNING ` + testimonialColumns
	args := []any{t.Name, t.Role, t.Content, t.ImageURL, t.LinkedinURL, t.ID}

	var updated models.Testimonial
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

func (r *TestimonialRepository) Delete(ctx context.Context, id int64) (int64, error) {
	return deleteByID(ctx, r.db, "testimonials", id)
}
