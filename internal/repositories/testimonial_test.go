package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testimonialRowColumns = []string{"id", "name", "role", "content", "image_url", "linkedin_url"}

func TestTestimonialRepository_CRUD(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTestimonialRepository(db)
	ctx := context.Background()

	img := "/uploads/sarah.png"

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO testimonials")).
		WithArgs("Sarah Jenkins", "CEO, TechFlow", "Great", &img, nil).
		WillReturnRows(sqlmock.NewRows(testimonialRowColumns).
			AddRow(1, "Sarah Jenkins", "CEO, TechFlow", "Great", img, nil))
	mock.ExpectQuery(regexp.QuoteMeta("FROM testimonials ORDER BY id")).
		WillReturnRows(sqlmock.NewRows(testimonialRowColumns).
			AddRow(1, "Sarah Jenkins", "CEO, TechFlow", "Great", img, nil))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE testimonials")).
		WithArgs("Sarah J.", "CEO, TechFlow", "Great", &img, nil, int64(1)).
		WillReturnRows(sqlmock.NewRows(testimonialRowColumns).
			AddRow(1, "Sarah J.", "CEO, TechFlow", "Great", img, nil))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM testimonials WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.Create(ctx, models.Testimonial{Name: "Sarah Jenkins", Role: "CEO, TechFlow", Content: "Great", ImageURL: &img})
	require.NoError(t, err)
	require.NotNil(t, created.ImageURL)
	assert.Equal(t, img, *created.ImageURL)
	assert.Nil(t, created.LinkedinURL)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	created.Name = "Sarah J."
	updated, err := repo.Update(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, "Sarah J.", updated.Name)

	n, err := repo.Delete(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}
