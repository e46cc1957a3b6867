package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/jmoiron/sqlx"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns nil without an error when the user does not exist.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT id, username, password
		FROM users
		WHERE username = $1
		LIMIT 1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	logQuery(query, []any{username}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts the user or replaces the password hash of an existing username.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) error {
	query := `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE
		SET password = EXCLUDED.password
	`
	args := []any{username, passwordHash}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{username, "***"}, rowsAffected, err)

	return err
}
