// Package schema creates the database tables, seeds default content and runs
// one-off data migrations. Every step is safe to run more than once.
package schema

import (
	"context"
	"fmt"
	"strings"

	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/jmoiron/sqlx"
)

type step struct {
	name  string
	query string
}

// Tables are created first, later columns are added with ADD COLUMN IF NOT EXISTS so
// databases created by older releases are brought up to date.
var steps = []step{
	{"create users", `
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(255) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL
		)`},
	{"create services", `
		CREATE TABLE IF NOT EXISTS services (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			icon VARCHAR(100) NOT NULL DEFAULT ''
		)`},
	{"create portfolio", `
		CREATE TABLE IF NOT EXISTS portfolio (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			category VARCHAR(100) NOT NULL DEFAULT '',
			image TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		)`},
	{"create testimonials", `
		CREATE TABLE IF NOT EXISTS testimonials (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			role VARCHAR(255) NOT NULL DEFAULT '',
			content TEXT NOT NULL DEFAULT ''
		)`},
	{"create site_content", `
		CREATE TABLE IF NOT EXISTS site_content (
			id SERIAL PRIMARY KEY,
			key VARCHAR(255) NOT NULL UNIQUE,
			value TEXT
		)`},
	{"create dna", `
		CREATE TABLE IF NOT EXISTS dna (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			image TEXT NOT NULL
		)`},
	{"create contact_submissions", `
		CREATE TABLE IF NOT EXISTS contact_submissions (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(50),
			website VARCHAR(255),
			services TEXT,
			message TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`},
	{"create replies", `
		CREATE TABLE IF NOT EXISTS replies (
			id SERIAL PRIMARY KEY,
			submission_id INTEGER NOT NULL REFERENCES contact_submissions(id),
			subject VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			sent_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			recipient_name VARCHAR(255) NOT NULL,
			recipient_email VARCHAR(255) NOT NULL
		)`},
	{"add portfolio.project_url", `ALTER TABLE portfolio ADD COLUMN IF NOT EXISTS project_url TEXT`},
	{"add portfolio.tech_stack", `ALTER TABLE portfolio ADD COLUMN IF NOT EXISTS tech_stack TEXT`},
	{"add portfolio.is_featured", `ALTER TABLE portfolio ADD COLUMN IF NOT EXISTS is_featured BOOLEAN DEFAULT FALSE`},
	{"add testimonials.image_url", `ALTER TABLE testimonials ADD COLUMN IF NOT EXISTS image_url TEXT`},
	{"add testimonials.linkedin_url", `ALTER TABLE testimonials ADD COLUMN IF NOT EXISTS linkedin_url TEXT`},
	{"add contact_submissions.status", `ALTER TABLE contact_submissions ADD COLUMN IF NOT EXISTS status VARCHAR(50) DEFAULT 'new'`},
}

// Apply runs the schema statements in order and stops at the first failure.
func Apply(ctx context.Context, db sqlx.ExtContext) error {
	for _, s := range steps {
		_, err := db.ExecContext(ctx, s.query)
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(s.query), " "),
			"step", s.name,
			"error", err,
		)
		if err != nil {
			return fmt.Errorf("schema step %q: %w", s.name, err)
		}
	}
	return nil
}
