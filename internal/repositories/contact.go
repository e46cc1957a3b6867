package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/jmoiron/sqlx"
)

const (
	submissionColumns = `id, name, email, phone, website, COALESCE(services, '[]') AS services,
		COALESCE(message, '') AS message, created_at, COALESCE(status, 'new') AS status`
	replyColumns = `id, submission_id, subject, message, sent_at, recipient_name, recipient_email`
)

// ContactRepository stores contact form submissions and the replies sent to them.
// Every method joins the transaction carried by ctx when there is one.
type ContactRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewContactRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ContactRepository {
	return &ContactRepository{db: db, txGetter: txGetter}
}

func (r *ContactRepository) CreateSubmission(ctx context.Context, s models.ContactSubmission) (*models.ContactSubmission, error) {
	const query = `
		INSERT INTO contact_submissions (name, email, phone, website, services, message, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + submissionColumns
	args := []any{s.Name, s.Email, s.Phone, s.Website, s.Services, s.Message, models.SubmissionStatusNew}

	var created models.ContactSubmission
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ContactRepository) ListSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	const query = `SELECT ` + submissionColumns + ` FROM contact_submissions ORDER BY created_at DESC, id DESC`

	submissions := []models.ContactSubmission{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &submissions, query)
	logQuery(query, nil, len(submissions), err)

	return submissions, err
}

// GetSubmissionForUpdate locks the submission row until the surrounding transaction ends.
// It returns nil without an error when the submission does not exist.
func (r *ContactRepository) GetSubmissionForUpdate(ctx context.Context, id int64) (*models.ContactSubmission, error) {
	const query = `SELECT ` + submissionColumns + ` FROM contact_submissions WHERE id = $1 FOR UPDATE`
	args := []any{id}

	var submission models.ContactSubmission
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &submission, query, args...)
	logQuery(query, args, submission.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *ContactRepository) UpdateSubmissionStatus(ctx context.Context, id int64, status string) (int64, error) {
	const query = `UPDATE contact_submissions SET status = $1 WHERE id = $2`
	args := []any{status, id}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return rowsAffected, err
}

func (r *ContactRepository) CreateReply(ctx context.Context, reply models.Reply) (*models.Reply, error) {
	const query = `
		INSERT INTO replies (submission_id, subject, message, recipient_name, recipient_email)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + replyColumns
	args := []any{reply.SubmissionID, reply.Subject, reply.Message, reply.RecipientName, reply.RecipientEmail}

	var created models.Reply
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)
	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *ContactRepository) ListReplies(ctx context.Context) ([]models.Reply, error) {
	const query = `SELECT ` + replyColumns + ` FROM replies ORDER BY sent_at DESC, id DESC`

	replies := []models.Reply{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &replies, query)
	logQuery(query, nil, len(replies), err)

	return replies, err
}
