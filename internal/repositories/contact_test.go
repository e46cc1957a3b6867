package repositories

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	submissionRowColumns = []string{"id", "name", "email", "phone", "website", "services", "message", "created_at", "status"}
	replyRowColumns      = []string{"id", "submission_id", "subject", "message", "sent_at", "recipient_name", "recipient_email"}
)

func TestContactRepository_CreateSubmission(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, GetTxFromContext)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO contact_submissions")).
		WithArgs("Ann", "ann@example.com", nil, nil, `["Branding"]`, "Hello", models.SubmissionStatusNew).
		WillReturnRows(sqlmock.NewRows(submissionRowColumns).
			AddRow(7, "Ann", "ann@example.com", nil, nil, `["Branding"]`, "Hello", now, "new"))

	created, err := repo.CreateSubmission(context.Background(), models.ContactSubmission{
		Name:     "Ann",
		Email:    "ann@example.com",
		Services: `["Branding"]`,
		Message:  "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, models.SubmissionStatusNew, created.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListSubmissions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_submissions ORDER BY created_at DESC")).
		WillReturnRows(sqlmock.NewRows(submissionRowColumns).
			AddRow(2, "B", "b@example.com", nil, nil, "[]", "m", time.Now(), "replied").
			AddRow(1, "A", "a@example.com", "123", "a.example", "[]", "m", time.Now().Add(-time.Hour), "new"))

	list, err := repo.ListSubmissions(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)
	require.NotNil(t, list[1].Phone)
	assert.Equal(t, "123", *list[1].Phone)
}

func TestContactRepository_GetSubmissionForUpdate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, GetTxFromContext)

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(submissionRowColumns))

	s, err := repo.GetSubmissionForUpdate(context.Background(), 42)
	assert.NoError(t, err)
	assert.Nil(t, s)
}

func TestContactRepository_ReplyInsideTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, GetTxFromContext)
	runner := NewTxRunner(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_submissions WHERE id = $1 FOR UPDATE")).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(submissionRowColumns).
			AddRow(7, "Ann", "ann@example.com", nil, nil, "[]", "Hello", now, "new"))
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO replies")).
		WithArgs(int64(7), "Re: Hello", "Thanks", "Ann", "ann@example.com").
		WillReturnRows(sqlmock.NewRows(replyRowColumns).
			AddRow(1, 7, "Re: Hello", "Thanks", now, "Ann", "ann@example.com"))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE contact_submissions SET status = $1 WHERE id = $2")).
		WithArgs(models.SubmissionStatusReplied, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	var reply *models.Reply
	err := runner.WithinTx(context.Background(), func(ctx context.Context) error {
		s, err := repo.GetSubmissionForUpdate(ctx, 7)
		if err != nil {
			return err
		}
		reply, err = repo.CreateReply(ctx, models.Reply{
			SubmissionID:   s.ID,
			Subject:        "Re: Hello",
			Message:        "Thanks",
			RecipientName:  s.Name,
			RecipientEmail: s.Email,
		})
		if err != nil {
			return err
		}
		_, err = repo.UpdateSubmissionStatus(ctx, s.ID, models.SubmissionStatusReplied)
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), reply.SubmissionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepository_ListReplies(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewContactRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("FROM replies ORDER BY sent_at DESC")).
		WillReturnRows(sqlmock.NewRows(replyRowColumns).
			AddRow(3, 7, "Re: Hello", "Thanks", time.Now(), "Ann", "ann@example.com"))

	replies, err := repo.ListReplies(context.Background())
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, "ann@example.com", replies[0].RecipientEmail)
}
