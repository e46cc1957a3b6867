package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/gradevo/gradevo-api/internal/services"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactMocks struct {
	repo   *services.MockContactRepository
	tx     *services.MockTxRunner
	mailer *services.MockMailer
	kafka  *services.MockKafkaWriter
}

func newContactService(t *testing.T) (*services.ContactService, contactMocks) {
	ctrl := gomock.NewController(t)
	m := contactMocks{
		repo:   services.NewMockContactRepository(ctrl),
		tx:     services.NewMockTxRunner(ctrl),
		mailer: services.NewMockMailer(ctrl),
		kafka:  services.NewMockKafkaWriter(ctrl),
	}
	return services.NewContactService(m.repo, m.tx, m.mailer, m.kafka), m
}

// runInline makes the tx mock execute the unit of work directly.
func runInline(tx *services.MockTxRunner) {
	tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func decodeEvent(t *testing.T, msg kafka.Message) models.ContactEvent {
	t.Helper()
	var event models.ContactEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, event.EventID, string(msg.Key))
	return event
}

func TestContactService_Submit(t *testing.T) {
	svc, m := newContactService(t)

	m.repo.EXPECT().
		CreateSubmission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.ContactSubmission) (*models.ContactSubmission, error) {
			assert.Equal(t, `["Branding","UI/UX Design"]`, s.Services)
			assert.Equal(t, models.SubmissionStatusNew, s.Status)
			s.ID = 7
			return &s, nil
		})
	m.kafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			require.Len(t, msgs, 1)
			event := decodeEvent(t, msgs[0])
			assert.Equal(t, models.ContactEventSubmitted, event.Type)
			assert.Equal(t, int64(7), event.SubmissionID)
			assert.Equal(t, "ann@example.com", event.Email)
			return nil
		})

	created, err := svc.Submit(context.Background(), services.ContactInput{
		Name:     "Ann",
		Email:    "ann@example.com",
		Services: []string{"Branding", "UI/UX Design"},
		Message:  "Hello",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestContactService_Submit_NoServicesAndKafkaFailure(t *testing.T) {
	svc, m := newContactService(t)

	m.repo.EXPECT().
		CreateSubmission(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.ContactSubmission) (*models.ContactSubmission, error) {
			assert.Equal(t, "[]", s.Services)
			return &s, nil
		})
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	_, err := svc.Submit(context.Background(), services.ContactInput{Name: "Ann", Email: "ann@example.com"})
	assert.NoError(t, err, "event publishing failures are not reported")
}

func TestContactService_Submit_WithoutKafka(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := services.NewMockContactRepository(ctrl)
	svc := services.NewContactService(repo, services.NewMockTxRunner(ctrl), services.NewMockMailer(ctrl), nil)

	repo.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(&models.ContactSubmission{ID: 1}, nil)

	_, err := svc.Submit(context.Background(), services.ContactInput{Name: "Ann", Email: "ann@example.com"})
	assert.NoError(t, err)
}

func TestContactService_Reply(t *testing.T) {
	svc, m := newContactService(t)
	runInline(m.tx)

	submission := &models.ContactSubmission{ID: 7, Name: "Ann", Email: "ann@example.com", Status: models.SubmissionStatusNew}

	gomock.InOrder(
		m.repo.EXPECT().GetSubmissionForUpdate(gomock.Any(), int64(7)).Return(submission, nil),
		m.repo.EXPECT().
			CreateReply(gomock.Any(), models.Reply{
				SubmissionID:   7,
				Subject:        "Re: Hello",
				Message:        "Thanks for reaching out",
				RecipientName:  "Ann",
				RecipientEmail: "ann@example.com",
			}).
			DoAndReturn(func(_ context.Context, r models.Reply) (*models.Reply, error) {
				r.ID = 1
				return &r, nil
			}),
		m.repo.EXPECT().UpdateSubmissionStatus(gomock.Any(), int64(7), models.SubmissionStatusReplied).Return(int64(1), nil),
		m.mailer.EXPECT().Send(gomock.Any(), models.Email{
			ToName:  "Ann",
			ToEmail: "ann@example.com",
			Subject: "Re: Hello",
			Body:    "Thanks for reaching out",
		}).Return(nil),
	)
	m.kafka.EXPECT().
		WriteMessages(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			event := decodeEvent(t, msgs[0])
			assert.Equal(t, models.ContactEventReplied, event.Type)
			assert.Equal(t, int64(7), event.SubmissionID)
			return nil
		})

	reply, err := svc.Reply(context.Background(), services.ReplyInput{
		SubmissionID: 7,
		Subject:      "Re: Hello",
		Message:      "Thanks for reaching out",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), reply.SubmissionID)
	assert.Equal(t, "Ann", reply.RecipientName)
}

func TestContactService_Reply_ExplicitRecipient(t *testing.T) {
	svc, m := newContactService(t)
	runInline(m.tx)

	m.repo.EXPECT().GetSubmissionForUpdate(gomock.Any(), int64(3)).
		Return(&models.ContactSubmission{ID: 3, Name: "Bob", Email: "bob@example.com"}, nil)
	m.repo.EXPECT().CreateReply(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.Reply) (*models.Reply, error) {
			assert.Equal(t, "office@example.com", r.RecipientEmail)
			return &r, nil
		})
	m.repo.EXPECT().UpdateSubmissionStatus(gomock.Any(), int64(3), models.SubmissionStatusReplied).Return(int64(1), nil)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Email) error {
			assert.Equal(t, "office@example.com", e.ToEmail)
			return nil
		})
	m.kafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Reply(context.Background(), services.ReplyInput{SubmissionID: 3, Subject: "Hi", ToEmail: "office@example.com"})
	assert.NoError(t, err)
}

func TestContactService_Reply_SubmissionNotFound(t *testing.T) {
	svc, m := newContactService(t)
	runInline(m.tx)

	m.repo.EXPECT().GetSubmissionForUpdate(gomock.Any(), int64(404)).Return(nil, nil)

	reply, err := svc.Reply(context.Background(), services.ReplyInput{SubmissionID: 404, Subject: "x"})
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.Nil(t, reply)
}

func TestContactService_Reply_MailFailureRollsBack(t *testing.T) {
	svc, m := newContactService(t)

	smtpErr := errors.New("554 rejected")
	var workErr error
	m.tx.EXPECT().
		WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			workErr = fn(ctx)
			return workErr
		})
	m.repo.EXPECT().GetSubmissionForUpdate(gomock.Any(), int64(7)).
		Return(&models.ContactSubmission{ID: 7, Name: "Ann", Email: "ann@example.com"}, nil)
	m.repo.EXPECT().CreateReply(gomock.Any(), gomock.Any()).Return(&models.Reply{ID: 1, SubmissionID: 7}, nil)
	m.repo.EXPECT().UpdateSubmissionStatus(gomock.Any(), int64(7), models.SubmissionStatusReplied).Return(int64(1), nil)
	m.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(smtpErr)

	reply, err := svc.Reply(context.Background(), services.ReplyInput{SubmissionID: 7, Subject: "Re: Hello"})

	assert.Nil(t, reply)
	assert.ErrorIs(t, err, services.ErrMailDelivery)
	assert.ErrorIs(t, err, smtpErr)
	assert.ErrorIs(t, workErr, services.ErrMailDelivery, "the unit of work fails so the transaction rolls back")
}

func TestContactService_Reply_CreateReplyError(t *testing.T) {
	svc, m := newContactService(t)
	runInline(m.tx)

	boom := errors.New("fk violation")
	m.repo.EXPECT().GetSubmissionForUpdate(gomock.Any(), int64(7)).
		Return(&models.ContactSubmission{ID: 7, Email: "ann@example.com"}, nil)
	m.repo.EXPECT().CreateReply(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := svc.Reply(context.Background(), services.ReplyInput{SubmissionID: 7})
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, services.ErrNotFound)
}

func TestContactService_Lists(t *testing.T) {
	svc, m := newContactService(t)

	m.repo.EXPECT().ListSubmissions(gomock.Any()).Return([]models.ContactSubmission{{ID: 2}, {ID: 1}}, nil)
	m.repo.EXPECT().ListReplies(gomock.Any()).Return(nil, errors.New("db error"))

	submissions, err := svc.ListSubmissions(context.Background())
	require.NoError(t, err)
	assert.Len(t, submissions, 2)

	_, err = svc.ListReplies(context.Background())
	assert.Error(t, err)
}
