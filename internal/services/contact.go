package services

//go:generate mockgen -source=contact.go -destination=contact_mock.go -package=services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/gradevo/gradevo-api/internal/metrics"
	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/segmentio/kafka-go"
)

// ErrMailDelivery is returned when the reply email could not be handed to the mail server.
var ErrMailDelivery = errors.New("mail delivery failed")

// ContactRepository stores submissions and replies.
type ContactRepository interface {
	CreateSubmission(ctx context.Context, s models.ContactSubmission) (*models.ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]models.ContactSubmission, error)
	GetSubmissionForUpdate(ctx context.Context, id int64) (*models.ContactSubmission, error)
	UpdateSubmissionStatus(ctx context.Context, id int64, status string) (int64, error)
	CreateReply(ctx context.Context, reply models.Reply) (*models.Reply, error)
	ListReplies(ctx context.Context) ([]models.Reply, error)
}

// TxRunner runs fn inside a database transaction carried by the ctx passed to fn.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Mailer delivers a single email.
type Mailer interface {
	Send(ctx context.Context, email models.Email) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
}

// ContactInput is a contact form submission as received from the public site.
type ContactInput struct {
	Name     string
	Email    string
	Phone    *string
	Website  *string
	Services []string
	Message  string
}

// ReplyInput answers the submission SubmissionID. An empty ToEmail sends the reply
// to the address the submission came from.
type ReplyInput struct {
	SubmissionID int64
	Subject      string
	Message      string
	ToEmail      string
}

// ContactService handles contact submissions and the replies sent to them.
type ContactService struct {
	repo        ContactRepository
	tx          TxRunner
	mailer      Mailer
	kafkaWriter KafkaWriter
}

// NewContactService creates a ContactService. kafkaWriter may be nil, events are then
// not published.
func NewContactService(repo ContactRepository, tx TxRunner, mailer Mailer, kafkaWriter KafkaWriter) *ContactService {
	return &ContactService{
		repo:        repo,
		tx:          tx,
		mailer:      mailer,
		kafkaWriter: kafkaWriter,
	}
}

// Submit stores a new submission with status "new".
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*models.ContactSubmission, error) {
	requested := in.Services
	if requested == nil {
		requested = []string{}
	}
	encoded, err := json.Marshal(requested)
	if err != nil {
		return nil, fmt.Errorf("encode services: %w", err)
	}

	created, err := s.repo.CreateSubmission(ctx, models.ContactSubmission{
		Name:     in.Name,
		Email:    in.Email,
		Phone:    in.Phone,
		Website:  in.Website,
		Services: string(encoded),
		Message:  in.Message,
		Status:   models.SubmissionStatusNew,
	})
	if err != nil {
		logger.Log.Errorw("failed to create contact submission", "email", in.Email, "error", err)
		return nil, err
	}

	metrics.RecordContactSubmission()
	s.publishEvent(ctx, models.ContactEventSubmitted, created.ID, created.Email)

	return created, nil
}

func (s *ContactService) ListSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	submissions, err := s.repo.ListSubmissions(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list contact submissions", "error", err)
		return nil, err
	}
	return submissions, nil
}

func (s *ContactService) ListReplies(ctx context.Context) ([]models.Reply, error) {
	replies, err := s.repo.ListReplies(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list replies", "error", err)
		return nil, err
	}
	return replies, nil
}

// Reply records the reply, marks the submission replied and sends the email in one
// transaction. If the email cannot be sent nothing is written.
func (s *ContactService) Reply(ctx context.Context, in ReplyInput) (*models.Reply, error) {
	var reply *models.Reply

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		submission, err := s.repo.GetSubmissionForUpdate(ctx, in.SubmissionID)
		if err != nil {
			return fmt.Errorf("load submission: %w", err)
		}
		if submission == nil {
			return ErrNotFound
		}

		to := in.ToEmail
		if to == "" {
			to = submission.Email
		}

		reply, err = s.repo.CreateReply(ctx, models.Reply{
			SubmissionID:   submission.ID,
			Subject:        in.Subject,
			Message:        in.Message,
			RecipientName:  submission.Name,
			RecipientEmail: to,
		})
		if err != nil {
			return fmt.Errorf("create reply: %w", err)
		}

		if _, err := s.repo.UpdateSubmissionStatus(ctx, submission.ID, models.SubmissionStatusReplied); err != nil {
			return fmt.Errorf("update submission status: %w", err)
		}

		err = s.mailer.Send(ctx, models.Email{
			ToName:  submission.Name,
			ToEmail: to,
			Subject: in.Subject,
			Body:    in.Message,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrMailDelivery, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Log.Errorw("failed to reply to submission", "submission_id", in.SubmissionID, "error", err)
			metrics.RecordReplySent(false)
		}
		return nil, err
	}

	metrics.RecordReplySent(true)
	s.publishEvent(ctx, models.ContactEventReplied, reply.SubmissionID, reply.RecipientEmail)

	return reply, nil
}

// publishEvent publishes a contact event to Kafka. Failures are logged and never
// reported to the caller.
func (s *ContactService) publishEvent(ctx context.Context, eventType string, submissionID int64, email string) {
	event := models.ContactEvent{
		EventID:      uuid.NewString(),
		Type:         eventType,
		SubmissionID: submissionID,
		Email:        email,
		Timestamp:    time.Now().Unix(),
	}

	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal contact event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish contact event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Contact event published to Kafka", "event_id", event.EventID, "type", event.Type, "submission_id", submissionID)
	}
}
