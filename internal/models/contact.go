package models

import "time"

// Contact submission statuses
const (
	SubmissionStatusNew     = "new"
	SubmissionStatusReplied = "replied"
)

// ContactSubmission is a message sent through the public contact form
type ContactSubmission struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`
	Website   *string   `json:"website" db:"website"`
	Services  string    `json:"services" db:"services"` // JSON-encoded list of requested services
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	Status    string    `json:"status" db:"status"`
}

// Reply is an email sent from the admin console in answer to a submission
type Reply struct {
	ID             int64     `json:"id" db:"id"`
	SubmissionID   int64     `json:"submission_id" db:"submission_id"`
	Subject        string    `json:"subject" db:"subject"`
	Message        string    `json:"message" db:"message"`
	SentAt         time.Time `json:"sent_at" db:"sent_at"`
	RecipientName  string    `json:"recipient_name" db:"recipient_name"`
	RecipientEmail string    `json:"recipient_email" db:"recipient_email"`
}

// Contact event types published to Kafka
const (
	ContactEventSubmitted = "contact.submitted"
	ContactEventReplied   = "contact.replied"
)

// ContactEvent is the message published when a submission is received or answered
type ContactEvent struct {
	EventID      string `json:"event_id"`
	Type         string `json:"type"`
	SubmissionID int64  `json:"submission_id"`
	Email        string `json:"email"`
	Timestamp    int64  `json:"timestamp"` // Unix seconds
}
