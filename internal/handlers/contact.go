package handlers

import (
	"net/http"

	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/gradevo/gradevo-api/internal/services"
)

const (
	submissionResource = "Submission"
	replyResource      = "Reply"
)

// ContactRequest is a public contact form submission
// swagger:model ContactRequest
type ContactRequest struct {
	// required: true
	Name string `json:"name"`
	// required: true
	Email    string   `json:"email"`
	Phone    *string  `json:"phone"`
	Website  *string  `json:"website"`
	Services []string `json:"services"`
	Message  string   `json:"message"`
}

// ReplyRequest answers a contact submission by email
// swagger:model ReplyRequest
type ReplyRequest struct {
	// required: true
	SubmissionID int64 `json:"submission_id"`
	// required: true
	Subject string `json:"subject"`
	// required: true
	Message string `json:"message"`
	// Defaults to the submission email
	ToEmail string `json:"to_email"`
}

// NewContactSubmitHandler stores a contact form submission.
// @Summary Submit contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param submission body handlers.ContactRequest true "Submission"
// @Success 201 {object} models.ContactSubmission
// @Failure 400 {object} handlers.ErrorResponse
// @Router /api/content/contact [post]
func NewContactSubmitHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ContactRequest
		if err := decodeJSON(r, &req); err != nil {
			writeDecodeError(w, err)
			return
		}
		if req.Name == "" || req.Email == "" {
			writeError(w, http.StatusBadRequest, "name and email are required")
			return
		}

		created, err := svc.Submit(r.Context(), services.ContactInput{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Website:  req.Website,
			Services: req.Services,
			Message:  req.Message,
		})
		if err != nil {
			writeServiceError(w, submissionResource, err)
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

// NewSubmissionListHandler lists submissions, newest first.
// @Summary List contact submissions
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ContactSubmission
// @Router /api/content/contact/submissions [get]
func NewSubmissionListHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submissions, err := svc.ListSubmissions(r.Context())
		if err != nil {
			writeServiceError(w, submissionResource, err)
			return
		}
		if submissions == nil {
			submissions = []models.ContactSubmission{}
		}
		writeJSON(w, http.StatusOK, submissions)
	}
}

// NewReplyListHandler lists sent replies, newest first.
// @Summary List replies
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Reply
// @Router /api/content/contact/replies [get]
func NewReplyListHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		replies, err := svc.ListReplies(r.Context())
		if err != nil {
			writeServiceError(w, replyResource, err)
			return
		}
		if replies == nil {
			replies = []models.Reply{}
		}
		writeJSON(w, http.StatusOK, replies)
	}
}

// NewReplyHandler emails a reply to a submission and marks it replied.
// @Summary Reply to a submission
// @Tags contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reply body handlers.ReplyRequest true "Reply"
// @Success 201 {object} models.Reply
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Submission not found"
// @Failure 502 {object} handlers.ErrorResponse "Failed to send email"
// @Router /api/content/contact/reply [post]
func NewReplyHandler(svc ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReplyRequest
		if err := decodeJSON(r, &req); err != nil {
			writeDecodeError(w, err)
			return
		}
		if req.SubmissionID <= 0 || req.Subject == "" || req.Message == "" {
			writeError(w, http.StatusBadRequest, "submission_id, subject and message are required")
			return
		}

		reply, err := svc.Reply(r.Context(), services.ReplyInput{
			SubmissionID: req.SubmissionID,
			Subject:      req.Subject,
			Message:      req.Message,
			ToEmail:      req.ToEmail,
		})
		if err != nil {
			writeServiceError(w, submissionResource, err)
			return
		}

		writeJSON(w, http.StatusCreated, reply)
	}
}
