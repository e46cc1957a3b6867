package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/gradevo/gradevo-api/internal/models"
)

const (
	maxMultipartMemory = 32 << 20
	imageField         = "image"
)

var (
	errInvalidBody      = errors.New("invalid request body")
	errInvalidMultipart = errors.New("invalid multipart form")
	errBodyTooLarge     = errors.New("request body too large")
)

// decodeJSON reads a JSON body into dst. A body cut off by the request size limit
// yields errBodyTooLarge.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return bodyError(err, errInvalidBody)
	}
	return nil
}

func bodyError(err, fallback error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errBodyTooLarge
	}
	return fallback
}

// formDecoder is implemented by request bodies that can also arrive as multipart forms.
type formDecoder interface {
	fromForm(get func(key string) string)
}

// decodeRequest fills dst from a JSON body or from a multipart form. For multipart
// requests the file in the "image" field, if any, is returned as an upload. Callers
// must pass the upload to closeUpload when done.
func decodeRequest(r *http.Request, dst formDecoder) (*models.Upload, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "multipart/form-data" {
		return nil, decodeJSON(r, dst)
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return nil, bodyError(err, errInvalidMultipart)
	}
	dst.fromForm(r.FormValue)

	file, header, err := r.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, errInvalidMultipart
	}

	return &models.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Content:     file,
	}, nil
}

func closeUpload(u *models.Upload) {
	if u == nil {
		return
	}
	if c, ok := u.Content.(io.Closer); ok {
		_ = c.Close()
	}
}

// optional returns nil for an empty form value.
func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func formBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return strings.EqualFold(strings.TrimSpace(v), "on")
	}
	return b
}

// ServiceRequest is the body of service create and update
// swagger:model ServiceRequest
type ServiceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (req *ServiceRequest) fromForm(get func(string) string) {
	req.Title = get("title")
	req.Description = get("description")
	req.Icon = get("icon")
}

// PortfolioRequest is the body of portfolio create and update. Image holds a literal
// URL and is replaced by the uploaded file when one is attached.
// swagger:model PortfolioRequest
type PortfolioRequest struct {
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	ProjectURL  *string `json:"project_url"`
	TechStack   *string `json:"tech_stack"`
	IsFeatured  bool    `json:"is_featured"`
}

func (req *PortfolioRequest) fromForm(get func(string) string) {
	req.Title = get("title")
	req.Category = get("category")
	req.Image = get(imageField)
	req.Description = get("description")
	req.ProjectURL = optional(get("project_url"))
	req.TechStack = optional(get("tech_stack"))
	req.IsFeatured = formBool(get("is_featured"))
}

// TestimonialRequest is the body of testimonial create and update
// swagger:model TestimonialRequest
type TestimonialRequest struct {
	Name        string  `json:"name"`
	Role        string  `json:"role"`
	Content     string  `json:"content"`
	ImageURL    *string `json:"image_url"`
	LinkedinURL *string `json:"linkedin_url"`
}

func (req *TestimonialRequest) fromForm(get func(string) string) {
	req.Name = get("name")
	req.Role = get("role")
	req.Content = get("content")
	req.ImageURL = optional(get("image_url"))
	if req.ImageURL == nil {
		req.ImageURL = optional(get(imageField))
	}
	req.LinkedinURL = optional(get("linkedin_url"))
}

// DnaRequest is the body of DNA item create and update
// swagger:model DnaRequest
type DnaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (req *DnaRequest) fromForm(get func(string) string) {
	req.Title = get("title")
	req.Description = get("description")
	req.Image = get(imageField)
}

// SiteContentRequest upserts one site content entry
// swagger:model SiteContentRequest
type SiteContentRequest struct {
	// required: true
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (req *SiteContentRequest) fromForm(get func(string) string) {
	req.Key = get("key")
	req.Value = get("value")
}
