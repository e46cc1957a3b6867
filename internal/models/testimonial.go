package models

// Testimonial is a client quote
type Testimonial struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Role        string  `json:"role" db:"role"`
	Content     string  `json:"content" db:"content"`
	ImageURL    *string `json:"image_url" db:"image_url"`
	LinkedinURL *string `json:"linkedin_url" db:"linkedin_url"`
}
