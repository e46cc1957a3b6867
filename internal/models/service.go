package models

// Service is an offering listed on the services page
type Service struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Icon        string `json:"icon" db:"icon"` // Icon name understood by the frontend icon set
}
