package models

// DnaItem is a brand pillar block ("What defines us")
type DnaItem struct {
	ID          int64  `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Image       string `json:"image" db:"image"`
}
