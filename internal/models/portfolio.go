package models

// Canonical portfolio categories
const (
	CategoryBrandSolutions = "Brand Solutions"
	CategoryTechSolutions  = "Tech Solutions"
	CategoryMediaSolutions = "Media Solutions"
	CategoryOthers         = "Others"
)

// Categories lists the canonical categories in display order.
var Categories = []string{
	CategoryBrandSolutions,
	CategoryTechSolutions,
	CategoryMediaSolutions,
	CategoryOthers,
}

// IsCanonicalCategory reports whether c is one of Categories.
func IsCanonicalCategory(c string) bool {
	for _, canonical := range Categories {
		if c == canonical {
			return true
		}
	}
	return false
}

// PortfolioItem is a case study shown on the portfolio page. Featured items are
// picked for the home page by the frontend.
type PortfolioItem struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Category    string  `json:"category" db:"category"`
	Image       string  `json:"image" db:"image"` // Absolute URL or /uploads path
	Description string  `json:"description" db:"description"`
	ProjectURL  *string `json:"project_url" db:"project_url"`
	TechStack   *string `json:"tech_stack" db:"tech_stack"` // Comma-joined tags
	IsFeatured  bool    `json:"is_featured" db:"is_featured"`
}
