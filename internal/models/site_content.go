package models

// Site content keys seeded on first initialization
const (
	SiteKeyHeroTitle     = "heroTitle"
	SiteKeyHeroSubtitle  = "heroSubtitle"
	SiteKeyServicesIntro = "servicesIntro"
	SiteKeyContactCTA    = "contactCTA"
)

// SiteContent is a free-form key/value entry. Value may hold Markdown or an image path.
type SiteContent struct {
	Key   string `json:"key" db:"key"`
	Value string `json:"value" db:"value"`
}
