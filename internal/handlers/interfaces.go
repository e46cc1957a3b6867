package handlers

//go:generate mockgen -source=interfaces.go -destination=interfaces_mock.go -package=handlers

import (
	"context"

	"github.com/gradevo/gradevo-api/internal/models"
	"github.com/gradevo/gradevo-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type ServiceManager interface {
	List(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, s models.Service) (*models.Service, error)
	Update(ctx context.Context, s models.Service) (*models.Service, error)
	Delete(ctx context.Context, id int64) error
}

type PortfolioManager interface {
	List(ctx context.Context) ([]models.PortfolioItem, error)
	Create(ctx context.Context, item models.PortfolioItem, upload *models.Upload) (*models.PortfolioItem, error)
	Update(ctx context.Context, item models.PortfolioItem, upload *models.Upload) (*models.PortfolioItem, error)
	Delete(ctx context.Context, id int64) error
}

type TestimonialManager interface {
	List(ctx context.Context) ([]models.Testimonial, error)
	Create(ctx context.Context, t models.Testimonial, upload *models.Upload) (*models.Testimonial, error)
	Update(ctx context.Context, t models.Testimonial, upload *models.Upload) (*models.Testimonial, error)
	Delete(ctx context.Context, id int64) error
}

type DnaManager interface {
	List(ctx context.Context) ([]models.DnaItem, error)
	Create(ctx context.Context, item models.DnaItem, upload *models.Upload) (*models.DnaItem, error)
	Update(ctx context.Context, item models.DnaItem, upload *models.Upload) (*models.DnaItem, error)
	Delete(ctx context.Context, id int64) error
}

type SiteContentManager interface {
	List(ctx context.Context) ([]models.SiteContent, error)
	Upsert(ctx context.Context, key, value string, upload *models.Upload) (*models.SiteContent, error)
}

type ContactManager interface {
	Submit(ctx context.Context, in services.ContactInput) (*models.ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]models.ContactSubmission, error)
	ListReplies(ctx context.Context) ([]models.Reply, error)
	Reply(ctx context.Context, in services.ReplyInput) (*models.Reply, error)
}

// Pinger reports database reachability.
type Pinger interface {
	PingContext(ctx context.Context) error
}
