// Package router assembles the HTTP routes and middleware chain of the API server.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/gradevo/gradevo-api/internal/handlers"
	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/gradevo/gradevo-api/internal/metrics"
	"github.com/gradevo/gradevo-api/internal/middlewares"
	"github.com/gradevo/gradevo-api/internal/storage"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	Auth         handlers.Loginer
	Services     handlers.ServiceManager
	Portfolio    handlers.PortfolioManager
	Testimonials handlers.TestimonialManager
	Dna          handlers.DnaManager
	SiteContent  handlers.SiteContentManager
	Contact      handlers.ContactManager
	DB           handlers.Pinger
	Tokener      middlewares.Tokener

	// RateLimiter is optional. When nil /api is not rate limited.
	RateLimiter     middlewares.HitCounter
	RateLimitMax    int64
	RateLimitWindow time.Duration

	// TrustProxy rewrites the client address from proxy headers before logging and
	// rate limiting. Without it the socket address is used.
	TrustProxy bool
	// MaxBodyBytes caps /api request bodies. Zero means no cap.
	MaxBodyBytes int64

	UploadDir     string
	AllowedOrigin string
	SwaggerURL    string
}

// New builds the router.
func New(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	if d.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middlewares.SecurityHeaders)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.PrometheusMiddleware)
	r.Use(middlewares.CORSMiddleware(d.AllowedOrigin))

	r.Get("/", handlers.NewRootHandler())
	r.Get("/health/db", handlers.NewDBHealthHandler(d.DB))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.SwaggerURL)))

	uploads := http.StripPrefix(storage.PublicPrefix, http.FileServer(http.Dir(d.UploadDir)))
	r.Handle(storage.PublicPrefix+"/*", uploads)

	r.Route("/api", func(r chi.Router) {
		if d.MaxBodyBytes > 0 {
			r.Use(chimiddleware.RequestSize(d.MaxBodyBytes))
		}
		if d.RateLimiter != nil {
			r.Use(middlewares.RateLimitMiddleware(d.RateLimiter, d.RateLimitMax, d.RateLimitWindow))
		}

		r.Post("/auth/login", handlers.NewLoginHandler(d.Auth))

		r.Route("/content", func(r chi.Router) {
			// Public
			r.Get("/services", handlers.NewServiceListHandler(d.Services))
			r.Get("/portfolio", handlers.NewPortfolioListHandler(d.Portfolio))
			r.Get("/testimonials", handlers.NewTestimonialListHandler(d.Testimonials))
			r.Get("/dna", handlers.NewDnaListHandler(d.Dna))
			r.Get("/site-content", handlers.NewSiteContentListHandler(d.SiteContent))
			r.Post("/contact", handlers.NewContactSubmitHandler(d.Contact))

			// Admin
			r.Group(func(r chi.Router) {
				r.Use(middlewares.AuthMiddleware(d.Tokener))

				r.Post("/services", handlers.NewServiceCreateHandler(d.Services))
				r.Put("/services/{id}", handlers.NewServiceUpdateHandler(d.Services))
				r.Delete("/services/{id}", handlers.NewServiceDeleteHandler(d.Services))

				r.Post("/portfolio", handlers.NewPortfolioCreateHandler(d.Portfolio))
				r.Put("/portfolio/{id}", handlers.NewPortfolioUpdateHandler(d.Portfolio))
				r.Delete("/portfolio/{id}", handlers.NewPortfolioDeleteHandler(d.Portfolio))

				r.Post("/testimonials", handlers.NewTestimonialCreateHandler(d.Testimonials))
				r.Put("/testimonials/{id}", handlers.NewTestimonialUpdateHandler(d.Testimonials))
				r.Delete("/testimonials/{id}", handlers.NewTestimonialDeleteHandler(d.Testimonials))

				r.Post("/dna", handlers.NewDnaCreateHandler(d.Dna))
				r.Put("/dna/{id}", handlers.NewDnaUpdateHandler(d.Dna))
				r.Delete("/dna/{id}", handlers.NewDnaDeleteHandler(d.Dna))

				r.Post("/site-content", handlers.NewSiteContentUpsertHandler(d.SiteContent))

				r.Get("/contact/submissions", handlers.NewSubmissionListHandler(d.Contact))
				r.Get("/contact/replies", handlers.NewReplyListHandler(d.Contact))
				r.Post("/contact/reply", handlers.NewReplyHandler(d.Contact))
			})
		})
	})

	return r
}
