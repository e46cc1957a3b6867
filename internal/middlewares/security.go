package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// SecurityHeaders sets the hardening headers expected by browsers on every response.
func SecurityHeaders(next http.Handler) http.Handler {
	return chi.Chain(
		chimiddleware.SetHeader("X-Content-Type-Options", "nosniff"),
		chimiddleware.SetHeader("X-Frame-Options", "SAMEORIGIN"),
		chimiddleware.SetHeader("Referrer-Policy", "no-referrer"),
		chimiddleware.SetHeader("Cross-Origin-Resource-Policy", "cross-origin"),
		chimiddleware.SetHeader("X-DNS-Prefetch-Control", "off"),
	).Handler(next)
}
