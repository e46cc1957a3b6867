package middlewares

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

// CORSMiddleware allows the admin console and public site to call the API from
// the configured origins. "*" or an empty value allows any origin.
func CORSMiddleware(allowedOrigin string) func(http.Handler) http.Handler {
	origins := []string{"*"}
	if allowedOrigin != "" && allowedOrigin != "*" {
		origins = strings.Split(allowedOrigin, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "RateLimit-Limit", "RateLimit-Remaining"},
		MaxAge:         300,
	})
}
