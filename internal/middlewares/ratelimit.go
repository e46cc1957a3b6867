package middlewares

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gradevo/gradevo-api/internal/logger"
	"github.com/gradevo/gradevo-api/internal/metrics"
)

// HitCounter counts hits for a key within a fixed window.
type HitCounter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RateLimitMiddleware allows max requests per client IP in each window and answers
// the rest with 429. When the counter is unavailable requests are let through.
func RateLimitMiddleware(counter HitCounter, max int64, window time.Duration) func(http.Handler) http.Handler {
	limit := strconv.FormatInt(max, 10)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			hits, err := counter.Hit(r.Context(), ip, window)
			if err != nil {
				logger.Log.Warnw("rate limit counter unavailable", "ip", ip, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			remaining := max - hits
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("RateLimit-Limit", limit)
			w.Header().Set("RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if hits > max {
				metrics.RecordRateLimited()
				logger.Log.Infow("rate limited", "ip", ip, "hits", hits)
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				writeError(w, http.StatusTooManyRequests, "Too many requests from this IP, please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr. Proxy headers only count when the
// router runs chi's RealIP in front of this middleware.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
