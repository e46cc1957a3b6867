package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitMiddleware(t *testing.T) {
	tests := []struct {
		name             string
		hits             int64
		hitErr           error
		expectedStatus   int
		expectNextCalled bool
		expectedLeft     string
	}{
		{"under limit", 1, nil, http.StatusOK, true, "2"},
		{"at limit", 3, nil, http.StatusOK, true, "0"},
		{"over limit", 4, nil, http.StatusTooManyRequests, false, "0"},
		{"counter down fails open", 0, errors.New("redis: connection refused"), http.StatusOK, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			counter := NewMockHitCounter(ctrl)
			counter.EXPECT().Hit(gomock.Any(), "203.0.113.7", 15*time.Minute).Return(tt.hits, tt.hitErr)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/api/content/services", nil)
			req.RemoteAddr = "203.0.113.7:51234"
			rr := httptest.NewRecorder()

			RateLimitMiddleware(counter, 3, 15*time.Minute)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			assert.Equal(t, tt.expectedLeft, rr.Header().Get("RateLimit-Remaining"))
			if tt.expectedStatus == http.StatusTooManyRequests {
				assert.JSONEq(t, `{"error":"Too many requests from this IP, please try again later."}`, rr.Body.String())
				assert.Equal(t, "900", rr.Header().Get("Retry-After"))
			}
		})
	}
}

func TestClientIP_NoPort(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.1"
	assert.Equal(t, "198.51.100.1", clientIP(req))
}
