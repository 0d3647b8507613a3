package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cake-storefront/internal/cart"
	"github.com/stretchr/testify/assert"
)

type stubLimiter struct {
	allowed    bool
	retryAfter time.Duration
	err        error
	keys       []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, int64, time.Duration, error) {
	s.keys = append(s.keys, key)

	return s.allowed, 4, s.retryAfter, s.err
}

func rateLimitedRequest(sessionID string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil)

	return req.WithContext(middleware.WithCart(req.Context(), sessionID, cart.NewStore()))
}

func TestRateLimitPerSession(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	t.Run("Success - allowed attempt passes through", func(t *testing.T) {
		// Arrange
		limiter := &stubLimiter{allowed: true}
		handler := middleware.NewRateLimitMiddleware(limiter, "checkout_attempts").PerSession(next)
		rr := httptest.NewRecorder()

		// Act
		handler.ServeHTTP(rr, rateLimitedRequest("session-1"))

		// Assert
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "4", rr.Header().Get("X-RateLimit-Remaining"))
		assert.Equal(t, []string{"checkout_attempts:session-1"}, limiter.keys)
	})

	t.Run("Failure - over the limit", func(t *testing.T) {
		limiter := &stubLimiter{allowed: false, retryAfter: 1500 * time.Millisecond}
		handler := middleware.NewRateLimitMiddleware(limiter, "checkout_attempts").PerSession(next)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, rateLimitedRequest("session-1"))

		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "2", rr.Header().Get("Retry-After"))
	})

	t.Run("Success - limiter failure lets the request through", func(t *testing.T) {
		limiter := &stubLimiter{err: errors.New("redis down")}
		handler := middleware.NewRateLimitMiddleware(limiter, "checkout_attempts").PerSession(next)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, rateLimitedRequest("session-1"))

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("Success - no session skips the limiter", func(t *testing.T) {
		limiter := &stubLimiter{}
		handler := middleware.NewRateLimitMiddleware(limiter, "checkout_attempts").PerSession(next)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v1/checkout", nil))

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Empty(t, limiter.keys)
	})
}
