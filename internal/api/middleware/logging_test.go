package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogging(t *testing.T) {
	handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotNil(t, middleware.LoggerFromContext(r.Context()))
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("Success - incoming correlation id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cakes", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "req-42", rr.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	})

	t.Run("Success - correlation id is generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cakes", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.NotEmpty(t, rr.Header().Get(middleware.RequestIDHeader))
	})
}
