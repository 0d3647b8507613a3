package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/aaravmahajanofficial/cake-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/cake-storefront/internal/cart"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
)

// CreateCartRequest builds a request as the session middleware would hand it
// to a cart handler: with a quiet logger and the given cart attached.
func CreateCartRequest(method, target string, body io.Reader, store *cart.Store, pathParams map[string]string) *http.Request {
	req := CreateRequest(method, target, body, pathParams)

	return req.WithContext(middleware.WithCart(req.Context(), "test-session", store))
}

// CreateAdminRequest attaches admin claims as RequireAdmin would.
func CreateAdminRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := CreateRequest(method, target, body, pathParams)

	claims := &models.Claims{Name: "test-admin", Role: models.RoleAdmin}

	return req.WithContext(context.WithValue(req.Context(), middleware.AdminContextKey, claims))
}

func CreateRequest(method, target string, body io.Reader, pathParams map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")

	for key, value := range pathParams {
		req.SetPathValue(key, value)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return req.WithContext(middleware.WithLogger(req.Context(), logger))
}
