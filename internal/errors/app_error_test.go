package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	appErrors "github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestServerRejectionError(t *testing.T) {
	t.Run("Client error keeps backend status", func(t *testing.T) {
		err := appErrors.ServerRejectionError("Cake is no longer available", http.StatusUnprocessableEntity)

		assert.Equal(t, appErrors.ErrCodeServerRejection, err.Code)
		assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode)
		assert.Equal(t, "Cake is no longer available", err.Error())
	})

	t.Run("Server error maps to bad gateway", func(t *testing.T) {
		err := appErrors.ServerRejectionError("boom", http.StatusInternalServerError)

		assert.Equal(t, http.StatusBadGateway, err.StatusCode)
	})
}

func TestIsAppError(t *testing.T) {
	t.Run("Wrapped AppError is found", func(t *testing.T) {
		cause := errors.New("dial tcp: connection refused")
		wrapped := fmt.Errorf("submit: %w", appErrors.TransportError("Backend unreachable").WithError(cause))

		appErr, ok := appErrors.IsAppError(wrapped)

		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeTransport, appErr.Code)
		assert.ErrorIs(t, wrapped, cause)
		assert.True(t, appErrors.HasCode(wrapped, appErrors.ErrCodeTransport))
		assert.False(t, appErrors.HasCode(wrapped, appErrors.ErrCodeNotFound))
	})

	t.Run("Plain error is not an AppError", func(t *testing.T) {
		_, ok := appErrors.IsAppError(errors.New("plain"))

		assert.False(t, ok)
	})
}

func TestAddValidationError(t *testing.T) {
	err := appErrors.AddValidationError("email", "is required").WithDetail("email")

	assert.Equal(t, appErrors.ErrCodeValidation, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "Invalid field 'email': is required", err.Message)
	assert.Equal(t, "email", err.Detail)
}
