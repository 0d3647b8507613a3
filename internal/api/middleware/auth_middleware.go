package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/models"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils/response"
	"github.com/golang-jwt/jwt/v5"
)

type adminContextKey struct{}

// AdminContextKey holds the verified *models.Claims of an admin request.
var AdminContextKey = adminContextKey{}

type AuthMiddleware struct {
	jwtKey []byte
	parser *jwt.Parser
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{
		jwtKey: jwtKey,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired()),
	}
}

// RequireAdmin admits bearer tokens signed with the admin key whose role claim is admin.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))
			return
		}

		claims := &models.Claims{}

		token, err := m.parser.ParseWithClaims(strings.TrimSpace(tokenString), claims, func(*jwt.Token) (any, error) {
			return m.jwtKey, nil
		})
		if err != nil || !token.Valid {
			logger.Warn("Admin token rejected", slog.Any("error", err))
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))
			return
		}

		if claims.Role != models.RoleAdmin {
			logger.Warn("Non-admin token on admin route", slog.String("subject", claims.Subject))
			response.Error(w, errors.ForbiddenError("Admin access required"))
			return
		}

		adminLogger := logger.With(slog.String("admin", claims.Subject))

		ctx := context.WithValue(r.Context(), AdminContextKey, claims)
		ctx = WithLogger(ctx, adminLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
