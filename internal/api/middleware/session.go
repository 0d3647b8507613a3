package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/cake-storefront/internal/cart"
	"github.com/aaravmahajanofficial/cake-storefront/internal/session"
	"github.com/google/uuid"
)

type sessionContextKey struct{}

type sessionValue struct {
	id    string
	store *cart.Store
}

type SessionMiddleware struct {
	registry   *session.Registry
	cookieName string
	secure     bool
}

func NewSessionMiddleware(registry *session.Registry, cookieName string, secure bool) *SessionMiddleware {
	return &SessionMiddleware{registry: registry, cookieName: cookieName, secure: secure}
}

// Attach resolves the session cookie, issuing a new id when it is absent or
// malformed, and puts the session's cart in the request context.
func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		sessionID := ""
		if cookie, err := r.Cookie(m.cookieName); err == nil {
			if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
				sessionID = cookie.Value
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     m.cookieName,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				Secure:   m.secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		store := m.registry.Store(sessionID)

		ctx := context.WithValue(r.Context(), sessionContextKey{}, sessionValue{id: sessionID, store: store})
		ctx = WithLogger(ctx, LoggerFromContext(ctx).With(slog.String("session", sessionID[:8])))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithCart is for callers that resolve the cart themselves, mostly tests.
func WithCart(ctx context.Context, sessionID string, store *cart.Store) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sessionValue{id: sessionID, store: store})
}

func CartFromContext(ctx context.Context) (*cart.Store, bool) {
	value, ok := ctx.Value(sessionContextKey{}).(sessionValue)
	if !ok || value.store == nil {
		return nil, false
	}

	return value.store, true
}

func SessionIDFromContext(ctx context.Context) string {
	value, _ := ctx.Value(sessionContextKey{}).(sessionValue)

	return value.id
}
