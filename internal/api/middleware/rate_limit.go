package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/cake-storefront/internal/errors"
	"github.com/aaravmahajanofficial/cake-storefront/internal/ratelimit"
	"github.com/aaravmahajanofficial/cake-storefront/internal/utils/response"
)

type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	prefix  string
}

func NewRateLimitMiddleware(limiter ratelimit.Limiter, prefix string) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter, prefix: prefix}
}

// PerSession must run inside SessionMiddleware.Attach. A limiter failure lets
// the request through.
func (m *RateLimitMiddleware) PerSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		sessionID := SessionIDFromContext(r.Context())
		if sessionID == "" {
			next.ServeHTTP(w, r)
			return
		}

		allowed, remaining, retryAfter, err := m.limiter.Allow(r.Context(), m.prefix+":"+sessionID)
		if err != nil {
			logger.Warn("Rate limiter unavailable", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)
			return
		}

		if !allowed {
			seconds := ratelimit.RetryAfterSeconds(retryAfter)
			logger.Warn("Rate limit exceeded", slog.Int("retryAfter", seconds))
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			response.Error(w, errors.TooManyRequestsError("Too many attempts, please try again later"))
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		next.ServeHTTP(w, r)
	})
}
