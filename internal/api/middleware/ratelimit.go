package middleware

import (
	"net/http"
	"strconv"

	"github.com/yeonsu-dev/mentor-match/internal/api/response"
	"github.com/yeonsu-dev/mentor-match/internal/repository/redis"
)

// RateLimitMiddleware limits request rates per authenticated user
type RateLimitMiddleware struct {
	limiter *redis.RateLimiter
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter *redis.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit rejects callers that exceeded their per-minute budget. Runs after
// Authenticate so the key is the user id, not the client address.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			response.Unauthorized(w, "unauthorized")
			return
		}

		allowed, remaining, reset, err := m.limiter.Allow(r.Context(), identity.UserID.String())
		if err != nil {
			// Redis trouble should not take the API down.
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			response.Error(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
