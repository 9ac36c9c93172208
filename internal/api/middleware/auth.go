package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yeonsu-dev/mentor-match/internal/api/response"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
	"github.com/yeonsu-dev/mentor-match/internal/security"
)

type contextKey string

const identityKey contextKey = "identity"

// AuthMiddleware resolves bearer tokens to identities
type AuthMiddleware struct {
	tokenManager *security.TokenManager
	userRepo     domain.UserRepository
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(tokenManager *security.TokenManager, userRepo domain.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		tokenManager: tokenManager,
		userRepo:     userRepo,
	}
}

// Authenticate validates the bearer token and confirms its subject still
// exists. All failure classes surface as the same 401; the distinction is
// kept for the log line only.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "missing authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(w, "invalid authorization header format")
			return
		}

		claims, err := m.tokenManager.Verify(parts[1])
		if err != nil {
			log.Debug().Err(err).Msg("Token verification failed")
			response.Unauthorized(w, "invalid or expired token")
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			log.Debug().Err(err).Msg("Token subject unparseable")
			response.Unauthorized(w, "invalid or expired token")
			return
		}

		user, err := m.userRepo.GetByID(r.Context(), userID)
		if err != nil {
			response.InternalError(w, "failed to resolve user")
			return
		}
		if user == nil {
			log.Debug().Str("user_id", userID.String()).Msg("Token subject no longer exists")
			response.Unauthorized(w, "invalid or expired token")
			return
		}

		identity := domain.Identity{
			UserID: user.ID,
			Email:  user.Email,
			Name:   user.Name,
			Role:   user.Role,
		}

		next.ServeHTTP(w, r.WithContext(
			context.WithValue(r.Context(), identityKey, identity),
		))
	})
}

// RequireRole gates a route to one role. The check is the single place role
// based access control happens; handlers never branch on role themselves.
func RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentity(r.Context())
			if !ok {
				response.Unauthorized(w, "unauthorized")
				return
			}
			if identity.Role != role {
				response.Forbidden(w, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetIdentity gets the authenticated identity from context
func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(domain.Identity)
	return identity, ok
}

// WithIdentity returns a context carrying the identity. Exposed for handler
// tests.
func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
