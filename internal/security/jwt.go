package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

const (
	issuer   = "mentor-match"
	audience = "mentor-match-users"
)

// Verification failure classes. All of them surface to clients as a plain
// 401; the split exists for logging.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenInvalid   = errors.New("token invalid")
)

// Claims represents the JWT claim set issued at login
type Claims struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies bearer tokens
type TokenManager struct {
	secret   []byte
	tokenTTL time.Duration
}

// NewTokenManager creates a new token manager
func NewTokenManager(secret string, tokenTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Generate produces a signed token for the user, valid from now until
// now+TTL. Every token carries a fresh jti so individual grants stay
// distinguishable in logs.
func (m *TokenManager) Generate(user *domain.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   user.ID.String(),
			Audience:  jwt.ClaimStrings{audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify checks signature, expiry, not-before and audience, and returns the
// claims. The subject is parsed but not resolved against storage; callers
// confirm the user still exists.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithAudience(audience), jwt.WithIssuer(issuer))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		default:
			return nil, fmt.Errorf("%w: %s", ErrTokenInvalid, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

// UserID returns the user id carried in the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid subject in token: %w", err)
	}
	return id, nil
}

// TokenTTL returns the configured token lifetime
func (m *TokenManager) TokenTTL() time.Duration {
	return m.tokenTTL
}
