package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/yeonsu-dev/mentor-match/internal/api/middleware"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
	"github.com/yeonsu-dev/mentor-match/internal/security"
)

// stubUserRepo serves a single user by id.
type stubUserRepo struct {
	user *domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }

func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (s *stubUserRepo) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return nil
}

func okHandler(t *testing.T, sawIdentity *domain.Identity) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := middleware.GetIdentity(r.Context())
		if !ok {
			t.Error("expected identity in context")
		}
		*sawIdentity = identity
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	manager := security.NewTokenManager("test-secret-key-with-32-chars!!", time.Hour)
	user := &domain.User{
		ID:    uuid.New(),
		Email: "mentee@example.com",
		Name:  "Test Mentee",
		Role:  domain.RoleMentee,
	}

	t.Run("valid token resolves identity", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("failed to generate token: %v", err)
		}

		var identity domain.Identity
		m := middleware.NewAuthMiddleware(manager, &stubUserRepo{user: user})

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(okHandler(t, &identity)).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
		if identity.UserID != user.ID {
			t.Errorf("user ID mismatch: got %v, want %v", identity.UserID, user.ID)
		}
		if identity.Role != domain.RoleMentee {
			t.Errorf("role mismatch: got %v, want %v", identity.Role, domain.RoleMentee)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		m := middleware.NewAuthMiddleware(manager, &stubUserRepo{user: user})

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		rec := httptest.NewRecorder()

		m.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := security.NewTokenManager("test-secret-key-with-32-chars!!", -time.Minute)
		token, _ := expired.Generate(user)

		m := middleware.NewAuthMiddleware(manager, &stubUserRepo{user: user})

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})

	t.Run("deleted user", func(t *testing.T) {
		token, _ := manager.Generate(user)

		m := middleware.NewAuthMiddleware(manager, &stubUserRepo{})

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		m.Authenticate(http.NotFoundHandler()).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/mentors", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{
			UserID: uuid.New(),
			Role:   domain.RoleMentee,
		}))
		rec := httptest.NewRecorder()

		middleware.RequireRole(domain.RoleMentee)(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
		}
	})

	t.Run("wrong role forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/mentors", nil)
		req = req.WithContext(middleware.WithIdentity(req.Context(), domain.Identity{
			UserID: uuid.New(),
			Role:   domain.RoleMentor,
		}))
		rec := httptest.NewRecorder()

		middleware.RequireRole(domain.RoleMentee)(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
		}
	})

	t.Run("no identity unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/mentors", nil)
		rec := httptest.NewRecorder()

		middleware.RequireRole(domain.RoleMentee)(next).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
		}
	})
}
