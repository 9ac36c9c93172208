package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
	"github.com/yeonsu-dev/mentor-match/internal/security"
	"golang.org/x/crypto/bcrypt"
)

func newTokenManager() *security.TokenManager {
	return security.NewTokenManager("test-secret-key-with-32-chars!!", time.Hour)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := domain.UserCreate{
		Email:    "Mentee@Example.com",
		Password: "password123",
		Name:     "Test Mentee",
		Role:     domain.RoleMentee,
	}

	t.Run("success normalizes email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, newTokenManager())

		userRepo.On("EmailExists", ctx, input.Email).Return(false, nil)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Register(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, "mentee@example.com", user.Email)
		assert.Equal(t, domain.RoleMentee, user.Role)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.NotEqual(t, input.Password, user.PasswordHash)

		userRepo.AssertExpectations(t)
	})

	t.Run("email taken", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, newTokenManager())

		userRepo.On("EmailExists", ctx, input.Email).Return(true, nil)

		_, err := svc.Register(ctx, input)
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("invalid role", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, newTokenManager())

		bad := input
		bad.Role = "admin"

		_, err := svc.Register(ctx, bad)
		assert.ErrorIs(t, err, domain.ErrInvalidRole)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	manager := newTokenManager()

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := &domain.User{
		ID:           uuid.New(),
		Email:        "mentor@example.com",
		PasswordHash: string(hash),
		Name:         "Test Mentor",
		Role:         domain.RoleMentor,
	}

	t.Run("success issues verifiable token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, manager)

		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		token, err := svc.Login(ctx, domain.UserLogin{Email: user.Email, Password: "password123"})
		assert.NoError(t, err)

		claims, err := manager.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, domain.RoleMentor, claims.Role)

		subject, err := claims.UserID()
		assert.NoError(t, err)
		assert.Equal(t, user.ID, subject)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, manager)

		userRepo.On("GetByEmail", ctx, user.Email).Return(user, nil)

		_, err := svc.Login(ctx, domain.UserLogin{Email: user.Email, Password: "wrong"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc := NewAuthService(userRepo, manager)

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil)

		_, err := svc.Login(ctx, domain.UserLogin{Email: "nobody@example.com", Password: "password123"})
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}
