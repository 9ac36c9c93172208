package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role distinguishes the two kinds of platform users. It is assigned at
// signup and never changes afterwards.
type Role string

const (
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// Valid reports whether r is one of the two known roles.
func (r Role) Valid() bool {
	return r == RoleMentor || r == RoleMentee
}

// User represents a platform user
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UserCreate represents signup data
type UserCreate struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name" validate:"required,max=255"`
	Role     Role   `json:"role" validate:"required,oneof=mentor mentee"`
}

// UserLogin represents login credentials
type UserLogin struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Identity is the authenticated caller attached to the request context
// after token verification.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Name   string
	Role   Role
}

// UserRepository handles user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) error
}
