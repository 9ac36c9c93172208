package domain

import "errors"

// Sentinel errors returned by services. Handlers map these to HTTP status
// codes in one place; lower layers wrap them with context via %w.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserNotFound       = errors.New("user not found")
	ErrMentorNotFound     = errors.New("mentor not found")
	ErrSkillsRequired     = errors.New("skills are required for mentors")
	ErrImageNotFound      = errors.New("image not found")
	ErrRequestNotFound    = errors.New("match request not found")
	ErrDuplicateRequest   = errors.New("match request already exists for this mentor")
	ErrRequestResolved    = errors.New("match request is no longer pending")
)
