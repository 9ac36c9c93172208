package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MatchStatus is the lifecycle state of a match request. Pending is the only
// state transitions leave from; the other three are terminal.
type MatchStatus string

const (
	MatchPending   MatchStatus = "pending"
	MatchAccepted  MatchStatus = "accepted"
	MatchRejected  MatchStatus = "rejected"
	MatchCancelled MatchStatus = "cancelled"
)

// MatchRequest pairs exactly one mentor with exactly one mentee. At most one
// request may exist per pair, regardless of status.
type MatchRequest struct {
	ID        uuid.UUID   `json:"id"`
	MentorID  uuid.UUID   `json:"mentorId"`
	MenteeID  uuid.UUID   `json:"menteeId"`
	Message   string      `json:"message"`
	Status    MatchStatus `json:"status"`
	CreatedAt time.Time   `json:"-"`
	UpdatedAt time.Time   `json:"-"`
}

// MatchRequestCreate represents a mentee's request to a mentor
type MatchRequestCreate struct {
	MentorID uuid.UUID `json:"mentorId" validate:"required"`
	Message  string    `json:"message" validate:"required,max=1000"`
}

// MatchRequestRepository handles match request data access. Mutations are
// scoped to the owning side of the request so an unowned id behaves exactly
// like a missing one.
type MatchRequestRepository interface {
	Create(ctx context.Context, req *MatchRequest) error
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]MatchRequest, error)
	ListByMentee(ctx context.Context, menteeID uuid.UUID) ([]MatchRequest, error)
	// GetForMentor and GetForMentee return nil without error when no row
	// matches both the id and the owner.
	GetForMentor(ctx context.Context, id, mentorID uuid.UUID) (*MatchRequest, error)
	GetForMentee(ctx context.Context, id, menteeID uuid.UUID) (*MatchRequest, error)
	// TransitionForMentor and TransitionForMentee atomically move a pending
	// request to the given status. They report whether a row was updated.
	TransitionForMentor(ctx context.Context, id, mentorID uuid.UUID, to MatchStatus) (bool, error)
	TransitionForMentee(ctx context.Context, id, menteeID uuid.UUID, to MatchStatus) (bool, error)
}
