package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

// MatchService owns the match request lifecycle. Every mutation is scoped
// to the acting side of the request, so callers can never see or touch a
// request that is not theirs.
type MatchService struct {
	userRepo  domain.UserRepository
	matchRepo domain.MatchRequestRepository
}

// NewMatchService creates a new match service
func NewMatchService(userRepo domain.UserRepository, matchRepo domain.MatchRequestRepository) *MatchService {
	return &MatchService{
		userRepo:  userRepo,
		matchRepo: matchRepo,
	}
}

// Create files a pending request from the mentee to the mentor. The target
// must exist with the mentor role, and the (mentor, mentee) pair must not
// already have a request in any status.
func (s *MatchService) Create(ctx context.Context, menteeID uuid.UUID, input domain.MatchRequestCreate) (*domain.MatchRequest, error) {
	mentor, err := s.userRepo.GetByID(ctx, input.MentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up mentor: %w", err)
	}
	if mentor == nil || mentor.Role != domain.RoleMentor {
		return nil, domain.ErrMentorNotFound
	}

	now := time.Now()
	req := &domain.MatchRequest{
		ID:        uuid.New(),
		MentorID:  mentor.ID,
		MenteeID:  menteeID,
		Message:   input.Message,
		Status:    domain.MatchPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.matchRepo.Create(ctx, req); err != nil {
		return nil, err
	}

	log.Info().
		Str("request_id", req.ID.String()).
		Str("mentor_id", mentor.ID.String()).
		Str("mentee_id", menteeID.String()).
		Msg("Match request created")

	return req, nil
}

// Incoming lists all requests addressed to the mentor
func (s *MatchService) Incoming(ctx context.Context, mentorID uuid.UUID) ([]domain.MatchRequest, error) {
	requests, err := s.matchRepo.ListByMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []domain.MatchRequest{}
	}
	return requests, nil
}

// Outgoing lists all requests created by the mentee
func (s *MatchService) Outgoing(ctx context.Context, menteeID uuid.UUID) ([]domain.MatchRequest, error) {
	requests, err := s.matchRepo.ListByMentee(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []domain.MatchRequest{}
	}
	return requests, nil
}

// Accept moves a pending request to accepted. Only the addressed mentor can
// accept, and only while the request is still pending.
func (s *MatchService) Accept(ctx context.Context, requestID, mentorID uuid.UUID) (*domain.MatchRequest, error) {
	return s.resolveAsMentor(ctx, requestID, mentorID, domain.MatchAccepted)
}

// Reject moves a pending request to rejected
func (s *MatchService) Reject(ctx context.Context, requestID, mentorID uuid.UUID) (*domain.MatchRequest, error) {
	return s.resolveAsMentor(ctx, requestID, mentorID, domain.MatchRejected)
}

// Cancel moves a pending request to cancelled. Only the initiating mentee
// can cancel.
func (s *MatchService) Cancel(ctx context.Context, requestID, menteeID uuid.UUID) (*domain.MatchRequest, error) {
	ok, err := s.matchRepo.TransitionForMentee(ctx, requestID, menteeID, domain.MatchCancelled)
	if err != nil {
		return nil, err
	}
	if !ok {
		req, err := s.matchRepo.GetForMentee(ctx, requestID, menteeID)
		if err != nil {
			return nil, err
		}
		if req == nil {
			return nil, domain.ErrRequestNotFound
		}
		return nil, domain.ErrRequestResolved
	}

	return s.matchRepo.GetForMentee(ctx, requestID, menteeID)
}

// resolveAsMentor runs the accept/reject transition. The update only
// matches a pending row owned by the mentor; when it misses, a scoped read
// tells a missing request apart from an already resolved one.
func (s *MatchService) resolveAsMentor(ctx context.Context, requestID, mentorID uuid.UUID, to domain.MatchStatus) (*domain.MatchRequest, error) {
	ok, err := s.matchRepo.TransitionForMentor(ctx, requestID, mentorID, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		req, err := s.matchRepo.GetForMentor(ctx, requestID, mentorID)
		if err != nil {
			return nil, err
		}
		if req == nil {
			return nil, domain.ErrRequestNotFound
		}
		return nil, domain.ErrRequestResolved
	}

	return s.matchRepo.GetForMentor(ctx, requestID, mentorID)
}
