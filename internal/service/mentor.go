package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

// MentorListCache caches mentor listings per query. Nil disables caching.
type MentorListCache interface {
	Get(ctx context.Context, q domain.MentorQuery) ([]domain.UserView, error)
	Set(ctx context.Context, q domain.MentorQuery, mentors []domain.UserView) error
}

// MentorService serves the mentor directory
type MentorService struct {
	mentorRepo domain.MentorRepository
	cache      MentorListCache
}

// NewMentorService creates a new mentor service
func NewMentorService(mentorRepo domain.MentorRepository, cache MentorListCache) *MentorService {
	return &MentorService{
		mentorRepo: mentorRepo,
		cache:      cache,
	}
}

// List returns mentors matching the query. Unknown order_by values fall
// back to the default id ordering.
func (s *MentorService) List(ctx context.Context, q domain.MentorQuery) ([]domain.UserView, error) {
	switch q.OrderBy {
	case domain.MentorOrderByName, domain.MentorOrderBySkill:
	default:
		q.OrderBy = domain.MentorOrderDefault
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, q); err == nil && cached != nil {
			return cached, nil
		}
	}

	mentors, err := s.mentorRepo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if mentors == nil {
		mentors = []domain.UserView{}
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, q, mentors); err != nil {
			log.Warn().Err(err).Msg("Failed to cache mentor listing")
		}
	}

	return mentors, nil
}
