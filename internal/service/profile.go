package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

// MentorCacheFlusher invalidates cached mentor listings after profile
// changes. Nil disables invalidation.
type MentorCacheFlusher interface {
	FlushAll(ctx context.Context) (int64, error)
}

// ProfileService handles profile reads and updates
type ProfileService struct {
	userRepo    domain.UserRepository
	profileRepo domain.ProfileRepository
	mentorCache MentorCacheFlusher
}

// NewProfileService creates a new profile service
func NewProfileService(
	userRepo domain.UserRepository,
	profileRepo domain.ProfileRepository,
	mentorCache MentorCacheFlusher,
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		mentorCache: mentorCache,
	}
}

// Get returns the identity-plus-profile payload for a user, creating the
// profile row on first access.
func (s *ProfileService) Get(ctx context.Context, user *domain.User) (*domain.UserView, error) {
	profile, err := s.profileRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return buildUserView(user, profile), nil
}

// Update applies a profile update and returns the refreshed payload.
// Mentors must always send a skill list; mentees never carry one.
func (s *ProfileService) Update(ctx context.Context, user *domain.User, input domain.ProfileUpdate) (*domain.UserView, error) {
	if user.Role == domain.RoleMentor && input.Skills == nil {
		return nil, domain.ErrSkillsRequired
	}

	if _, err := s.profileRepo.GetOrCreate(ctx, user.ID); err != nil {
		return nil, err
	}

	if err := s.userRepo.UpdateName(ctx, user.ID, input.Name); err != nil {
		return nil, err
	}
	user.Name = input.Name

	if err := s.profileRepo.UpdateBio(ctx, user.ID, input.Bio); err != nil {
		return nil, err
	}

	if input.Image != "" {
		data, err := base64.StdEncoding.DecodeString(input.Image)
		if err != nil {
			// Keep the previous picture when the payload is not valid
			// base64, matching the lenient upload behavior.
			log.Warn().Err(err).Str("user_id", user.ID.String()).Msg("Failed to decode profile image")
		} else if err := s.profileRepo.UpdateImage(ctx, user.ID, data, "image/jpeg"); err != nil {
			return nil, err
		}
	}

	if user.Role == domain.RoleMentor {
		if err := s.profileRepo.ReplaceSkills(ctx, user.ID, dedupe(*input.Skills)); err != nil {
			return nil, err
		}
	}

	if s.mentorCache != nil {
		if _, err := s.mentorCache.FlushAll(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to flush mentor cache")
		}
	}

	profile, err := s.profileRepo.Get(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return buildUserView(user, profile), nil
}

// Image returns the stored picture bytes and content type for a user,
// checking that the role segment matches the user's actual role.
func (s *ProfileService) Image(ctx context.Context, role domain.Role, userID uuid.UUID) ([]byte, string, error) {
	if !role.Valid() {
		return nil, "", domain.ErrImageNotFound
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.Role != role {
		return nil, "", domain.ErrImageNotFound
	}

	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if profile == nil || !profile.HasImage() {
		return nil, "", domain.ErrImageNotFound
	}

	return profile.ImageData, profile.ImageContentType, nil
}

// buildUserView shapes the wire payload. The skills key exists only for
// mentors.
func buildUserView(user *domain.User, profile *domain.Profile) *domain.UserView {
	view := &domain.UserView{
		ID:    user.ID,
		Email: user.Email,
		Role:  user.Role,
		Profile: domain.ProfileView{
			Name:     user.Name,
			Bio:      profile.Bio,
			ImageURL: domain.DefaultImageURL,
		},
	}

	if profile.HasImage() {
		view.Profile.ImageURL = fmt.Sprintf("/api/images/%s/%s", user.Role, user.ID)
	}

	if user.Role == domain.RoleMentor {
		skills := profile.Skills
		if skills == nil {
			skills = []string{}
		}
		view.Profile.Skills = &skills
	}

	return view
}

// dedupe removes duplicate skill labels, case-sensitive, preserving order.
func dedupe(skills []string) []string {
	seen := make(map[string]struct{}, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
