package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	args := m.Called(ctx, id, name)
	return args.Error(0)
}

// MockProfileRepository mocks the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepository) UpdateBio(ctx context.Context, userID uuid.UUID, bio string) error {
	args := m.Called(ctx, userID, bio)
	return args.Error(0)
}

func (m *MockProfileRepository) UpdateImage(ctx context.Context, userID uuid.UUID, data []byte, contentType string) error {
	args := m.Called(ctx, userID, data, contentType)
	return args.Error(0)
}

func (m *MockProfileRepository) ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []string) error {
	args := m.Called(ctx, userID, skills)
	return args.Error(0)
}

// MockMatchRequestRepository mocks the MatchRequestRepository interface
type MockMatchRequestRepository struct {
	mock.Mock
}

func (m *MockMatchRequestRepository) Create(ctx context.Context, req *domain.MatchRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockMatchRequestRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.MatchRequest, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchRequest), args.Error(1)
}

func (m *MockMatchRequestRepository) ListByMentee(ctx context.Context, menteeID uuid.UUID) ([]domain.MatchRequest, error) {
	args := m.Called(ctx, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MatchRequest), args.Error(1)
}

func (m *MockMatchRequestRepository) GetForMentor(ctx context.Context, id, mentorID uuid.UUID) (*domain.MatchRequest, error) {
	args := m.Called(ctx, id, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchRequest), args.Error(1)
}

func (m *MockMatchRequestRepository) GetForMentee(ctx context.Context, id, menteeID uuid.UUID) (*domain.MatchRequest, error) {
	args := m.Called(ctx, id, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchRequest), args.Error(1)
}

func (m *MockMatchRequestRepository) TransitionForMentor(ctx context.Context, id, mentorID uuid.UUID, to domain.MatchStatus) (bool, error) {
	args := m.Called(ctx, id, mentorID, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockMatchRequestRepository) TransitionForMentee(ctx context.Context, id, menteeID uuid.UUID, to domain.MatchStatus) (bool, error) {
	args := m.Called(ctx, id, menteeID, to)
	return args.Bool(0), args.Error(1)
}

// MockMentorRepository mocks the MentorRepository interface
type MockMentorRepository struct {
	mock.Mock
}

func (m *MockMentorRepository) List(ctx context.Context, q domain.MentorQuery) ([]domain.UserView, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserView), args.Error(1)
}

// MockMentorCache mocks the mentor listing cache
type MockMentorCache struct {
	mock.Mock
}

func (m *MockMentorCache) Get(ctx context.Context, q domain.MentorQuery) ([]domain.UserView, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserView), args.Error(1)
}

func (m *MockMentorCache) Set(ctx context.Context, q domain.MentorQuery, mentors []domain.UserView) error {
	args := m.Called(ctx, q, mentors)
	return args.Error(0)
}

func (m *MockMentorCache) FlushAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
