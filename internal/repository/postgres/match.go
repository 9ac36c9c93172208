package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

// MatchRequestRepository handles match request data access
type MatchRequestRepository struct {
	db *DB
}

// NewMatchRequestRepository creates a new match request repository
func NewMatchRequestRepository(db *DB) *MatchRequestRepository {
	return &MatchRequestRepository{db: db}
}

// Create inserts a pending request. The unique index on (mentor_id,
// mentee_id) serializes concurrent creates for the same pair; the loser
// gets ErrDuplicateRequest.
func (r *MatchRequestRepository) Create(ctx context.Context, req *domain.MatchRequest) error {
	query := `
		INSERT INTO match_requests (id, mentor_id, mentee_id, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		req.ID,
		req.MentorID,
		req.MenteeID,
		req.Message,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domain.ErrDuplicateRequest
		}
		return fmt.Errorf("failed to create match request: %w", err)
	}

	return nil
}

// ListByMentor returns all requests addressed to the mentor, newest first
func (r *MatchRequestRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]domain.MatchRequest, error) {
	return r.list(ctx, `mentor_id`, mentorID)
}

// ListByMentee returns all requests created by the mentee, newest first
func (r *MatchRequestRepository) ListByMentee(ctx context.Context, menteeID uuid.UUID) ([]domain.MatchRequest, error) {
	return r.list(ctx, `mentee_id`, menteeID)
}

// GetForMentor retrieves a request scoped to its mentor. A request owned by
// someone else comes back as nil, same as a missing one.
func (r *MatchRequestRepository) GetForMentor(ctx context.Context, id, mentorID uuid.UUID) (*domain.MatchRequest, error) {
	return r.get(ctx, `mentor_id`, id, mentorID)
}

// GetForMentee retrieves a request scoped to its mentee.
func (r *MatchRequestRepository) GetForMentee(ctx context.Context, id, menteeID uuid.UUID) (*domain.MatchRequest, error) {
	return r.get(ctx, `mentee_id`, id, menteeID)
}

// TransitionForMentor atomically moves a pending request owned by mentorID
// to the given status. Returns false when no pending row matched.
func (r *MatchRequestRepository) TransitionForMentor(ctx context.Context, id, mentorID uuid.UUID, to domain.MatchStatus) (bool, error) {
	return r.transition(ctx, `mentor_id`, id, mentorID, to)
}

// TransitionForMentee atomically moves a pending request owned by menteeID
// to the given status.
func (r *MatchRequestRepository) TransitionForMentee(ctx context.Context, id, menteeID uuid.UUID, to domain.MatchStatus) (bool, error) {
	return r.transition(ctx, `mentee_id`, id, menteeID, to)
}

func (r *MatchRequestRepository) list(ctx context.Context, ownerCol string, ownerID uuid.UUID) ([]domain.MatchRequest, error) {
	query := fmt.Sprintf(`
		SELECT id, mentor_id, mentee_id, message, status, created_at, updated_at
		FROM match_requests
		WHERE %s = $1
		ORDER BY created_at DESC
	`, ownerCol)

	rows, err := r.db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list match requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.MatchRequest
	for rows.Next() {
		var req domain.MatchRequest
		if err := rows.Scan(
			&req.ID,
			&req.MentorID,
			&req.MenteeID,
			&req.Message,
			&req.Status,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

func (r *MatchRequestRepository) get(ctx context.Context, ownerCol string, id, ownerID uuid.UUID) (*domain.MatchRequest, error) {
	query := fmt.Sprintf(`
		SELECT id, mentor_id, mentee_id, message, status, created_at, updated_at
		FROM match_requests
		WHERE id = $1 AND %s = $2
	`, ownerCol)

	var req domain.MatchRequest
	err := r.db.Pool.QueryRow(ctx, query, id, ownerID).Scan(
		&req.ID,
		&req.MentorID,
		&req.MenteeID,
		&req.Message,
		&req.Status,
		&req.CreatedAt,
		&req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get match request: %w", err)
	}

	return &req, nil
}

func (r *MatchRequestRepository) transition(ctx context.Context, ownerCol string, id, ownerID uuid.UUID, to domain.MatchStatus) (bool, error) {
	query := fmt.Sprintf(`
		UPDATE match_requests
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND %s = $2 AND status = 'pending'
	`, ownerCol)

	tag, err := r.db.Pool.Exec(ctx, query, id, ownerID, to)
	if err != nil {
		return false, fmt.Errorf("failed to transition match request: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
