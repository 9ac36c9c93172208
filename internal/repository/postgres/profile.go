package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

// ProfileRepository handles profile data access
type ProfileRepository struct {
	db *DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// GetOrCreate returns the profile for userID, inserting an empty row first
// if none exists. The upsert keeps concurrent first reads race-safe.
func (r *ProfileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Pool.Exec(ctx, query, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}

	return r.Get(ctx, userID)
}

// Get retrieves a profile with its skill labels
func (r *ProfileRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT user_id, bio, image_data, image_content_type, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile domain.Profile
	err := r.db.Pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Bio,
		&profile.ImageData,
		&profile.ImageContentType,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	skills, err := r.listSkills(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.Skills = skills

	return &profile, nil
}

// UpdateBio updates the bio text
func (r *ProfileRepository) UpdateBio(ctx context.Context, userID uuid.UUID, bio string) error {
	query := `UPDATE profiles SET bio = $2, updated_at = NOW() WHERE user_id = $1`

	if _, err := r.db.Pool.Exec(ctx, query, userID, bio); err != nil {
		return fmt.Errorf("failed to update bio: %w", err)
	}
	return nil
}

// UpdateImage stores the uploaded picture bytes and content type
func (r *ProfileRepository) UpdateImage(ctx context.Context, userID uuid.UUID, data []byte, contentType string) error {
	query := `
		UPDATE profiles
		SET image_data = $2, image_content_type = $3, updated_at = NOW()
		WHERE user_id = $1
	`

	if _, err := r.db.Pool.Exec(ctx, query, userID, data, contentType); err != nil {
		return fmt.Errorf("failed to update image: %w", err)
	}
	return nil
}

// ReplaceSkills swaps the mentor's skill associations for the given labels.
// Skill rows are shared across profiles and created on first use.
func (r *ProfileRepository) ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []string) error {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM profile_skills WHERE profile_user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to clear skills: %w", err)
	}

	for _, name := range skills {
		var skillID int64
		err := tx.QueryRow(ctx, `
			INSERT INTO skills (name)
			VALUES ($1)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id
		`, name).Scan(&skillID)
		if err != nil {
			return fmt.Errorf("failed to upsert skill %q: %w", name, err)
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO profile_skills (profile_user_id, skill_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, userID, skillID)
		if err != nil {
			return fmt.Errorf("failed to attach skill %q: %w", name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit skills: %w", err)
	}
	return nil
}

func (r *ProfileRepository) listSkills(ctx context.Context, userID uuid.UUID) ([]string, error) {
	query := `
		SELECT s.name
		FROM skills s
		INNER JOIN profile_skills ps ON ps.skill_id = s.id
		WHERE ps.profile_user_id = $1
		ORDER BY s.name
	`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list skills: %w", err)
	}
	defer rows.Close()

	var skills []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan skill: %w", err)
		}
		skills = append(skills, name)
	}

	return skills, rows.Err()
}
