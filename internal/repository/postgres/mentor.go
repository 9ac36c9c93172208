package postgres

import (
	"context"
	"fmt"

	"github.com/yeonsu-dev/mentor-match/internal/domain"
)

// MentorRepository is the read-only mentor directory projection
type MentorRepository struct {
	db *DB
}

// NewMentorRepository creates a new mentor repository
func NewMentorRepository(db *DB) *MentorRepository {
	return &MentorRepository{db: db}
}

// List returns every mentor joined with profile and skills. The skill filter
// matches case-insensitively as a substring; "skill" ordering uses each
// mentor's first skill name, which is a weak single-key order.
func (r *MentorRepository) List(ctx context.Context, q domain.MentorQuery) ([]domain.UserView, error) {
	orderBy := `u.id ASC`
	switch q.OrderBy {
	case domain.MentorOrderByName:
		orderBy = `u.name ASC`
	case domain.MentorOrderBySkill:
		orderBy = `MIN(s.name) ASC NULLS LAST, u.id ASC`
	}

	query := fmt.Sprintf(`
		SELECT u.id, u.email, u.name,
		       COALESCE(p.bio, '') AS bio,
		       COALESCE(octet_length(p.image_data), 0) > 0 AS has_image,
		       COALESCE(array_agg(s.name ORDER BY s.name) FILTER (WHERE s.name IS NOT NULL), '{}') AS skills
		FROM users u
		LEFT JOIN profiles p ON p.user_id = u.id
		LEFT JOIN profile_skills ps ON ps.profile_user_id = u.id
		LEFT JOIN skills s ON s.id = ps.skill_id
		WHERE u.role = 'mentor'
		  AND ($1 = '' OR EXISTS (
		      SELECT 1
		      FROM profile_skills fps
		      INNER JOIN skills fs ON fs.id = fps.skill_id
		      WHERE fps.profile_user_id = u.id
		        AND fs.name ILIKE '%%' || $1 || '%%'
		  ))
		GROUP BY u.id, p.user_id
		ORDER BY %s
	`, orderBy)

	rows, err := r.db.Pool.Query(ctx, query, q.Skill)
	if err != nil {
		return nil, fmt.Errorf("failed to list mentors: %w", err)
	}
	defer rows.Close()

	var mentors []domain.UserView
	for rows.Next() {
		var (
			view     domain.UserView
			hasImage bool
			skills   []string
		)
		if err := rows.Scan(
			&view.ID,
			&view.Email,
			&view.Profile.Name,
			&view.Profile.Bio,
			&hasImage,
			&skills,
		); err != nil {
			return nil, fmt.Errorf("failed to scan mentor: %w", err)
		}

		view.Role = domain.RoleMentor
		if skills == nil {
			skills = []string{}
		}
		view.Profile.Skills = &skills
		view.Profile.ImageURL = domain.DefaultImageURL
		if hasImage {
			view.Profile.ImageURL = fmt.Sprintf("/api/images/%s/%s", domain.RoleMentor, view.ID)
		}

		mentors = append(mentors, view)
	}

	return mentors, rows.Err()
}
