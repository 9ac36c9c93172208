package domain

import "context"

// MentorOrder selects the sort key for mentor listings.
type MentorOrder string

const (
	// MentorOrderDefault sorts ascending by user id.
	MentorOrderDefault MentorOrder = ""
	MentorOrderByName  MentorOrder = "name"
	// MentorOrderBySkill sorts by each mentor's first skill name. Mentors
	// without skills sort last.
	MentorOrderBySkill MentorOrder = "skill"
)

// MentorQuery filters and orders a mentor listing. Skill matches
// case-insensitively as a substring of any skill label.
type MentorQuery struct {
	Skill   string
	OrderBy MentorOrder
}

// MentorRepository is the read-only projection over mentor users joined with
// their profiles and skills.
type MentorRepository interface {
	List(ctx context.Context, q MentorQuery) ([]UserView, error)
}
