package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultImageURL is served for users who never uploaded a picture.
const DefaultImageURL = "https://placehold.co/500x500.jpg?text=USER"

// Profile holds the editable presentation data for a user. Rows are created
// lazily on first read or update; Skills stays empty for mentees.
type Profile struct {
	UserID           uuid.UUID `json:"user_id"`
	Bio              string    `json:"bio"`
	ImageData        []byte    `json:"-"`
	ImageContentType string    `json:"-"`
	Skills           []string  `json:"skills"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasImage reports whether an uploaded picture is stored for the profile.
func (p *Profile) HasImage() bool {
	return len(p.ImageData) > 0
}

// ProfileUpdate represents a profile update request. Image carries a base64
// payload; Skills must be present for mentors and absent for mentees.
type ProfileUpdate struct {
	Name   string    `json:"name" validate:"required,max=255"`
	Bio    string    `json:"bio"`
	Image  string    `json:"image"`
	Skills *[]string `json:"skills"`
}

// ProfileView is the wire shape of a profile. Skills is omitted entirely for
// mentees so the payload stays role-shaped.
type ProfileView struct {
	Name     string    `json:"name"`
	Bio      string    `json:"bio"`
	ImageURL string    `json:"imageUrl"`
	Skills   *[]string `json:"skills,omitempty"`
}

// UserView is the identity-plus-profile payload returned by /me and embedded
// in mentor listings.
type UserView struct {
	ID      uuid.UUID   `json:"id"`
	Email   string      `json:"email"`
	Role    Role        `json:"role"`
	Profile ProfileView `json:"profile"`
}

// ProfileRepository handles profile data access
type ProfileRepository interface {
	// GetOrCreate returns the profile for userID, inserting an empty row
	// first if none exists yet.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	UpdateBio(ctx context.Context, userID uuid.UUID, bio string) error
	UpdateImage(ctx context.Context, userID uuid.UUID, data []byte, contentType string) error
	ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []string) error
}
