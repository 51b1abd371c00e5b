package hero

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SocialLinks is the fixed set of profile links rendered by the client.
type SocialLinks struct {
	GitHub   string `json:"github,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	Twitter  string `json:"twitter,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Hero is the singular bio record. At most one row may be active at a time,
// enforced by a partial unique index on is_active.
type Hero struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Title     string      `json:"title"`
	Summary   string      `json:"summary"`
	Email     string      `json:"email"`
	Phone     *string     `json:"phone"`
	Location  *string     `json:"location"`
	Socials   SocialLinks `json:"socials"`
	ImageURL  *string     `json:"image_url"`
	ResumeURL *string     `json:"resume_url"`
	IsActive  bool        `json:"is_active"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type Repository interface {
	Save(ctx context.Context, h *Hero) error
	Update(ctx context.Context, h *Hero) error
	FindActive(ctx context.Context) (*Hero, error)
}
