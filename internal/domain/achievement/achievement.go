package achievement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	CategoryAcademic      = "academic"
	CategoryHackathon     = "hackathon"
	CategoryCompetition   = "competition"
	CategoryCertification = "certification"
	CategoryPublication   = "publication"
	CategoryLeadership    = "leadership"
	CategoryOther         = "other"
)

type Prize struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
}

type Achievement struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Date         time.Time `json:"date"`
	Organization *string   `json:"organization"`
	Participants int       `json:"participants"`
	Rank         string    `json:"rank"`
	Prize        *Prize    `json:"prize"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrInvalidCategory = errors.New("invalid achievement category")

func (a *Achievement) Validate() error {
	switch a.Category {
	case CategoryAcademic, CategoryHackathon, CategoryCompetition,
		CategoryCertification, CategoryPublication, CategoryLeadership, CategoryOther:
	default:
		return ErrInvalidCategory
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, a *Achievement) error
	Update(ctx context.Context, a *Achievement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Achievement, error)
	ListActive(ctx context.Context) ([]*Achievement, error)
}
