package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Skill lives embedded in exactly one category and has no identity outside it.
type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Proficiency int       `json:"proficiency"`
	Years       float64   `json:"years"`
	IsActive    bool      `json:"is_active"`
}

type Category struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Skills       []Skill   `json:"skills"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var (
	ErrSkillNotFound      = errors.New("skill not found in category")
	ErrInvalidProficiency = errors.New("proficiency must be between 0 and 100")
)

func (s *Skill) Validate() error {
	if s.Proficiency < 0 || s.Proficiency > 100 {
		return ErrInvalidProficiency
	}
	if s.Name == "" {
		return errors.New("skill name is required")
	}
	return nil
}

// FindSkill returns the index of a skill inside the category, -1 if absent.
func (c *Category) FindSkill(skillID uuid.UUID) int {
	for i, s := range c.Skills {
		if s.ID == skillID {
			return i
		}
	}
	return -1
}

type Repository interface {
	Save(ctx context.Context, c *Category) error
	Update(ctx context.Context, c *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	ListActive(ctx context.Context) ([]*Category, error)
}
