package education

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID           uuid.UUID `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	Field        string    `json:"field"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	GPA          *float64  `json:"gpa"`
	Percentage   *float64  `json:"percentage"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	Achievements []string  `json:"achievements"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var (
	ErrEndBeforeStart = errors.New("end date must be after start date")
	ErrInvalidGPA     = errors.New("gpa must be between 0 and 10")
	ErrInvalidPercent = errors.New("percentage must be between 0 and 100")
)

func (e *Education) Validate() error {
	if !e.EndDate.After(e.StartDate) {
		return ErrEndBeforeStart
	}
	if e.GPA != nil && (*e.GPA < 0 || *e.GPA > 10) {
		return ErrInvalidGPA
	}
	if e.Percentage != nil && (*e.Percentage < 0 || *e.Percentage > 100) {
		return ErrInvalidPercent
	}
	return nil
}

// DurationYears is derived at read time, never stored.
func (e *Education) DurationYears() float64 {
	return e.EndDate.Sub(e.StartDate).Hours() / 24 / 365.25
}

type Repository interface {
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	ListActive(ctx context.Context) ([]*Education, error)
}
