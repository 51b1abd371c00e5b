package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID           uuid.UUID  `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
	Current      bool       `json:"current"`
	Description  string     `json:"description"`
	Achievements []string   `json:"achievements"`
	Technologies []string   `json:"technologies"`
	Location     *string    `json:"location"`
	DisplayOrder int        `json:"display_order"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

var ErrEndBeforeStart = errors.New("end date must be after start date")

// Validate applies the current-flag rule before checking date order: a current
// position never stores an end date, whatever the client supplied.
func (e *Experience) Validate() error {
	if e.Current {
		e.EndDate = nil
		return nil
	}
	if e.EndDate != nil && !e.EndDate.After(e.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// DurationDays is derived at read time, never stored.
func (e *Experience) DurationDays(now time.Time) int {
	end := now
	if e.EndDate != nil {
		end = *e.EndDate
	}
	return int(end.Sub(e.StartDate).Hours() / 24)
}

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	ListActive(ctx context.Context) ([]*Experience, error)
}
