package leadership

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Leadership struct {
	ID            uuid.UUID  `json:"id"`
	Role          string     `json:"role"`
	Organization  string     `json:"organization"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Current       bool       `json:"current"`
	Description   string     `json:"description"`
	Contributions []string   `json:"contributions"`
	TeamSize      int        `json:"team_size"`
	Impact        string     `json:"impact"`
	Skills        []string   `json:"skills"`
	DisplayOrder  int        `json:"display_order"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

var ErrEndBeforeStart = errors.New("end date must be after start date")

// Validate mirrors the experience rule: current roles never store an end date.
func (l *Leadership) Validate() error {
	if l.Current {
		l.EndDate = nil
		return nil
	}
	if l.EndDate != nil && !l.EndDate.After(l.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

func (l *Leadership) DurationDays(now time.Time) int {
	end := now
	if l.EndDate != nil {
		end = *l.EndDate
	}
	return int(end.Sub(l.StartDate).Hours() / 24)
}

type Repository interface {
	Save(ctx context.Context, l *Leadership) error
	Update(ctx context.Context, l *Leadership) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Leadership, error)
	ListActive(ctx context.Context) ([]*Leadership, error)
}
