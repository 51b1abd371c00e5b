package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	CategoryWeb        = "web"
	CategoryMobile     = "mobile"
	CategoryAI         = "ai"
	CategoryBlockchain = "blockchain"
	CategoryDevOps     = "devops"
	CategoryOther      = "other"
)

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Summary      string    `json:"summary"`
	Technologies []string  `json:"technologies"`
	ImageURL     *string   `json:"image_url"`
	LiveURL      *string   `json:"live_url"`
	SourceURL    *string   `json:"source_url"`
	Featured     bool      `json:"featured"`
	DisplayOrder int       `json:"display_order"`
	Category     string    `json:"category"`
	TeamSize     int       `json:"team_size"`
	Duration     string    `json:"duration"`
	Achievements []string  `json:"achievements"`
	IsActive     bool      `json:"is_active"`
	Priority     int       `json:"priority"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrInvalidCategory = errors.New("invalid project category")

func (p *Project) Validate() error {
	switch p.Category {
	case CategoryWeb, CategoryMobile, CategoryAI, CategoryBlockchain, CategoryDevOps, CategoryOther:
	default:
		return ErrInvalidCategory
	}
	if p.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	ListActive(ctx context.Context) ([]*Project, error)
}
