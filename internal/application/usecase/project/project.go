package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProjectUseCase struct {
	repo   project.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewProjectUseCase(r project.Repository, ev service.EventPublisher, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: r, events: ev, logger: log}
}

type CreateProjectInput struct {
	Title        string
	Description  string
	Summary      string
	Technologies []string
	ImageURL     *string
	LiveURL      *string
	SourceURL    *string
	Featured     bool
	DisplayOrder int
	Category     string
	TeamSize     int
	Duration     string
	Achievements []string
	Priority     int
}

func (uc *ProjectUseCase) Create(ctx context.Context, in CreateProjectInput) (*project.Project, error) {
	now := time.Now().UTC()
	p := &project.Project{
		ID:           uuid.New(),
		Title:        in.Title,
		Description:  in.Description,
		Summary:      in.Summary,
		Technologies: in.Technologies,
		ImageURL:     in.ImageURL,
		LiveURL:      in.LiveURL,
		SourceURL:    in.SourceURL,
		Featured:     in.Featured,
		DisplayOrder: in.DisplayOrder,
		Category:     in.Category,
		TeamSize:     in.TeamSize,
		Duration:     in.Duration,
		Achievements: in.Achievements,
		IsActive:     true,
		Priority:     in.Priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	if p.Achievements == nil {
		p.Achievements = []string{}
	}
	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeCreated, p.ID)
	return p, nil
}

// UpdateProjectInput carries only the fields the client supplied; nil means
// "leave unchanged".
type UpdateProjectInput struct {
	ProjectID    uuid.UUID
	Title        *string
	Description  *string
	Summary      *string
	Technologies []string
	ImageURL     *string
	LiveURL      *string
	SourceURL    *string
	Featured     *bool
	DisplayOrder *int
	Category     *string
	TeamSize     *int
	Duration     *string
	Achievements []string
	IsActive     *bool
	Priority     *int
}

func (uc *ProjectUseCase) Update(ctx context.Context, in UpdateProjectInput) (*project.Project, error) {
	p, err := uc.repo.FindByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		p.Title = *in.Title
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Summary != nil {
		p.Summary = *in.Summary
	}
	if in.Technologies != nil {
		p.Technologies = in.Technologies
	}
	if in.ImageURL != nil {
		p.ImageURL = in.ImageURL
	}
	if in.LiveURL != nil {
		p.LiveURL = in.LiveURL
	}
	if in.SourceURL != nil {
		p.SourceURL = in.SourceURL
	}
	if in.Featured != nil {
		p.Featured = *in.Featured
	}
	if in.DisplayOrder != nil {
		p.DisplayOrder = *in.DisplayOrder
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.TeamSize != nil {
		p.TeamSize = *in.TeamSize
	}
	if in.Duration != nil {
		p.Duration = *in.Duration
	}
	if in.Achievements != nil {
		p.Achievements = in.Achievements
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	if in.Priority != nil {
		p.Priority = *in.Priority
	}

	if err := p.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeUpdated, p.ID)
	return p, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(service.EventTypeDeleted, id)
	return nil
}

func (uc *ProjectUseCase) Get(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !p.IsActive {
		return nil, apperror.NewNotFound("project", id.String())
	}
	return p, nil
}

func (uc *ProjectUseCase) List(ctx context.Context) ([]*project.Project, error) {
	return uc.repo.ListActive(ctx)
}

func (uc *ProjectUseCase) publish(eventType string, id uuid.UUID) {
	go func() {
		payload := service.ContentEvent{EventType: eventType, Resource: "project", ResourceID: id.String()}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish project content event", zap.Error(err))
		}
	}()
}
