package experience

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ExperienceUseCase struct {
	repo   experience.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewExperienceUseCase(r experience.Repository, ev service.EventPublisher, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, events: ev, logger: log}
}

type CreateExperienceInput struct {
	Company      string
	Position     string
	StartDate    time.Time
	EndDate      *time.Time
	Current      bool
	Description  string
	Achievements []string
	Technologies []string
	Location     *string
	DisplayOrder int
}

func (uc *ExperienceUseCase) Create(ctx context.Context, in CreateExperienceInput) (*experience.Experience, error) {
	now := time.Now().UTC()
	e := &experience.Experience{
		ID:           uuid.New(),
		Company:      in.Company,
		Position:     in.Position,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		Current:      in.Current,
		Description:  in.Description,
		Achievements: in.Achievements,
		Technologies: in.Technologies,
		Location:     in.Location,
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
	if e.Technologies == nil {
		e.Technologies = []string{}
	}
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeCreated, e.ID)
	return e, nil
}

type UpdateExperienceInput struct {
	ExperienceID uuid.UUID
	Company      *string
	Position     *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Current      *bool
	Description  *string
	Achievements []string
	Technologies []string
	Location     *string
	DisplayOrder *int
	IsActive     *bool
}

func (uc *ExperienceUseCase) Update(ctx context.Context, in UpdateExperienceInput) (*experience.Experience, error) {
	e, err := uc.repo.FindByID(ctx, in.ExperienceID)
	if err != nil {
		return nil, err
	}

	if in.Company != nil {
		e.Company = *in.Company
	}
	if in.Position != nil {
		e.Position = *in.Position
	}
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		e.EndDate = in.EndDate
	}
	if in.ClearEndDate {
		e.EndDate = nil
	}
	if in.Current != nil {
		e.Current = *in.Current
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Achievements != nil {
		e.Achievements = in.Achievements
	}
	if in.Technologies != nil {
		e.Technologies = in.Technologies
	}
	if in.Location != nil {
		e.Location = in.Location
	}
	if in.DisplayOrder != nil {
		e.DisplayOrder = *in.DisplayOrder
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}

	// Re-check cross-field rules on the merged record.
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeUpdated, e.ID)
	return e, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(service.EventTypeDeleted, id)
	return nil
}

func (uc *ExperienceUseCase) Get(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.IsActive {
		return nil, apperror.NewNotFound("experience", id.String())
	}
	return e, nil
}

func (uc *ExperienceUseCase) List(ctx context.Context) ([]*experience.Experience, error) {
	return uc.repo.ListActive(ctx)
}

func (uc *ExperienceUseCase) publish(eventType string, id uuid.UUID) {
	go func() {
		payload := service.ContentEvent{EventType: eventType, Resource: "experience", ResourceID: id.String()}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish experience content event", zap.Error(err))
		}
	}()
}
