package education

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type EducationUseCase struct {
	repo   education.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewEducationUseCase(r education.Repository, ev service.EventPublisher, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, events: ev, logger: log}
}

type CreateEducationInput struct {
	Institution  string
	Degree       string
	Field        string
	StartDate    time.Time
	EndDate      time.Time
	GPA          *float64
	Percentage   *float64
	Description  string
	Location     string
	Achievements []string
	DisplayOrder int
}

func (uc *EducationUseCase) Create(ctx context.Context, in CreateEducationInput) (*education.Education, error) {
	now := time.Now().UTC()
	e := &education.Education{
		ID:           uuid.New(),
		Institution:  in.Institution,
		Degree:       in.Degree,
		Field:        in.Field,
		StartDate:    in.StartDate,
		EndDate:      in.EndDate,
		GPA:          in.GPA,
		Percentage:   in.Percentage,
		Description:  in.Description,
		Location:     in.Location,
		Achievements: in.Achievements,
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
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

type UpdateEducationInput struct {
	EducationID  uuid.UUID
	Institution  *string
	Degree       *string
	Field        *string
	StartDate    *time.Time
	EndDate      *time.Time
	GPA          *float64
	Percentage   *float64
	Description  *string
	Location     *string
	Achievements []string
	DisplayOrder *int
	IsActive     *bool
}

func (uc *EducationUseCase) Update(ctx context.Context, in UpdateEducationInput) (*education.Education, error) {
	e, err := uc.repo.FindByID(ctx, in.EducationID)
	if err != nil {
		return nil, err
	}

	if in.Institution != nil {
		e.Institution = *in.Institution
	}
	if in.Degree != nil {
		e.Degree = *in.Degree
	}
	if in.Field != nil {
		e.Field = *in.Field
	}
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		e.EndDate = *in.EndDate
	}
	if in.GPA != nil {
		e.GPA = in.GPA
	}
	if in.Percentage != nil {
		e.Percentage = in.Percentage
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Location != nil {
		e.Location = *in.Location
	}
	if in.Achievements != nil {
		e.Achievements = in.Achievements
	}
	if in.DisplayOrder != nil {
		e.DisplayOrder = *in.DisplayOrder
	}
	if in.IsActive != nil {
		e.IsActive = *in.IsActive
	}

	// End-after-start must hold on the merged record, not just the patch.
	if err := e.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeUpdated, e.ID)
	return e, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(service.EventTypeDeleted, id)
	return nil
}

func (uc *EducationUseCase) Get(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !e.IsActive {
		return nil, apperror.NewNotFound("education", id.String())
	}
	return e, nil
}

func (uc *EducationUseCase) List(ctx context.Context) ([]*education.Education, error) {
	return uc.repo.ListActive(ctx)
}

func (uc *EducationUseCase) publish(eventType string, id uuid.UUID) {
	go func() {
		payload := service.ContentEvent{EventType: eventType, Resource: "education", ResourceID: id.String()}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish education content event", zap.Error(err))
		}
	}()
}
