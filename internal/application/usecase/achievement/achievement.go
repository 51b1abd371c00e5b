package achievement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/achievement"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type AchievementUseCase struct {
	repo   achievement.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewAchievementUseCase(r achievement.Repository, ev service.EventPublisher, log logger.Logger) *AchievementUseCase {
	return &AchievementUseCase{repo: r, events: ev, logger: log}
}

type CreateAchievementInput struct {
	Title        string
	Description  string
	Category     string
	Date         time.Time
	Organization *string
	Participants int
	Rank         string
	Prize        *achievement.Prize
	DisplayOrder int
}

func (uc *AchievementUseCase) Create(ctx context.Context, in CreateAchievementInput) (*achievement.Achievement, error) {
	now := time.Now().UTC()
	a := &achievement.Achievement{
		ID:           uuid.New(),
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Date:         in.Date,
		Organization: in.Organization,
		Participants: in.Participants,
		Rank:         in.Rank,
		Prize:        in.Prize,
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeCreated, a.ID)
	return a, nil
}

type UpdateAchievementInput struct {
	AchievementID uuid.UUID
	Title         *string
	Description   *string
	Category      *string
	Date          *time.Time
	Organization  *string
	Participants  *int
	Rank          *string
	Prize         *achievement.Prize
	DisplayOrder  *int
	IsActive      *bool
}

func (uc *AchievementUseCase) Update(ctx context.Context, in UpdateAchievementInput) (*achievement.Achievement, error) {
	a, err := uc.repo.FindByID(ctx, in.AchievementID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.Category != nil {
		a.Category = *in.Category
	}
	if in.Date != nil {
		a.Date = *in.Date
	}
	if in.Organization != nil {
		a.Organization = in.Organization
	}
	if in.Participants != nil {
		a.Participants = *in.Participants
	}
	if in.Rank != nil {
		a.Rank = *in.Rank
	}
	if in.Prize != nil {
		a.Prize = in.Prize
	}
	if in.DisplayOrder != nil {
		a.DisplayOrder = *in.DisplayOrder
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}

	if err := a.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeUpdated, a.ID)
	return a, nil
}

func (uc *AchievementUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(service.EventTypeDeleted, id)
	return nil
}

func (uc *AchievementUseCase) Get(ctx context.Context, id uuid.UUID) (*achievement.Achievement, error) {
	a, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsActive {
		return nil, apperror.NewNotFound("achievement", id.String())
	}
	return a, nil
}

func (uc *AchievementUseCase) List(ctx context.Context) ([]*achievement.Achievement, error) {
	return uc.repo.ListActive(ctx)
}

func (uc *AchievementUseCase) publish(eventType string, id uuid.UUID) {
	go func() {
		payload := service.ContentEvent{EventType: eventType, Resource: "achievement", ResourceID: id.String()}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish achievement content event", zap.Error(err))
		}
	}()
}
