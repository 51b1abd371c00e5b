package leadership

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/leadership"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type LeadershipUseCase struct {
	repo   leadership.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewLeadershipUseCase(r leadership.Repository, ev service.EventPublisher, log logger.Logger) *LeadershipUseCase {
	return &LeadershipUseCase{repo: r, events: ev, logger: log}
}

type CreateLeadershipInput struct {
	Role          string
	Organization  string
	StartDate     time.Time
	EndDate       *time.Time
	Current       bool
	Description   string
	Contributions []string
	TeamSize      int
	Impact        string
	Skills        []string
	DisplayOrder  int
}

func (uc *LeadershipUseCase) Create(ctx context.Context, in CreateLeadershipInput) (*leadership.Leadership, error) {
	now := time.Now().UTC()
	l := &leadership.Leadership{
		ID:            uuid.New(),
		Role:          in.Role,
		Organization:  in.Organization,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		Current:       in.Current,
		Description:   in.Description,
		Contributions: in.Contributions,
		TeamSize:      in.TeamSize,
		Impact:        in.Impact,
		Skills:        in.Skills,
		DisplayOrder:  in.DisplayOrder,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if l.Contributions == nil {
		l.Contributions = []string{}
	}
	if l.Skills == nil {
		l.Skills = []string{}
	}
	if err := l.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Save(ctx, l); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeCreated, l.ID)
	return l, nil
}

type UpdateLeadershipInput struct {
	LeadershipID  uuid.UUID
	Role          *string
	Organization  *string
	StartDate     *time.Time
	EndDate       *time.Time
	ClearEndDate  bool
	Current       *bool
	Description   *string
	Contributions []string
	TeamSize      *int
	Impact        *string
	Skills        []string
	DisplayOrder  *int
	IsActive      *bool
}

func (uc *LeadershipUseCase) Update(ctx context.Context, in UpdateLeadershipInput) (*leadership.Leadership, error) {
	l, err := uc.repo.FindByID(ctx, in.LeadershipID)
	if err != nil {
		return nil, err
	}

	if in.Role != nil {
		l.Role = *in.Role
	}
	if in.Organization != nil {
		l.Organization = *in.Organization
	}
	if in.StartDate != nil {
		l.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		l.EndDate = in.EndDate
	}
	if in.ClearEndDate {
		l.EndDate = nil
	}
	if in.Current != nil {
		l.Current = *in.Current
	}
	if in.Description != nil {
		l.Description = *in.Description
	}
	if in.Contributions != nil {
		l.Contributions = in.Contributions
	}
	if in.TeamSize != nil {
		l.TeamSize = *in.TeamSize
	}
	if in.Impact != nil {
		l.Impact = *in.Impact
	}
	if in.Skills != nil {
		l.Skills = in.Skills
	}
	if in.DisplayOrder != nil {
		l.DisplayOrder = *in.DisplayOrder
	}
	if in.IsActive != nil {
		l.IsActive = *in.IsActive
	}

	if err := l.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	if err := uc.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeUpdated, l.ID)
	return l, nil
}

func (uc *LeadershipUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(service.EventTypeDeleted, id)
	return nil
}

func (uc *LeadershipUseCase) Get(ctx context.Context, id uuid.UUID) (*leadership.Leadership, error) {
	l, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !l.IsActive {
		return nil, apperror.NewNotFound("leadership", id.String())
	}
	return l, nil
}

func (uc *LeadershipUseCase) List(ctx context.Context) ([]*leadership.Leadership, error) {
	return uc.repo.ListActive(ctx)
}

func (uc *LeadershipUseCase) publish(eventType string, id uuid.UUID) {
	go func() {
		payload := service.ContentEvent{EventType: eventType, Resource: "leadership", ResourceID: id.String()}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish leadership content event", zap.Error(err))
		}
	}()
}
