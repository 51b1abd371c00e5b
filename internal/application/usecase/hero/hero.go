package hero

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/hero"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type HeroUseCase struct {
	repo   hero.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewHeroUseCase(r hero.Repository, ev service.EventPublisher, log logger.Logger) *HeroUseCase {
	return &HeroUseCase{repo: r, events: ev, logger: log}
}

func (uc *HeroUseCase) Get(ctx context.Context) (*hero.Hero, error) {
	return uc.repo.FindActive(ctx)
}

type UpsertHeroInput struct {
	Name      string
	Title     string
	Summary   string
	Email     string
	Phone     *string
	Location  *string
	Socials   hero.SocialLinks
	ImageURL  *string
	ResumeURL *string
}

// Upsert creates the hero record on first write and updates it in place
// afterwards. Identifier, active flag and timestamps never come from the
// client: they are carried over from the existing record or assigned here.
func (uc *HeroUseCase) Upsert(ctx context.Context, in UpsertHeroInput) (*hero.Hero, error) {
	existing, err := uc.repo.FindActive(ctx)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()

	if existing == nil {
		h := &hero.Hero{
			ID:        uuid.New(),
			Name:      in.Name,
			Title:     in.Title,
			Summary:   in.Summary,
			Email:     in.Email,
			Phone:     in.Phone,
			Location:  in.Location,
			Socials:   in.Socials,
			ImageURL:  in.ImageURL,
			ResumeURL: in.ResumeURL,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.repo.Save(ctx, h); err != nil {
			return nil, err
		}
		uc.publish(service.EventTypeCreated, h.ID)
		return h, nil
	}

	existing.Name = in.Name
	existing.Title = in.Title
	existing.Summary = in.Summary
	existing.Email = in.Email
	existing.Phone = in.Phone
	existing.Location = in.Location
	existing.Socials = in.Socials
	existing.ImageURL = in.ImageURL
	existing.ResumeURL = in.ResumeURL
	existing.UpdatedAt = now

	if err := uc.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeUpdated, existing.ID)
	return existing, nil
}

func (uc *HeroUseCase) publish(eventType string, id uuid.UUID) {
	go func() {
		payload := service.ContentEvent{EventType: eventType, Resource: "hero", ResourceID: id.String()}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish hero content event", zap.Error(err))
		}
	}()
}
