package skill

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

// SkillUseCase operates at two granularities: whole categories, and single
// skills addressed by category id + skill id.
type SkillUseCase struct {
	repo   skill.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewSkillUseCase(r skill.Repository, ev service.EventPublisher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, events: ev, logger: log}
}

type SkillInput struct {
	Name        string
	Icon        string
	Color       string
	Proficiency int
	Years       float64
	IsActive    bool
}

type CreateCategoryInput struct {
	Name         string
	Description  *string
	Skills       []SkillInput
	DisplayOrder int
}

func (uc *SkillUseCase) CreateCategory(ctx context.Context, in CreateCategoryInput) (*skill.Category, error) {
	now := time.Now().UTC()
	c := &skill.Category{
		ID:           uuid.New(),
		Name:         in.Name,
		Description:  in.Description,
		Skills:       make([]skill.Skill, 0, len(in.Skills)),
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, s := range in.Skills {
		entry := skill.Skill{
			ID:          uuid.New(),
			Name:        s.Name,
			Icon:        s.Icon,
			Color:       s.Color,
			Proficiency: s.Proficiency,
			Years:       s.Years,
			IsActive:    s.IsActive,
		}
		if err := entry.Validate(); err != nil {
			return nil, apperror.NewInvalidInput(err.Error(), err)
		}
		c.Skills = append(c.Skills, entry)
	}

	if err := uc.repo.Save(ctx, c); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeCreated, c.ID)
	return c, nil
}

type UpdateCategoryInput struct {
	CategoryID   uuid.UUID
	Name         *string
	Description  *string
	DisplayOrder *int
	IsActive     *bool
}

func (uc *SkillUseCase) UpdateCategory(ctx context.Context, in UpdateCategoryInput) (*skill.Category, error) {
	c, err := uc.repo.FindByID(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if in.DisplayOrder != nil {
		c.DisplayOrder = *in.DisplayOrder
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeUpdated, c.ID)
	return c, nil
}

func (uc *SkillUseCase) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.publish(service.EventTypeDeleted, id)
	return nil
}

func (uc *SkillUseCase) GetCategory(ctx context.Context, id uuid.UUID) (*skill.Category, error) {
	c, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.IsActive {
		return nil, apperror.NewNotFound("skill category", id.String())
	}
	return c, nil
}

func (uc *SkillUseCase) ListCategories(ctx context.Context) ([]*skill.Category, error) {
	return uc.repo.ListActive(ctx)
}

// AddSkill appends a skill to an existing category. A missing category is a
// not-found, never an implicit create.
func (uc *SkillUseCase) AddSkill(ctx context.Context, categoryID uuid.UUID, in SkillInput) (*skill.Category, error) {
	c, err := uc.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	entry := skill.Skill{
		ID:          uuid.New(),
		Name:        in.Name,
		Icon:        in.Icon,
		Color:       in.Color,
		Proficiency: in.Proficiency,
		Years:       in.Years,
		IsActive:    in.IsActive,
	}
	if err := entry.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	c.Skills = append(c.Skills, entry)

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeUpdated, c.ID)
	return c, nil
}

func (uc *SkillUseCase) UpdateSkill(ctx context.Context, categoryID, skillID uuid.UUID, in SkillInput) (*skill.Category, error) {
	c, err := uc.repo.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	idx := c.FindSkill(skillID)
	if idx < 0 {
		return nil, apperror.NewNotFound("skill", skillID.String())
	}

	entry := skill.Skill{
		ID:          skillID,
		Name:        in.Name,
		Icon:        in.Icon,
		Color:       in.Color,
		Proficiency: in.Proficiency,
		Years:       in.Years,
		IsActive:    in.IsActive,
	}
	if err := entry.Validate(); err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}
	c.Skills[idx] = entry

	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	uc.publish(service.EventTypeUpdated, c.ID)
	return c, nil
}

func (uc *SkillUseCase) DeleteSkill(ctx context.Context, categoryID, skillID uuid.UUID) error {
	c, err := uc.repo.FindByID(ctx, categoryID)
	if err != nil {
		return err
	}

	idx := c.FindSkill(skillID)
	if idx < 0 {
		return apperror.NewNotFound("skill", skillID.String())
	}
	c.Skills = append(c.Skills[:idx], c.Skills[idx+1:]...)

	if err := uc.repo.Update(ctx, c); err != nil {
		return err
	}
	uc.publish(service.EventTypeUpdated, c.ID)
	return nil
}

func (uc *SkillUseCase) publish(eventType string, id uuid.UUID) {
	go func() {
		payload := service.ContentEvent{EventType: eventType, Resource: "skill_category", ResourceID: id.String()}
		if err := uc.events.PublishContentEvent(context.Background(), payload); err != nil {
			uc.logger.Warn("Failed to publish skill content event", zap.Error(err))
		}
	}()
}
