package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/khoahotran/portfolio-api/internal/domain/account"
	"github.com/khoahotran/portfolio-api/internal/domain/achievement"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/hero"
	"github.com/khoahotran/portfolio-api/internal/domain/leadership"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"go.uber.org/zap"
)

// Default credentials for the bootstrap admin. Meant for local development;
// change the password immediately on anything reachable from the internet.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
	adminEmail    = "admin@khoahotran.dev"
)

// SeedUseCase populates an empty database with the owner's starter content.
// Every step is keyed on a natural identifier (username, title, institution,
// category name) so rerunning it is a no-op rather than a duplication.
type SeedUseCase struct {
	accounts     account.Repository
	heroes       hero.Repository
	projects     project.Repository
	experiences  experience.Repository
	educations   education.Repository
	achievements achievement.Repository
	leaderships  leadership.Repository
	skills       skill.Repository
	logger       logger.Logger
}

func NewSeedUseCase(
	accounts account.Repository,
	heroes hero.Repository,
	projects project.Repository,
	experiences experience.Repository,
	educations education.Repository,
	achievements achievement.Repository,
	leaderships leadership.Repository,
	skills skill.Repository,
	log logger.Logger,
) *SeedUseCase {
	return &SeedUseCase{
		accounts:     accounts,
		heroes:       heroes,
		projects:     projects,
		experiences:  experiences,
		educations:   educations,
		achievements: achievements,
		leaderships:  leaderships,
		skills:       skills,
		logger:       log,
	}
}

func (uc *SeedUseCase) Run(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"admin account", uc.seedAdmin},
		{"hero profile", uc.seedHero},
		{"projects", uc.seedProjects},
		{"experience", uc.seedExperience},
		{"education", uc.seedEducation},
		{"achievements", uc.seedAchievements},
		{"leadership", uc.seedLeadership},
		{"skills", uc.seedSkills},
	}

	for _, step := range steps {
		if err := step.fn(ctx); err != nil {
			uc.logger.Error("Seed step failed", err, zap.String("step", step.name))
			return err
		}
		uc.logger.Info("Seed step complete", zap.String("step", step.name))
	}
	return nil
}

func (uc *SeedUseCase) seedAdmin(ctx context.Context) error {
	if _, err := uc.accounts.FindByUsername(ctx, adminUsername); err == nil {
		return nil
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	now := time.Now()
	return uc.accounts.Save(ctx, &account.Account{
		ID:           uuid.New(),
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         account.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func (uc *SeedUseCase) seedHero(ctx context.Context) error {
	if _, err := uc.heroes.FindActive(ctx); err == nil {
		return nil
	} else if !errors.Is(err, apperror.ErrNotFound) {
		return err
	}

	location := "Ho Chi Minh City, Vietnam"
	now := time.Now()
	return uc.heroes.Save(ctx, &hero.Hero{
		ID:       uuid.New(),
		Name:     "Khoa Ho Tran",
		Title:    "Backend Engineer",
		Summary:  "Backend engineer focused on Go, distributed systems and developer tooling.",
		Email:    "hello@khoahotran.dev",
		Location: &location,
		Socials: hero.SocialLinks{
			GitHub:   "https://github.com/khoahotran",
			LinkedIn: "https://linkedin.com/in/khoahotran",
		},
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (uc *SeedUseCase) seedProjects(ctx context.Context) error {
	existing, err := uc.projects.ListActive(ctx)
	if err != nil {
		return err
	}
	titles := make(map[string]bool, len(existing))
	for _, p := range existing {
		titles[p.Title] = true
	}

	now := time.Now()
	for _, p := range starterProjects() {
		if titles[p.Title] {
			continue
		}
		p.ID = uuid.New()
		p.IsActive = true
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := uc.projects.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (uc *SeedUseCase) seedExperience(ctx context.Context) error {
	existing, err := uc.experiences.ListActive(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.Company+"|"+e.Position] = true
	}

	now := time.Now()
	for _, e := range starterExperience() {
		if seen[e.Company+"|"+e.Position] {
			continue
		}
		e.ID = uuid.New()
		e.IsActive = true
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := uc.experiences.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (uc *SeedUseCase) seedEducation(ctx context.Context) error {
	existing, err := uc.educations.ListActive(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e.Institution+"|"+e.Degree] = true
	}

	now := time.Now()
	for _, e := range starterEducation() {
		if seen[e.Institution+"|"+e.Degree] {
			continue
		}
		e.ID = uuid.New()
		e.IsActive = true
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := uc.educations.Save(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (uc *SeedUseCase) seedAchievements(ctx context.Context) error {
	existing, err := uc.achievements.ListActive(ctx)
	if err != nil {
		return err
	}
	titles := make(map[string]bool, len(existing))
	for _, a := range existing {
		titles[a.Title] = true
	}

	now := time.Now()
	for _, a := range starterAchievements() {
		if titles[a.Title] {
			continue
		}
		a.ID = uuid.New()
		a.IsActive = true
		a.CreatedAt = now
		a.UpdatedAt = now
		if err := uc.achievements.Save(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

func (uc *SeedUseCase) seedLeadership(ctx context.Context) error {
	existing, err := uc.leaderships.ListActive(ctx)
	if err != nil {
		return err
	}
	seen := make(map[string]bool, len(existing))
	for _, l := range existing {
		seen[l.Organization+"|"+l.Role] = true
	}

	now := time.Now()
	for _, l := range starterLeadership() {
		if seen[l.Organization+"|"+l.Role] {
			continue
		}
		l.ID = uuid.New()
		l.IsActive = true
		l.CreatedAt = now
		l.UpdatedAt = now
		if err := uc.leaderships.Save(ctx, l); err != nil {
			return err
		}
	}
	return nil
}

func (uc *SeedUseCase) seedSkills(ctx context.Context) error {
	existing, err := uc.skills.ListActive(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]bool, len(existing))
	for _, c := range existing {
		names[c.Name] = true
	}

	now := time.Now()
	for _, c := range starterSkillCategories() {
		if names[c.Name] {
			continue
		}
		c.ID = uuid.New()
		for i := range c.Skills {
			c.Skills[i].ID = uuid.New()
			c.Skills[i].IsActive = true
		}
		c.IsActive = true
		c.CreatedAt = now
		c.UpdatedAt = now
		if err := uc.skills.Save(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
