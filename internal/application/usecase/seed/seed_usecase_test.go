package seed

import (
	"context"
	"testing"
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
	"github.com/stretchr/testify/assert"
)

type memAccountRepo struct{ byUsername map[string]*account.Account }

func (r *memAccountRepo) Save(_ context.Context, a *account.Account) error {
	r.byUsername[a.Username] = a
	return nil
}
func (r *memAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*account.Account, error) {
	for _, a := range r.byUsername {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, apperror.NewNotFound("Account", id.String())
}
func (r *memAccountRepo) FindByUsername(_ context.Context, username string) (*account.Account, error) {
	if a, ok := r.byUsername[username]; ok {
		return a, nil
	}
	return nil, apperror.NewNotFound("Account", username)
}
func (r *memAccountRepo) UpdateLastLogin(context.Context, uuid.UUID, time.Time) error { return nil }

type memHeroRepo struct{ active *hero.Hero }

func (r *memHeroRepo) Save(_ context.Context, h *hero.Hero) error   { r.active = h; return nil }
func (r *memHeroRepo) Update(_ context.Context, h *hero.Hero) error { r.active = h; return nil }
func (r *memHeroRepo) FindActive(context.Context) (*hero.Hero, error) {
	if r.active == nil {
		return nil, apperror.NewNotFound("Hero", "active")
	}
	return r.active, nil
}

type memProjectRepo struct{ items []*project.Project }

func (r *memProjectRepo) Save(_ context.Context, p *project.Project) error {
	r.items = append(r.items, p)
	return nil
}
func (r *memProjectRepo) Update(context.Context, *project.Project) error { return nil }
func (r *memProjectRepo) Delete(context.Context, uuid.UUID) error        { return nil }
func (r *memProjectRepo) FindByID(context.Context, uuid.UUID) (*project.Project, error) {
	return nil, apperror.NewNotFound("Project", "")
}
func (r *memProjectRepo) ListActive(context.Context) ([]*project.Project, error) {
	return r.items, nil
}

type memExperienceRepo struct{ items []*experience.Experience }

func (r *memExperienceRepo) Save(_ context.Context, e *experience.Experience) error {
	r.items = append(r.items, e)
	return nil
}
func (r *memExperienceRepo) Update(context.Context, *experience.Experience) error { return nil }
func (r *memExperienceRepo) Delete(context.Context, uuid.UUID) error              { return nil }
func (r *memExperienceRepo) FindByID(context.Context, uuid.UUID) (*experience.Experience, error) {
	return nil, apperror.NewNotFound("Experience", "")
}
func (r *memExperienceRepo) ListActive(context.Context) ([]*experience.Experience, error) {
	return r.items, nil
}

type memEducationRepo struct{ items []*education.Education }

func (r *memEducationRepo) Save(_ context.Context, e *education.Education) error {
	r.items = append(r.items, e)
	return nil
}
func (r *memEducationRepo) Update(context.Context, *education.Education) error { return nil }
func (r *memEducationRepo) Delete(context.Context, uuid.UUID) error            { return nil }
func (r *memEducationRepo) FindByID(context.Context, uuid.UUID) (*education.Education, error) {
	return nil, apperror.NewNotFound("Education", "")
}
func (r *memEducationRepo) ListActive(context.Context) ([]*education.Education, error) {
	return r.items, nil
}

type memAchievementRepo struct{ items []*achievement.Achievement }

func (r *memAchievementRepo) Save(_ context.Context, a *achievement.Achievement) error {
	r.items = append(r.items, a)
	return nil
}
func (r *memAchievementRepo) Update(context.Context, *achievement.Achievement) error { return nil }
func (r *memAchievementRepo) Delete(context.Context, uuid.UUID) error                { return nil }
func (r *memAchievementRepo) FindByID(context.Context, uuid.UUID) (*achievement.Achievement, error) {
	return nil, apperror.NewNotFound("Achievement", "")
}
func (r *memAchievementRepo) ListActive(context.Context) ([]*achievement.Achievement, error) {
	return r.items, nil
}

type memLeadershipRepo struct{ items []*leadership.Leadership }

func (r *memLeadershipRepo) Save(_ context.Context, l *leadership.Leadership) error {
	r.items = append(r.items, l)
	return nil
}
func (r *memLeadershipRepo) Update(context.Context, *leadership.Leadership) error { return nil }
func (r *memLeadershipRepo) Delete(context.Context, uuid.UUID) error              { return nil }
func (r *memLeadershipRepo) FindByID(context.Context, uuid.UUID) (*leadership.Leadership, error) {
	return nil, apperror.NewNotFound("Leadership", "")
}
func (r *memLeadershipRepo) ListActive(context.Context) ([]*leadership.Leadership, error) {
	return r.items, nil
}

type memSkillRepo struct{ items []*skill.Category }

func (r *memSkillRepo) Save(_ context.Context, c *skill.Category) error {
	r.items = append(r.items, c)
	return nil
}
func (r *memSkillRepo) Update(context.Context, *skill.Category) error { return nil }
func (r *memSkillRepo) Delete(context.Context, uuid.UUID) error       { return nil }
func (r *memSkillRepo) FindByID(context.Context, uuid.UUID) (*skill.Category, error) {
	return nil, apperror.NewNotFound("Skill category", "")
}
func (r *memSkillRepo) ListActive(context.Context) ([]*skill.Category, error) {
	return r.items, nil
}

type world struct {
	accounts     *memAccountRepo
	heroes       *memHeroRepo
	projects     *memProjectRepo
	experiences  *memExperienceRepo
	educations   *memEducationRepo
	achievements *memAchievementRepo
	leaderships  *memLeadershipRepo
	skills       *memSkillRepo
}

func newWorld() *world {
	return &world{
		accounts:     &memAccountRepo{byUsername: make(map[string]*account.Account)},
		heroes:       &memHeroRepo{},
		projects:     &memProjectRepo{},
		experiences:  &memExperienceRepo{},
		educations:   &memEducationRepo{},
		achievements: &memAchievementRepo{},
		leaderships:  &memLeadershipRepo{},
		skills:       &memSkillRepo{},
	}
}

func (w *world) seeder() *SeedUseCase {
	return NewSeedUseCase(
		w.accounts, w.heroes, w.projects, w.experiences,
		w.educations, w.achievements, w.leaderships, w.skills,
		logger.NewNop(),
	)
}

func TestRun_PopulatesEmptyDatabase(t *testing.T) {
	w := newWorld()

	assert.NoError(t, w.seeder().Run(context.Background()))

	admin, err := w.accounts.FindByUsername(context.Background(), "admin")
	assert.NoError(t, err)
	assert.Equal(t, account.RoleAdmin, admin.Role)
	assert.True(t, admin.IsActive)
	assert.True(t, auth.CheckPasswordHash("admin123", admin.PasswordHash))

	h, err := w.heroes.FindActive(context.Background())
	assert.NoError(t, err)
	assert.True(t, h.IsActive)

	assert.NotEmpty(t, w.projects.items)
	assert.NotEmpty(t, w.experiences.items)
	assert.NotEmpty(t, w.educations.items)
	assert.NotEmpty(t, w.achievements.items)
	assert.NotEmpty(t, w.leaderships.items)
	assert.NotEmpty(t, w.skills.items)

	// Seeded content passes the same validation the write API enforces.
	for _, p := range w.projects.items {
		assert.NoError(t, p.Validate())
	}
	for _, e := range w.experiences.items {
		assert.NoError(t, e.Validate())
	}
	for _, e := range w.educations.items {
		assert.NoError(t, e.Validate())
	}
	for _, c := range w.skills.items {
		for i := range c.Skills {
			assert.NoError(t, c.Skills[i].Validate())
			assert.NotZero(t, c.Skills[i].ID)
		}
	}
}

func TestRun_SecondRunIsANoOp(t *testing.T) {
	w := newWorld()

	assert.NoError(t, w.seeder().Run(context.Background()))

	adminBefore, _ := w.accounts.FindByUsername(context.Background(), "admin")
	projectCount := len(w.projects.items)
	skillCount := len(w.skills.items)

	assert.NoError(t, w.seeder().Run(context.Background()))

	adminAfter, _ := w.accounts.FindByUsername(context.Background(), "admin")
	assert.Equal(t, adminBefore.ID, adminAfter.ID, "existing admin must not be replaced")
	assert.Equal(t, projectCount, len(w.projects.items))
	assert.Equal(t, skillCount, len(w.skills.items))
	assert.Equal(t, len(w.experiences.items), len(starterExperience()))
	assert.Equal(t, len(w.educations.items), len(starterEducation()))
	assert.Equal(t, len(w.achievements.items), len(starterAchievements()))
	assert.Equal(t, len(w.leaderships.items), len(starterLeadership()))
}
