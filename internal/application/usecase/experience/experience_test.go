package experience

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type fakeExperienceRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*experience.Experience
}

func newFakeExperienceRepo() *fakeExperienceRepo {
	return &fakeExperienceRepo{records: make(map[uuid.UUID]*experience.Experience)}
}

func (r *fakeExperienceRepo) Save(_ context.Context, e *experience.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *e
	r.records[e.ID] = &copied
	return nil
}

func (r *fakeExperienceRepo) Update(_ context.Context, e *experience.Experience) error {
	return r.Save(context.Background(), e)
}

func (r *fakeExperienceRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return apperror.NewNotFound("Experience", id.String())
	}
	delete(r.records, id)
	return nil
}

func (r *fakeExperienceRepo) FindByID(_ context.Context, id uuid.UUID) (*experience.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.records[id]
	if !ok {
		return nil, apperror.NewNotFound("Experience", id.String())
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExperienceRepo) ListActive(_ context.Context) ([]*experience.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*experience.Experience
	for _, e := range r.records {
		if e.IsActive {
			copied := *e
			out = append(out, &copied)
		}
	}
	return out, nil
}

type nopPublisher struct{}

func (nopPublisher) PublishContentEvent(context.Context, service.ContentEvent) error { return nil }
func (nopPublisher) PublishMediaEvent(context.Context, service.MediaEvent) error     { return nil }

func newUseCaseForTest() (*ExperienceUseCase, *fakeExperienceRepo) {
	repo := newFakeExperienceRepo()
	return NewExperienceUseCase(repo, nopPublisher{}, logger.NewNop()), repo
}

func TestCreate_CurrentPositionDropsEndDate(t *testing.T) {
	uc, _ := newUseCaseForTest()

	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	e, err := uc.Create(context.Background(), CreateExperienceInput{
		Company:   "Lumen Pay",
		Position:  "Backend Engineer",
		StartDate: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
		Current:   true,
	})
	assert.NoError(t, err)
	assert.True(t, e.Current)
	assert.Nil(t, e.EndDate, "a current position must not carry an end date")
	assert.True(t, e.IsActive)
}

func TestCreate_EndBeforeStartRejected(t *testing.T) {
	uc, _ := newUseCaseForTest()

	end := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := uc.Create(context.Background(), CreateExperienceInput{
		Company:   "Lumen Pay",
		Position:  "Backend Engineer",
		StartDate: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdate_MergedRecordIsRevalidated(t *testing.T) {
	uc, _ := newUseCaseForTest()

	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	e, err := uc.Create(context.Background(), CreateExperienceInput{
		Company:   "Skyline Cloud",
		Position:  "Intern",
		StartDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	})
	assert.NoError(t, err)

	// Moving the start date past the stored end date must fail even though
	// the end date itself is untouched by this request.
	badStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.Update(context.Background(), UpdateExperienceInput{
		ExperienceID: e.ID,
		StartDate:    &badStart,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdate_ClearEndDate(t *testing.T) {
	uc, _ := newUseCaseForTest()

	end := time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC)
	e, err := uc.Create(context.Background(), CreateExperienceInput{
		Company:   "Skyline Cloud",
		Position:  "Intern",
		StartDate: time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   &end,
	})
	assert.NoError(t, err)

	current := true
	updated, err := uc.Update(context.Background(), UpdateExperienceInput{
		ExperienceID: e.ID,
		ClearEndDate: true,
		Current:      &current,
	})
	assert.NoError(t, err)
	assert.Nil(t, updated.EndDate)
	assert.True(t, updated.Current)
}

func TestGet_HiddenRecordReadsAsMissing(t *testing.T) {
	uc, repo := newUseCaseForTest()

	e, err := uc.Create(context.Background(), CreateExperienceInput{
		Company:   "Lumen Pay",
		Position:  "Backend Engineer",
		StartDate: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC),
		Current:   true,
	})
	assert.NoError(t, err)

	inactive := false
	_, err = uc.Update(context.Background(), UpdateExperienceInput{ExperienceID: e.ID, IsActive: &inactive})
	assert.NoError(t, err)

	_, err = uc.Get(context.Background(), e.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	// The record still exists for admin edits.
	stored, err := repo.FindByID(context.Background(), e.ID)
	assert.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestDelete_IsHard(t *testing.T) {
	uc, repo := newUseCaseForTest()

	e, err := uc.Create(context.Background(), CreateExperienceInput{
		Company:   "Lumen Pay",
		Position:  "Backend Engineer",
		StartDate: time.Date(2022, 7, 1, 0, 0, 0, 0, time.UTC),
		Current:   true,
	})
	assert.NoError(t, err)

	assert.NoError(t, uc.Delete(context.Background(), e.ID))

	_, err = repo.FindByID(context.Background(), e.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
