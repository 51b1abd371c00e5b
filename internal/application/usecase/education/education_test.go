package education

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type fakeEducationRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*education.Education
}

func newFakeEducationRepo() *fakeEducationRepo {
	return &fakeEducationRepo{records: make(map[uuid.UUID]*education.Education)}
}

func (r *fakeEducationRepo) Save(_ context.Context, e *education.Education) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *e
	r.records[e.ID] = &copied
	return nil
}

func (r *fakeEducationRepo) Update(_ context.Context, e *education.Education) error {
	return r.Save(context.Background(), e)
}

func (r *fakeEducationRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, id)
	return nil
}

func (r *fakeEducationRepo) FindByID(_ context.Context, id uuid.UUID) (*education.Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.records[id]
	if !ok {
		return nil, apperror.NewNotFound("Education", id.String())
	}
	copied := *e
	return &copied, nil
}

func (r *fakeEducationRepo) ListActive(_ context.Context) ([]*education.Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*education.Education
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

func newUseCaseForTest() *EducationUseCase {
	return NewEducationUseCase(newFakeEducationRepo(), nopPublisher{}, logger.NewNop())
}

func validInput() CreateEducationInput {
	return CreateEducationInput{
		Institution: "HCMUT",
		Degree:      "B.Eng.",
		Field:       "Computer Science",
		StartDate:   time.Date(2018, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2022, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate_EndMustFollowStart(t *testing.T) {
	uc := newUseCaseForTest()

	in := validInput()
	in.EndDate = in.StartDate.AddDate(0, 0, -1)
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	in.EndDate = in.StartDate
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput, "equal dates are not a valid interval")
}

func TestCreate_GPABounds(t *testing.T) {
	uc := newUseCaseForTest()

	bad := 11.0
	in := validInput()
	in.GPA = &bad
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)

	good := 8.4
	in.GPA = &good
	e, err := uc.Create(context.Background(), in)
	assert.NoError(t, err)
	assert.Equal(t, 8.4, *e.GPA)
}

func TestCreate_PercentageBounds(t *testing.T) {
	uc := newUseCaseForTest()

	bad := 101.0
	in := validInput()
	in.Percentage = &bad
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}

func TestUpdate_RevalidatesDateOrder(t *testing.T) {
	uc := newUseCaseForTest()

	e, err := uc.Create(context.Background(), validInput())
	assert.NoError(t, err)

	badEnd := time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err = uc.Update(context.Background(), UpdateEducationInput{
		EducationID: e.ID,
		EndDate:     &badEnd,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
