package testimonial

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fitsphere/internal/domain"
	"fitsphere/internal/repository"
)

type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) Create(ctx context.Context, t *domain.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestimonialRepository) List(ctx context.Context, f repository.TestimonialFilter) ([]domain.Testimonial, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]domain.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) Approve(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTestimonialRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, t domain.NotificationType, message string) {
	m.Called(ctx, t, message)
}

func newFixtures() (*Service, *MockTestimonialRepository, *MockUserReader, *MockNotifier) {
	testimonials := new(MockTestimonialRepository)
	users := new(MockUserReader)
	notifier := new(MockNotifier)
	return NewService(testimonials, users, notifier), testimonials, users, notifier
}

func TestCreate_StartsUnapproved(t *testing.T) {
	svc, testimonials, users, notifier := newFixtures()

	users.On("GetByID", mock.Anything, "u1").Return(&domain.User{
		ID: "u1", Name: "Sarah Johnson", Email: "sarah@example.com",
	}, nil)
	testimonials.On("Create", mock.Anything, mock.MatchedBy(func(tm *domain.Testimonial) bool {
		return !tm.IsApproved && tm.UserName == "Sarah Johnson" && tm.Rating == 5
	})).Return(nil)
	notifier.On("Notify", mock.Anything, domain.NotifTestimonial, mock.Anything).Return()

	tm, err := svc.Create(context.Background(), "u1", CreateTestimonialRequest{
		Rating:      5,
		Comment:     "The yoga program changed my mornings.",
		ServiceType: "program",
	})

	assert.NoError(t, err)
	assert.False(t, tm.IsApproved)
	notifier.AssertCalled(t, "Notify", mock.Anything, domain.NotifTestimonial, mock.Anything)
}

func TestCreate_RatingOutOfRange(t *testing.T) {
	svc, testimonials, _, _ := newFixtures()

	_, err := svc.Create(context.Background(), "u1", CreateTestimonialRequest{
		Rating:  6,
		Comment: "too enthusiastic",
	})

	assert.ErrorIs(t, err, ErrValidation)
	testimonials.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestApprove_NotFound(t *testing.T) {
	svc, testimonials, _, _ := newFixtures()

	testimonials.On("Approve", mock.Anything, "missing").Return(gorm.ErrRecordNotFound)

	err := svc.Approve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_PassesFilter(t *testing.T) {
	svc, testimonials, _, _ := newFixtures()

	testimonials.On("List", mock.Anything, repository.TestimonialFilter{
		ApprovedOnly: true,
		ServiceType:  "program",
		Limit:        20,
	}).Return([]domain.Testimonial{{ID: "t1", IsApproved: true}}, nil)

	out, err := svc.List(context.Background(), repository.TestimonialFilter{
		ApprovedOnly: true,
		ServiceType:  "program",
		Limit:        20,
	})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
}
