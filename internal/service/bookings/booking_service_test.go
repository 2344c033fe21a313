package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/finestevents/backend/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListDatesByStatus(ctx context.Context, status domain.BookingStatus) ([]string, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetBlockedDates(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCache) SetBlockedDates(ctx context.Context, dates []string) error {
	args := m.Called(ctx, dates)
	return args.Error(0)
}

func (m *MockCache) InvalidateBlockedDates(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Name:      "Priya Sharma",
		Email:     "priya@example.com",
		EventType: "Wedding",
		Guests:    100,
		Location:  "Mumbai",
		Decor:     "Premium",
		Date:      "2026-11-20",
	}
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}

	service := &BookingService{
		bookings: mockRepo,
		producer: mockProducer,
		topic:    "notifications",
		log:      zerolog.Nop(),
	}

	ctx := context.Background()
	input := validInput()

	mockRepo.On("ListDatesByStatus", ctx, domain.BookingStatusAccepted).Return([]string{}, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", mock.Anything, mock.Anything).Return(nil).Once()

	booking, err := service.CreateBooking(ctx, input)

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, input.Date, booking.Date)
	assert.NotEmpty(t, booking.ID)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_CreateBooking_ValidationErrors(t *testing.T) {
	service := &BookingService{log: zerolog.Nop()}
	ctx := context.Background()

	testCases := []struct {
		name        string
		mutate      func(*CreateBookingInput)
		expectedErr string
	}{
		{
			name:        "Empty name",
			mutate:      func(in *CreateBookingInput) { in.Name = "" },
			expectedErr: "name is required",
		},
		{
			name:        "Bad email",
			mutate:      func(in *CreateBookingInput) { in.Email = "not-an-address" },
			expectedErr: "email is invalid",
		},
		{
			name:        "Zero guests",
			mutate:      func(in *CreateBookingInput) { in.Guests = 0 },
			expectedErr: "guests must be at least 1",
		},
		{
			name:        "Bad date format",
			mutate:      func(in *CreateBookingInput) { in.Date = "20/11/2026" },
			expectedErr: "date must be YYYY-MM-DD",
		},
		{
			name:        "Empty decor",
			mutate:      func(in *CreateBookingInput) { in.Decor = "" },
			expectedErr: "decor is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)
			booking, err := service.CreateBooking(ctx, input)
			assert.Error(t, err)
			assert.Nil(t, booking)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestBookingService_CreateBooking_DateBlocked(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := &BookingService{
		bookings: mockRepo,
		log:      zerolog.Nop(),
	}

	ctx := context.Background()
	input := validInput()

	mockRepo.On("ListDatesByStatus", ctx, domain.BookingStatusAccepted).Return([]string{"2026-11-20"}, nil).Once()

	booking, err := service.CreateBooking(ctx, input)

	assert.ErrorIs(t, err, domain.ErrDateBlocked)
	assert.Nil(t, booking)
	// Nothing is persisted when the date is taken.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_CreateBooking_PendingDatesDoNotBlock(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := &BookingService{
		bookings: mockRepo,
		log:      zerolog.Nop(),
	}

	ctx := context.Background()

	// Two requests for the same date while no booking is accepted yet: both go
	// through, the date only closes on accept.
	mockRepo.On("ListDatesByStatus", ctx, domain.BookingStatusAccepted).Return([]string{}, nil).Twice()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Twice()

	first, err := service.CreateBooking(ctx, validInput())
	assert.NoError(t, err)

	second := validInput()
	second.Name = "Rahul Mehta"
	second.Email = "rahul@example.com"
	other, err := service.CreateBooking(ctx, second)
	assert.NoError(t, err)

	assert.Equal(t, first.Date, other.Date)
	assert.NotEqual(t, first.ID, other.ID)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_SetStatus_Accept(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}
	mockProducer := &MockProducer{}

	service := &BookingService{
		bookings: mockRepo,
		cache:    mockCache,
		producer: mockProducer,
		topic:    "notifications",
		log:      zerolog.Nop(),
	}

	ctx := context.Background()
	pending := &domain.Booking{ID: "b1", Date: "2026-11-20", Status: domain.BookingStatusPending}
	accepted := &domain.Booking{ID: "b1", Date: "2026-11-20", Status: domain.BookingStatusAccepted}

	mockRepo.On("GetByID", ctx, "b1").Return(pending, nil).Once()
	mockRepo.On("UpdateStatus", ctx, "b1", domain.BookingStatusAccepted).Return(accepted, nil).Once()
	mockCache.On("InvalidateBlockedDates", ctx).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", "b1", mock.Anything).Return(nil).Once()

	updated, err := service.SetStatus(ctx, "b1", domain.BookingStatusAccepted)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, updated.Status)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_SetStatus_InvalidStatus(t *testing.T) {
	service := &BookingService{log: zerolog.Nop()}

	updated, err := service.SetStatus(context.Background(), "b1", domain.BookingStatusPending)

	assert.Error(t, err)
	assert.Nil(t, updated)
	assert.Contains(t, err.Error(), "accepted or rejected")
}

func TestBookingService_SetStatus_NotFound(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := &BookingService{
		bookings: mockRepo,
		log:      zerolog.Nop(),
	}

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, "missing").Return(nil, domain.ErrNotFound).Once()

	updated, err := service.SetStatus(ctx, "missing", domain.BookingStatusRejected)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, updated)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_SetStatus_GuardRejectsSecondAccept(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := &BookingService{
		bookings:    mockRepo,
		guardAccept: true,
		log:         zerolog.Nop(),
	}

	ctx := context.Background()
	pending := &domain.Booking{ID: "b2", Date: "2026-11-20", Status: domain.BookingStatusPending}

	mockRepo.On("GetByID", ctx, "b2").Return(pending, nil).Once()
	mockRepo.On("ListDatesByStatus", ctx, domain.BookingStatusAccepted).Return([]string{"2026-11-20"}, nil).Once()

	updated, err := service.SetStatus(ctx, "b2", domain.BookingStatusAccepted)

	assert.ErrorIs(t, err, domain.ErrDateBlocked)
	assert.Nil(t, updated)
	mockRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_SetStatus_NoGuardAllowsSecondAccept(t *testing.T) {
	mockRepo := &MockBookingRepository{}

	service := &BookingService{
		bookings: mockRepo,
		log:      zerolog.Nop(),
	}

	ctx := context.Background()
	pending := &domain.Booking{ID: "b2", Date: "2026-11-20", Status: domain.BookingStatusPending}
	accepted := &domain.Booking{ID: "b2", Date: "2026-11-20", Status: domain.BookingStatusAccepted}

	mockRepo.On("GetByID", ctx, "b2").Return(pending, nil).Once()
	mockRepo.On("UpdateStatus", ctx, "b2", domain.BookingStatusAccepted).Return(accepted, nil).Once()

	updated, err := service.SetStatus(ctx, "b2", domain.BookingStatusAccepted)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingStatusAccepted, updated.Status)
	mockRepo.AssertNotCalled(t, "ListDatesByStatus", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestBookingService_BlockedDates_CacheHit(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}

	service := &BookingService{
		bookings: mockRepo,
		cache:    mockCache,
		log:      zerolog.Nop(),
	}

	ctx := context.Background()
	mockCache.On("GetBlockedDates", ctx).Return([]string{"2026-12-05"}, nil).Once()

	dates, err := service.BlockedDates(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"2026-12-05"}, dates)
	mockRepo.AssertNotCalled(t, "ListDatesByStatus", mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestBookingService_BlockedDates_CacheMissFillsCache(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}

	service := &BookingService{
		bookings: mockRepo,
		cache:    mockCache,
		log:      zerolog.Nop(),
	}

	ctx := context.Background()
	mockCache.On("GetBlockedDates", ctx).Return(nil, nil).Once()
	mockRepo.On("ListDatesByStatus", ctx, domain.BookingStatusAccepted).Return([]string{"2026-12-05", "2026-12-24"}, nil).Once()
	mockCache.On("SetBlockedDates", ctx, []string{"2026-12-05", "2026-12-24"}).Return(nil).Once()

	dates, err := service.BlockedDates(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"2026-12-05", "2026-12-24"}, dates)
	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestBookingService_BlockedDates_CacheErrorFallsThrough(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockCache := &MockCache{}

	service := &BookingService{
		bookings: mockRepo,
		cache:    mockCache,
		log:      zerolog.Nop(),
	}

	ctx := context.Background()
	mockCache.On("GetBlockedDates", ctx).Return(nil, errors.New("redis down")).Once()
	mockRepo.On("ListDatesByStatus", ctx, domain.BookingStatusAccepted).Return([]string{"2027-01-10"}, nil).Once()
	mockCache.On("SetBlockedDates", ctx, []string{"2027-01-10"}).Return(nil).Once()

	dates, err := service.BlockedDates(ctx)

	assert.NoError(t, err)
	assert.Equal(t, []string{"2027-01-10"}, dates)
	mockRepo.AssertExpectations(t)
}
