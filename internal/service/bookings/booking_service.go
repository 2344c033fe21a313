package bookings

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/finestevents/backend/internal/domain"
	"github.com/finestevents/backend/internal/kafka"
	"github.com/finestevents/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]domain.Booking, error)
	SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
	BlockedDates(ctx context.Context) ([]string, error)
}

type Cache interface {
	GetBlockedDates(ctx context.Context) ([]string, error)
	SetBlockedDates(ctx context.Context, dates []string) error
	InvalidateBlockedDates(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings    repository.BookingRepository
	cache       Cache
	producer    Producer
	topic       string
	guardAccept bool
	log         zerolog.Logger
}

type CreateBookingInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	EventType string `json:"eventType"`
	Guests    int    `json:"guests"`
	Location  string `json:"location"`
	Decor     string `json:"decor"`
	Date      string `json:"date"`
}

type BookingServiceOption func(*BookingService)

// WithAcceptGuard re-checks the blocked-date set before accepting a booking.
// The historical behavior is no guard: two pending requests for one date can
// both be accepted. The toggle exists so the business can opt in.
func WithAcceptGuard() BookingServiceOption {
	return func(s *BookingService) {
		s.guardAccept = true
	}
}

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, cache Cache, log zerolog.Logger, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings: bookings,
		cache:    cache,
		log:      log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateBooking persists a pending booking unless the date already belongs to
// an accepted one. Pending bookings on the same date do not block each other;
// several customers may ask for a date before the admin decides.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	if input.Name == "" {
		return nil, errors.New("name is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, errors.New("email is invalid")
	}
	if input.EventType == "" {
		return nil, errors.New("event type is required")
	}
	if input.Guests < 1 {
		return nil, errors.New("guests must be at least 1")
	}
	if input.Location == "" {
		return nil, errors.New("location is required")
	}
	if input.Decor == "" {
		return nil, errors.New("decor is required")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, errors.New("date must be YYYY-MM-DD")
	}

	blocked, err := s.BlockedDates(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range blocked {
		if d == input.Date {
			return nil, domain.ErrDateBlocked
		}
	}

	booking := &domain.Booking{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		EventType: input.EventType,
		Guests:    input.Guests,
		Location:  input.Location,
		Decor:     input.Decor,
		Date:      input.Date,
		Status:    domain.BookingStatusPending,
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.publish(ctx, "booking_created", booking)
	return booking, nil
}

func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

// SetStatus applies an admin decision. With the accept guard enabled a second
// accept for an already-blocked date fails with ErrDateBlocked; without it the
// transition is applied as-is.
func (s *BookingService) SetStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.IsDecision() {
		return nil, errors.New("status must be accepted or rejected")
	}

	current, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.guardAccept && status == domain.BookingStatusAccepted && current.Status != domain.BookingStatusAccepted {
		blocked, err := s.bookings.ListDatesByStatus(ctx, domain.BookingStatusAccepted)
		if err != nil {
			return nil, err
		}
		for _, d := range blocked {
			if d == current.Date {
				return nil, domain.ErrDateBlocked
			}
		}
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateBlockedDates(ctx); err != nil {
			s.log.Warn().Err(err).Msg("failed to invalidate blocked-dates cache")
		}
	}

	s.publish(ctx, "booking_"+string(status), updated)
	return updated, nil
}

// BlockedDates returns the dates of accepted bookings, from cache when warm.
func (s *BookingService) BlockedDates(ctx context.Context) ([]string, error) {
	if s.cache != nil {
		dates, err := s.cache.GetBlockedDates(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("blocked-dates cache read failed")
		} else if dates != nil {
			return dates, nil
		}
	}

	dates, err := s.bookings.ListDatesByStatus(ctx, domain.BookingStatusAccepted)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetBlockedDates(ctx, dates); err != nil {
			s.log.Warn().Err(err).Msg("blocked-dates cache write failed")
		}
	}
	return dates, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if s.producer == nil || s.topic == "" {
		return
	}
	event := kafka.NotificationEvent{
		Type:      eventType,
		ID:        booking.ID,
		Name:      booking.Name,
		Email:     booking.Email,
		EventType: booking.EventType,
		Date:      booking.Date,
		CreatedAt: booking.CreatedAt,
	}
	if err := s.producer.Publish(ctx, s.topic, booking.ID, event); err != nil {
		s.log.Warn().Err(err).Str("type", eventType).Str("booking", booking.ID).Msg("failed to publish notification event")
	}
}

var _ BookingUseCase = (*BookingService)(nil)
