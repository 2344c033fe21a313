package events

import (
	"context"

	"github.com/finestevents/backend/internal/domain"
	"github.com/finestevents/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type EventUseCase interface {
	List(ctx context.Context) ([]domain.Event, error)
	ListFeatured(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Create(ctx context.Context, input EventInput) (*domain.Event, error)
	Update(ctx context.Context, id string, input EventInput) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Location    string `json:"location"`
	EventDate   string `json:"eventDate"`
	GuestCount  int    `json:"guestCount"`
	IsFeatured  bool   `json:"isFeatured"`
}

type EventService struct {
	events repository.EventRepository
	log    zerolog.Logger
}

func NewEventService(events repository.EventRepository, log zerolog.Logger) *EventService {
	return &EventService{events: events, log: log}
}

func (s *EventService) List(ctx context.Context) ([]domain.Event, error) {
	return s.events.List(ctx)
}

func (s *EventService) ListFeatured(ctx context.Context) ([]domain.Event, error) {
	return s.events.ListFeatured(ctx)
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, input EventInput) (*domain.Event, error) {
	event := &domain.Event{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Location:    input.Location,
		EventDate:   input.EventDate,
		GuestCount:  input.GuestCount,
		IsFeatured:  input.IsFeatured,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	s.log.Info().Str("event", event.ID).Str("title", event.Title).Msg("event created")
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, input EventInput) (*domain.Event, error) {
	event := &domain.Event{
		ID:          id,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		ImageURL:    input.ImageURL,
		Location:    input.Location,
		EventDate:   input.EventDate,
		GuestCount:  input.GuestCount,
		IsFeatured:  input.IsFeatured,
	}
	return s.events.Update(ctx, event)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("event", id).Msg("event deleted")
	return nil
}

var _ EventUseCase = (*EventService)(nil)
