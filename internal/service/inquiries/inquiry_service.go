package inquiries

import (
	"context"
	"errors"
	"net/mail"

	"github.com/finestevents/backend/internal/domain"
	"github.com/finestevents/backend/internal/kafka"
	"github.com/finestevents/backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type InquiryUseCase interface {
	Create(ctx context.Context, input CreateInquiryInput) (*domain.Inquiry, error)
	List(ctx context.Context) ([]domain.Inquiry, error)
	MarkRead(ctx context.Context, id string) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateInquiryInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	EventType string `json:"eventType"`
	Message   string `json:"message"`
}

type InquiryService struct {
	inquiries repository.InquiryRepository
	producer  Producer
	topic     string
	log       zerolog.Logger
}

type InquiryServiceOption func(*InquiryService)

func WithProducer(producer Producer, topic string) InquiryServiceOption {
	return func(s *InquiryService) {
		s.producer = producer
		s.topic = topic
	}
}

func NewInquiryService(inquiries repository.InquiryRepository, log zerolog.Logger, opts ...InquiryServiceOption) *InquiryService {
	service := &InquiryService{inquiries: inquiries, log: log}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *InquiryService) Create(ctx context.Context, input CreateInquiryInput) (*domain.Inquiry, error) {
	if input.Name == "" {
		return nil, errors.New("name is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, errors.New("email is invalid")
	}
	if input.EventType == "" {
		return nil, errors.New("event type is required")
	}
	if len(input.Message) < 10 {
		return nil, errors.New("message must be at least 10 characters")
	}

	inquiry := &domain.Inquiry{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Email:     input.Email,
		EventType: input.EventType,
		Message:   input.Message,
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	if s.producer != nil && s.topic != "" {
		event := kafka.NotificationEvent{
			Type:      "inquiry_received",
			ID:        inquiry.ID,
			Name:      inquiry.Name,
			Email:     inquiry.Email,
			EventType: inquiry.EventType,
			Message:   inquiry.Message,
			CreatedAt: inquiry.CreatedAt,
		}
		if err := s.producer.Publish(ctx, s.topic, inquiry.ID, event); err != nil {
			s.log.Warn().Err(err).Str("inquiry", inquiry.ID).Msg("failed to publish inquiry notification")
		}
	}
	return inquiry, nil
}

func (s *InquiryService) List(ctx context.Context) ([]domain.Inquiry, error) {
	return s.inquiries.List(ctx)
}

// MarkRead is idempotent; marking an already-read inquiry succeeds.
func (s *InquiryService) MarkRead(ctx context.Context, id string) error {
	return s.inquiries.MarkRead(ctx, id)
}

var _ InquiryUseCase = (*InquiryService)(nil)
