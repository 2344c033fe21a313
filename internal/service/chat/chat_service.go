// Package chat assembles the assistant prompt and proxies it to the external
// text-generation provider. Conversation state lives entirely on the client;
// every turn resends the full history.
package chat

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/finestevents/backend/internal/domain"
	"github.com/finestevents/backend/internal/service/pricing"
	"github.com/rs/zerolog"
)

// ReplyGenerator is the capability boundary to the LLM provider; prompt
// construction stays testable without a live network call.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

type BlockedDatesLister interface {
	BlockedDates(ctx context.Context) ([]string, error)
}

type EventLister interface {
	List(ctx context.Context) ([]domain.Event, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatUseCase interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

const systemPreamble = `You are the planning assistant for Finest Events, a full-service event planning studio.
You help visitors estimate budgets, check date availability and understand our services.
Event types: %s.
Guest packages: %s guests.
Serviced locations: %s.
Decor options: %s.
Keep answers short, friendly and in plain text. If a visitor wants to book, point them to the booking form.`

type ChatService struct {
	generator ReplyGenerator
	bookings  BlockedDatesLister
	events    EventLister
	log       zerolog.Logger
}

func NewChatService(generator ReplyGenerator, bookings BlockedDatesLister, events EventLister, log zerolog.Logger) *ChatService {
	return &ChatService{generator: generator, bookings: bookings, events: events, log: log}
}

// Chat builds the prompt from static facts, live availability and the
// transcript, then returns the provider's reply with markdown stripped.
func (s *ChatService) Chat(ctx context.Context, messages []Message) (string, error) {
	if s.generator == nil {
		return "", fmt.Errorf("%w: chat is not configured", domain.ErrUpstream)
	}

	prompt := s.BuildPrompt(ctx, messages)
	reply, err := s.generator.GenerateReply(ctx, prompt)
	if err != nil {
		s.log.Error().Err(err).Msg("chat provider call failed")
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return StripMarkdown(reply), nil
}

// BuildPrompt is exported for tests; availability lookups that fail degrade
// to omitting the live sections rather than failing the chat turn.
func (s *ChatService) BuildPrompt(ctx context.Context, messages []Message) string {
	var b strings.Builder

	fmt.Fprintf(&b, systemPreamble,
		strings.Join(pricing.EventTypes(), ", "),
		joinInts(pricing.GuestPackages()),
		strings.Join(pricing.Locations(), ", "),
		strings.Join(pricing.DecorOptions(), ", "))
	b.WriteString("\n\n")

	if s.bookings != nil {
		if blocked, err := s.bookings.BlockedDates(ctx); err != nil {
			s.log.Warn().Err(err).Msg("blocked dates unavailable for prompt")
		} else if len(blocked) > 0 {
			b.WriteString("Already booked dates (unavailable): " + strings.Join(blocked, ", ") + "\n")
		} else {
			b.WriteString("No dates are blocked right now.\n")
		}
	}

	if s.events != nil {
		if events, err := s.events.List(ctx); err != nil {
			s.log.Warn().Err(err).Msg("event list unavailable for prompt")
		} else if len(events) > 0 {
			titles := make([]string, 0, len(events))
			for _, e := range events {
				titles = append(titles, fmt.Sprintf("%s (%s)", e.Title, e.Category))
			}
			b.WriteString("Portfolio highlights: " + strings.Join(titles, "; ") + "\n")
		}
	}

	b.WriteString("\nConversation so far:\n")
	for _, m := range messages {
		role := m.Role
		if role != "assistant" {
			role = "user"
		}
		b.WriteString(role + ": " + m.Content + "\n")
	}
	b.WriteString("assistant:")

	return b.String()
}

var (
	markdownHeading  = regexp.MustCompile(`(?m)^#{1,6}\s*`)
	markdownEmphasis = regexp.MustCompile(`(\*\*|__|\*|_|` + "`" + `)`)
	markdownBullet   = regexp.MustCompile(`(?m)^\s*[-*]\s+`)
)

// StripMarkdown removes the formatting artifacts providers tend to emit so
// the widget can render plain text.
func StripMarkdown(text string) string {
	text = markdownHeading.ReplaceAllString(text, "")
	text = markdownBullet.ReplaceAllString(text, "- ")
	text = markdownEmphasis.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

var _ ChatUseCase = (*ChatService)(nil)

func joinInts(values []int) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	return strings.Join(parts, "/")
}
