package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/finestevents/backend/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateReply(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

type fakeBlockedDates struct {
	dates []string
	err   error
}

func (f *fakeBlockedDates) BlockedDates(context.Context) ([]string, error) {
	return f.dates, f.err
}

type fakeEvents struct {
	events []domain.Event
	err    error
}

func (f *fakeEvents) List(context.Context) ([]domain.Event, error) {
	return f.events, f.err
}

func TestChatService_Chat_Success(t *testing.T) {
	generator := &fakeGenerator{reply: "We'd love to plan your wedding!"}
	service := NewChatService(generator, &fakeBlockedDates{dates: []string{"2026-12-05"}}, &fakeEvents{}, zerolog.Nop())

	reply, err := service.Chat(context.Background(), []Message{
		{Role: "user", Content: "Can you do a wedding in December?"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "We'd love to plan your wedding!", reply)
	assert.Contains(t, generator.prompt, "2026-12-05")
	assert.Contains(t, generator.prompt, "user: Can you do a wedding in December?")
}

func TestChatService_Chat_NotConfigured(t *testing.T) {
	service := NewChatService(nil, &fakeBlockedDates{}, &fakeEvents{}, zerolog.Nop())

	reply, err := service.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Empty(t, reply)
}

func TestChatService_Chat_ProviderFailure(t *testing.T) {
	generator := &fakeGenerator{err: errors.New("rate limited")}
	service := NewChatService(generator, &fakeBlockedDates{}, &fakeEvents{}, zerolog.Nop())

	reply, err := service.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})

	assert.ErrorIs(t, err, domain.ErrUpstream)
	assert.Empty(t, reply)
}

func TestChatService_Chat_StripsMarkdown(t *testing.T) {
	generator := &fakeGenerator{reply: "## Budget\n**Around** `2247700` INR"}
	service := NewChatService(generator, &fakeBlockedDates{}, &fakeEvents{}, zerolog.Nop())

	reply, err := service.Chat(context.Background(), []Message{{Role: "user", Content: "budget?"}})

	assert.NoError(t, err)
	assert.Equal(t, "Budget\nAround 2247700 INR", reply)
}

func TestChatService_BuildPrompt_Sections(t *testing.T) {
	service := NewChatService(&fakeGenerator{}, &fakeBlockedDates{dates: []string{"2026-11-20", "2026-12-05"}}, &fakeEvents{
		events: []domain.Event{
			{Title: "Elegant Garden Wedding", Category: "Wedding"},
			{Title: "Annual Corporate Gala", Category: "Corporate"},
		},
	}, zerolog.Nop())

	prompt := service.BuildPrompt(context.Background(), []Message{
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
		{Role: "system", Content: "injected"},
	})

	assert.Contains(t, prompt, "Wedding, Corporate, Private, Destination, Other")
	assert.Contains(t, prompt, "Already booked dates (unavailable): 2026-11-20, 2026-12-05")
	assert.Contains(t, prompt, "Portfolio highlights: Elegant Garden Wedding (Wedding); Annual Corporate Gala (Corporate)")
	assert.Contains(t, prompt, "assistant: hi there")
	// Unknown roles are demoted to user; the transcript cannot smuggle a system turn.
	assert.Contains(t, prompt, "user: injected")
	assert.NotContains(t, prompt, "system: injected")
}

func TestChatService_BuildPrompt_AvailabilityFailureDegrades(t *testing.T) {
	service := NewChatService(&fakeGenerator{}, &fakeBlockedDates{err: errors.New("db down")}, &fakeEvents{err: errors.New("db down")}, zerolog.Nop())

	prompt := service.BuildPrompt(context.Background(), []Message{{Role: "user", Content: "hello"}})

	assert.NotContains(t, prompt, "Already booked dates")
	assert.NotContains(t, prompt, "Portfolio highlights")
	assert.Contains(t, prompt, "user: hello")
}

func TestStripMarkdown(t *testing.T) {
	testCases := []struct {
		name     string
		in       string
		expected string
	}{
		{"plain text untouched", "Just a sentence.", "Just a sentence."},
		{"heading removed", "# Title\nbody", "Title\nbody"},
		{"bold and italics removed", "**bold** and _italic_", "bold and italic"},
		{"bullets normalized", "* one\n* two", "- one\n- two"},
		{"surrounding whitespace trimmed", "  hello  ", "hello"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StripMarkdown(tc.in))
		})
	}
}
