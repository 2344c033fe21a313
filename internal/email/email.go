package email

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/finestevents/backend/config"
	"github.com/finestevents/backend/internal/kafka"
	"github.com/rs/zerolog"
)

// Sender turns notification events into outbound mail. When SMTP is not
// configured it logs the message instead, so the worker stays useful in
// environments without a mail relay.
type Sender struct {
	cfg config.SMTPConfig
	log zerolog.Logger
}

func NewSender(cfg config.SMTPConfig, log zerolog.Logger) *Sender {
	return &Sender{cfg: cfg, log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.NotificationEvent) error {
	to, subject, body := s.compose(event)
	if to == "" {
		s.log.Warn().Str("type", event.Type).Msg("notification has no recipient, skipping")
		return nil
	}

	if s.cfg.Host == "" {
		s.log.Info().
			Str("type", event.Type).
			Str("to", to).
			Str("subject", subject).
			Msg("smtp not configured, logging notification instead")
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.cfg.From, to, subject, body)

	auth := smtp.PlainAuth("", s.cfg.From, s.cfg.Password, s.cfg.Host)
	if err := smtp.SendMail(s.cfg.Address(), auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	s.log.Info().Str("type", event.Type).Str("to", to).Msg("notification email sent")
	return nil
}

func (s *Sender) compose(event kafka.NotificationEvent) (to, subject, body string) {
	switch event.Type {
	case "inquiry_received":
		to = s.cfg.OwnerEmail
		subject = fmt.Sprintf("New inquiry from %s", event.Name)
		body = fmt.Sprintf("Name: %s\nEmail: %s\nEvent type: %s\n\n%s",
			event.Name, event.Email, event.EventType, event.Message)
	case "booking_created":
		to = s.cfg.OwnerEmail
		subject = fmt.Sprintf("New booking request for %s", event.Date)
		body = fmt.Sprintf("%s (%s) requested a %s on %s.",
			event.Name, event.Email, event.EventType, event.Date)
	case "booking_accepted":
		to = event.Email
		subject = "Your booking is confirmed"
		body = fmt.Sprintf("Hi %s,\n\nYour %s on %s is confirmed. We will be in touch with next steps.",
			event.Name, event.EventType, event.Date)
	case "booking_rejected":
		to = event.Email
		subject = "Update on your booking request"
		body = fmt.Sprintf("Hi %s,\n\nUnfortunately we cannot take your %s on %s. Please pick another date and we will make it work.",
			event.Name, event.EventType, event.Date)
	}
	return to, subject, body
}
