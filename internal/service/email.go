package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/resend/resend-go/v2"
)

// Notifier delivers the transactional emails of the core.
// Every failure wraps ErrDeliveryFailed.
type Notifier interface {
	SendTokenEmail(ctx context.Context, to, username, token string) error
	SendBookingConfirmation(ctx context.Context, to, room, date, interval string) error
}

type EmailService struct {
	client      *resend.Client
	fromEmail   string
	appName     string
	tokenExpiry time.Duration
	isDev       bool
}

func NewEmailService(apiKey, fromEmail, appName string, tokenExpiry time.Duration, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:      client,
		fromEmail:   fromEmail,
		appName:     appName,
		tokenExpiry: tokenExpiry,
		isDev:       isDev,
	}
}

func (s *EmailService) SendTokenEmail(ctx context.Context, to, username, token string) error {
	subject, body := tokenEmailTemplate(username, token, s.tokenExpiry, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "reset_token", "to", to, "subject", subject, "token", token)
		return nil
	}

	return s.send(ctx, "reset_token", to, subject, body)
}

func (s *EmailService) SendBookingConfirmation(ctx context.Context, to, room, date, interval string) error {
	subject, body := bookingConfirmationTemplate(room, date, interval, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "booking_confirmation", "to", to, "subject", subject, "room", room, "date", date, "interval", interval)
		return nil
	}

	return s.send(ctx, "booking_confirmation", to, subject, body)
}

func (s *EmailService) send(ctx context.Context, kind, to, subject, body string) error {
	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY): %w", ErrDeliveryFailed)
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("%w: %s email: %w", ErrDeliveryFailed, kind, err)
	}

	slog.Info("email sent", "type", kind, "to", to)
	return nil
}
