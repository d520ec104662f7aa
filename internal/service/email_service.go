package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// EmailService отправляет уведомления о назначении викторин.
type EmailService interface {
	SendAssignmentNotice(ctx context.Context, toEmail, quizTitle string, startTime, endTime time.Time) error
}

// NoopEmailService используется, когда отправка уведомлений не настроена.
type NoopEmailService struct{}

func (s *NoopEmailService) SendAssignmentNotice(ctx context.Context, toEmail, quizTitle string, startTime, endTime time.Time) error {
	log.Printf("[EmailService] noop send assignment notice to=%s quiz=%q", toEmail, quizTitle)
	return nil
}

// ResendEmailService отправляет письма через Resend REST API.
type ResendEmailService struct {
	from   string
	client *resend.Client
}

func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

func (s *ResendEmailService) SendAssignmentNotice(ctx context.Context, toEmail, quizTitle string, startTime, endTime time.Time) error {
	if toEmail == "" || quizTitle == "" {
		return fmt.Errorf("toEmail and quizTitle are required")
	}

	window := fmt.Sprintf("%s — %s", startTime.Format("02.01.2006 15:04"), endTime.Format("02.01.2006 15:04"))
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{toEmail},
		Subject: fmt.Sprintf("Вам назначена викторина: %s", quizTitle),
		Text:    fmt.Sprintf("Вам назначена викторина %q. Окно прохождения: %s.", quizTitle, window),
		Html:    fmt.Sprintf("<p>Вам назначена викторина <strong>%s</strong>.</p><p>Окно прохождения: %s.</p>", quizTitle, window),
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithContext(ctx, params)
		if err == nil {
			return nil
		}
		lastErr = err

		if wait, ok := resendRetryDelay(err, attempt); ok {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
				continue
			}
		}

		return fmt.Errorf("resend send failed: %w", err)
	}

	return fmt.Errorf("resend send failed after retries: %w", lastErr)
}

func resendRetryDelay(err error, attempt int) (time.Duration, bool) {
	var rateLimitErr *resend.RateLimitError
	if errors.As(err, &rateLimitErr) {
		if seconds, convErr := strconv.Atoi(strings.TrimSpace(rateLimitErr.RetryAfter)); convErr == nil && seconds > 0 {
			if seconds > 30 {
				seconds = 30
			}
			return time.Duration(seconds) * time.Second, true
		}
		return time.Duration(attempt+1) * time.Second, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "timeout") || strings.Contains(msg, "temporar") {
		return time.Duration(attempt+1) * 500 * time.Millisecond, true
	}

	return 0, false
}
