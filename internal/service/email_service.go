package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// emailPattern is the same permissive local@domain.tld shape the registration
// form enforces client-side.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail reports whether the address looks deliverable.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// EmailService delivers verification codes.
type EmailService interface {
	SendVerificationCode(ctx context.Context, toEmail, username, code, idempotencyKey string) error
}

// NoopEmailService logs instead of sending; used in local development.
type NoopEmailService struct{}

func (s *NoopEmailService) SendVerificationCode(ctx context.Context, toEmail, username, code, idempotencyKey string) error {
	log.Printf("[EmailService] noop send verification code to=%s", toEmail)
	return nil
}

// ResendEmailService sends verification emails via the Resend REST API.
type ResendEmailService struct {
	from   string
	client *resend.Client
}

// NewResendEmailService creates the Resend transport. Missing credentials are
// a startup error, never a per-request one.
func NewResendEmailService(apiKey, from string) (*ResendEmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}
	if from == "" {
		return nil, fmt.Errorf("email from address is required")
	}
	return &ResendEmailService{
		from:   from,
		client: resend.NewClient(apiKey),
	}, nil
}

// SendVerificationCode delivers the registration code. The attempt either
// succeeds or returns an error; the caller must not persist any registration
// state on failure.
func (s *ResendEmailService) SendVerificationCode(ctx context.Context, toEmail, username, code, idempotencyKey string) error {
	if toEmail == "" || code == "" {
		return fmt.Errorf("toEmail and code are required")
	}
	if !IsValidEmail(toEmail) {
		return fmt.Errorf("invalid email format: %s", toEmail)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Labour Ease <%s>", s.from),
		To:      []string{toEmail},
		Subject: "Labour Ease - Account Verification",
		Text: fmt.Sprintf(
			"Hello %s,\n\nYour verification code for Labour Ease is: %s\n\nPlease use this code to complete your registration. It expires in 10 minutes.\n\nIf you did not request this verification, please ignore this email.\n\nBest regards,\nLabour Ease Team\n",
			username, code),
		Html: fmt.Sprintf(
			"<p>Hello %s,</p><p>Your verification code for Labour Ease is:</p><p style=\"font-size:24px;font-weight:bold;letter-spacing:5px\">%s</p><p>Please use this code to complete your registration. It expires in 10 minutes.</p><p>If you did not request this verification, please ignore this email.</p><p>Best regards,<br>Labour Ease Team</p>",
			username, code),
	}

	options := &resend.SendEmailOptions{}
	if strings.TrimSpace(idempotencyKey) != "" {
		options.IdempotencyKey = strings.TrimSpace(idempotencyKey)
	}

	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		_, err := s.client.Emails.SendWithOptions(ctx, params, options)
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
