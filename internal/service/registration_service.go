package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	"github.com/yourusername/labourease-api/internal/domain/repository"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

// TokenIssuer signs session tokens for freshly verified accounts.
type TokenIssuer interface {
	GenerateToken(userID uint, email, role string) (string, error)
}

// RegistrationResult is returned from a registration request. The code itself
// only ever travels by email.
type RegistrationResult struct {
	UserID uint   `json:"userId"`
	Email  string `json:"email"`
}

// RegistrationService orchestrates the email-verified registration workflow:
// stage the candidate, deliver a one-time code, and promote the account once
// the code is confirmed.
type RegistrationService struct {
	userRepo     repository.UserRepository
	pendingRepo  repository.PendingUserRepository
	codes        repository.VerificationTokenRepository
	emailService EmailService
	tokens       TokenIssuer
	codeTTL      time.Duration
}

// NewRegistrationService creates the registration workflow orchestrator.
func NewRegistrationService(
	userRepo repository.UserRepository,
	pendingRepo repository.PendingUserRepository,
	codes repository.VerificationTokenRepository,
	emailService EmailService,
	tokens TokenIssuer,
	codeTTL time.Duration,
) (*RegistrationService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if pendingRepo == nil {
		return nil, fmt.Errorf("pending user repository is required")
	}
	if codes == nil {
		return nil, fmt.Errorf("verification token repository is required")
	}
	if emailService == nil {
		return nil, fmt.Errorf("email service is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("token issuer is required")
	}
	if codeTTL <= 0 {
		codeTTL = 10 * time.Minute
	}

	return &RegistrationService{
		userRepo:     userRepo,
		pendingRepo:  pendingRepo,
		codes:        codes,
		emailService: emailService,
		tokens:       tokens,
		codeTTL:      codeTTL,
	}, nil
}

// RequestRegistration stages a candidate account and emails a verification
// code. Ordering matters: all checks run before the send, and nothing is
// persisted unless delivery succeeded, so a failed send never orphans a
// half-created registration.
func (s *RegistrationService) RequestRegistration(ctx context.Context, username, password, email, role string) (*RegistrationResult, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || password == "" || email == "" || role == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperrors.ErrValidation)
	}
	if !IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", apperrors.ErrValidation)
	}
	if !entity.IsValidRole(role) {
		return nil, fmt.Errorf("%w: role must be %q or %q", apperrors.ErrValidation, entity.RoleShopkeeper, entity.RoleLabour)
	}

	if _, err := s.userRepo.GetByEmail(email); err == nil {
		return nil, ErrAlreadyRegistered
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	staged, err := s.pendingRepo.ExistsByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending registration: %w", err)
	}
	if staged {
		return nil, ErrRegistrationInProgress
	}

	userID := entity.DeriveUserID(email)

	code, err := generateVerificationCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	idempotencyKey := fmt.Sprintf("register:%d:%s", userID, uuid.NewString())
	if err := s.emailService.SendVerificationCode(ctx, email, username, code, idempotencyKey); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if err := s.codes.Issue(email, code, time.Now().Add(s.codeTTL)); err != nil {
		return nil, fmt.Errorf("failed to store verification code: %w", err)
	}

	// The unique constraints on email and ID are the backstop for concurrent
	// identical requests; the loser surfaces as ErrConflict.
	pending := &entity.PendingUser{
		ID:       userID,
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
	}
	if err := s.pendingRepo.Create(pending); err != nil {
		return nil, err
	}

	return &RegistrationResult{UserID: userID, Email: email}, nil
}

// ConfirmRegistration validates the emailed code and promotes the staged
// account. On success the returned token signs the user straight in.
func (s *RegistrationService) ConfirmRegistration(ctx context.Context, email, code string, userID uint) (string, error) {
	email = strings.TrimSpace(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" || userID == 0 {
		return "", fmt.Errorf("%w: email, code and userId are required", apperrors.ErrValidation)
	}

	// Consume is atomic: a matching unexpired code is deleted in the same
	// statement that finds it, so it validates exactly once. Wrong, expired
	// and absent codes are deliberately indistinguishable here.
	ok, err := s.codes.Consume(email, code)
	if err != nil {
		return "", fmt.Errorf("failed to validate verification code: %w", err)
	}
	if !ok {
		return "", ErrInvalidVerificationCode
	}

	pending, err := s.pendingRepo.GetByEmailAndID(email, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", ErrPendingNotFound
		}
		return "", fmt.Errorf("failed to load pending registration: %w", err)
	}

	// Promotion is transactional: user row, role profile and pending delete
	// commit or roll back together. A conflict leaves the pending row intact
	// so confirmation could be retried.
	if err := s.userRepo.Promote(pending); err != nil {
		return "", err
	}

	token, err := s.tokens.GenerateToken(pending.ID, pending.Email, pending.Role)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, nil
}

// generateVerificationCode returns a random 6-digit code in 100000-999999.
// Codes with a leading zero are excluded, matching what the registration
// emails have always contained.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}
