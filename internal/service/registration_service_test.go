package service

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

func newRegistrationService(t *testing.T) (*RegistrationService, *MockUserRepository, *MockPendingUserRepository, *MockVerificationTokenRepository, *MockEmailService, *MockSessionTokens) {
	t.Helper()

	userRepo := new(MockUserRepository)
	pendingRepo := new(MockPendingUserRepository)
	codes := new(MockVerificationTokenRepository)
	emails := new(MockEmailService)
	tokens := new(MockSessionTokens)

	svc, err := NewRegistrationService(userRepo, pendingRepo, codes, emails, tokens, 10*time.Minute)
	require.NoError(t, err)
	return svc, userRepo, pendingRepo, codes, emails, tokens
}

func TestRequestRegistration_Success(t *testing.T) {
	svc, userRepo, pendingRepo, codes, emails, _ := newRegistrationService(t)

	userRepo.On("GetByEmail", "alice@x.com").Return(nil, apperrors.ErrNotFound)
	pendingRepo.On("ExistsByEmail", "alice@x.com").Return(false, nil)
	emails.On("SendVerificationCode", mock.Anything, "alice@x.com", "alice",
		mock.MatchedBy(func(code string) bool {
			return regexp.MustCompile(`^[1-9]\d{5}$`).MatchString(code)
		}), mock.Anything).Return(nil)
	codes.On("Issue", "alice@x.com", mock.Anything, mock.Anything).Return(nil)
	pendingRepo.On("Create", mock.MatchedBy(func(p *entity.PendingUser) bool {
		return p.Email == "alice@x.com" &&
			p.Username == "alice" &&
			p.Role == entity.RoleLabour &&
			p.ID == entity.DeriveUserID("alice@x.com")
	})).Return(nil)

	result, err := svc.RequestRegistration(context.Background(), "alice", "pw1", "alice@x.com", entity.RoleLabour)

	require.NoError(t, err)
	assert.Equal(t, entity.DeriveUserID("alice@x.com"), result.UserID)
	assert.Equal(t, "alice@x.com", result.Email)
	userRepo.AssertExpectations(t)
	pendingRepo.AssertExpectations(t)
	codes.AssertExpectations(t)
	emails.AssertExpectations(t)
}

func TestRequestRegistration_ValidationErrors(t *testing.T) {
	svc, _, _, _, _, _ := newRegistrationService(t)

	tests := []struct {
		name     string
		username string
		password string
		email    string
		role     string
	}{
		{"missing username", "", "pw", "a@x.com", entity.RoleLabour},
		{"missing password", "alice", "", "a@x.com", entity.RoleLabour},
		{"missing email", "alice", "pw", "", entity.RoleLabour},
		{"missing role", "alice", "pw", "a@x.com", ""},
		{"malformed email", "alice", "pw", "not-an-email", entity.RoleLabour},
		{"email without tld", "alice", "pw", "a@x", entity.RoleLabour},
		{"unknown role", "alice", "pw", "a@x.com", "admin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RequestRegistration(context.Background(), tt.username, tt.password, tt.email, tt.role)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestRequestRegistration_AlreadyRegistered(t *testing.T) {
	svc, userRepo, pendingRepo, codes, emails, _ := newRegistrationService(t)

	userRepo.On("GetByEmail", "alice@x.com").
		Return(&entity.User{ID: 1, Email: "alice@x.com"}, nil)

	_, err := svc.RequestRegistration(context.Background(), "alice", "pw1", "alice@x.com", entity.RoleLabour)

	assert.ErrorIs(t, err, ErrAlreadyRegistered)
	// No side effects for an already-registered email.
	pendingRepo.AssertNotCalled(t, "Create", mock.Anything)
	codes.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
	emails.AssertNotCalled(t, "SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestRegistration_AlreadyPending(t *testing.T) {
	svc, userRepo, pendingRepo, codes, emails, _ := newRegistrationService(t)

	userRepo.On("GetByEmail", "alice@x.com").Return(nil, apperrors.ErrNotFound)
	pendingRepo.On("ExistsByEmail", "alice@x.com").Return(true, nil)

	_, err := svc.RequestRegistration(context.Background(), "alice", "pw1", "alice@x.com", entity.RoleLabour)

	assert.ErrorIs(t, err, ErrRegistrationInProgress)
	codes.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
	emails.AssertNotCalled(t, "SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRequestRegistration_DeliveryFailureLeavesNoState(t *testing.T) {
	svc, userRepo, pendingRepo, codes, emails, _ := newRegistrationService(t)

	userRepo.On("GetByEmail", "alice@x.com").Return(nil, apperrors.ErrNotFound)
	pendingRepo.On("ExistsByEmail", "alice@x.com").Return(false, nil)
	emails.On("SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("smtp unreachable"))

	_, err := svc.RequestRegistration(context.Background(), "alice", "pw1", "alice@x.com", entity.RoleLabour)

	assert.ErrorIs(t, err, ErrDeliveryFailed)
	// A failed send must not orphan a half-created registration.
	codes.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
	pendingRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRequestRegistration_ConcurrentInsertLosesAsConflict(t *testing.T) {
	svc, userRepo, pendingRepo, codes, emails, _ := newRegistrationService(t)

	userRepo.On("GetByEmail", "alice@x.com").Return(nil, apperrors.ErrNotFound)
	pendingRepo.On("ExistsByEmail", "alice@x.com").Return(false, nil)
	emails.On("SendVerificationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	codes.On("Issue", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	// Both racing requests pass the existence checks; the store's unique
	// constraint decides the loser.
	pendingRepo.On("Create", mock.Anything).Return(apperrors.ErrConflict)

	_, err := svc.RequestRegistration(context.Background(), "alice", "pw1", "alice@x.com", entity.RoleLabour)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestConfirmRegistration_Success(t *testing.T) {
	svc, userRepo, pendingRepo, codes, _, tokens := newRegistrationService(t)

	userID := entity.DeriveUserID("alice@x.com")
	pending := &entity.PendingUser{
		ID:       userID,
		Username: "alice",
		Password: "$2a$10$hash",
		Email:    "alice@x.com",
		Role:     entity.RoleLabour,
	}

	codes.On("Consume", "alice@x.com", "654321").Return(true, nil)
	pendingRepo.On("GetByEmailAndID", "alice@x.com", userID).Return(pending, nil)
	userRepo.On("Promote", pending).Return(nil)
	tokens.On("GenerateToken", userID, "alice@x.com", entity.RoleLabour).Return("signed-token", nil)

	token, err := svc.ConfirmRegistration(context.Background(), "alice@x.com", "654321", userID)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	userRepo.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestConfirmRegistration_InvalidCode(t *testing.T) {
	svc, userRepo, pendingRepo, codes, _, _ := newRegistrationService(t)

	// Wrong, expired and never-issued codes all look the same.
	codes.On("Consume", "alice@x.com", "000000").Return(false, nil)

	_, err := svc.ConfirmRegistration(context.Background(), "alice@x.com", "000000", 42)

	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
	pendingRepo.AssertNotCalled(t, "GetByEmailAndID", mock.Anything, mock.Anything)
	userRepo.AssertNotCalled(t, "Promote", mock.Anything)
}

func TestConfirmRegistration_CodeIsSingleUse(t *testing.T) {
	svc, userRepo, pendingRepo, codes, _, tokens := newRegistrationService(t)

	userID := entity.DeriveUserID("alice@x.com")
	pending := &entity.PendingUser{ID: userID, Email: "alice@x.com", Role: entity.RoleLabour}

	// The first confirmation consumes the code; the second finds nothing.
	codes.On("Consume", "alice@x.com", "654321").Return(true, nil).Once()
	codes.On("Consume", "alice@x.com", "654321").Return(false, nil).Once()
	pendingRepo.On("GetByEmailAndID", "alice@x.com", userID).Return(pending, nil)
	userRepo.On("Promote", pending).Return(nil)
	tokens.On("GenerateToken", userID, "alice@x.com", entity.RoleLabour).Return("signed-token", nil)

	_, err := svc.ConfirmRegistration(context.Background(), "alice@x.com", "654321", userID)
	require.NoError(t, err)

	_, err = svc.ConfirmRegistration(context.Background(), "alice@x.com", "654321", userID)
	assert.ErrorIs(t, err, ErrInvalidVerificationCode)
}

func TestConfirmRegistration_PendingNotFound(t *testing.T) {
	svc, userRepo, pendingRepo, codes, _, _ := newRegistrationService(t)

	codes.On("Consume", "alice@x.com", "654321").Return(true, nil)
	pendingRepo.On("GetByEmailAndID", "alice@x.com", uint(42)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.ConfirmRegistration(context.Background(), "alice@x.com", "654321", 42)

	assert.ErrorIs(t, err, ErrPendingNotFound)
	userRepo.AssertNotCalled(t, "Promote", mock.Anything)
}

func TestConfirmRegistration_PromotionConflict(t *testing.T) {
	svc, userRepo, pendingRepo, codes, _, tokens := newRegistrationService(t)

	userID := entity.DeriveUserID("alice@x.com")
	pending := &entity.PendingUser{ID: userID, Email: "alice@x.com", Role: entity.RoleShopkeeper}

	codes.On("Consume", "alice@x.com", "654321").Return(true, nil)
	pendingRepo.On("GetByEmailAndID", "alice@x.com", userID).Return(pending, nil)
	userRepo.On("Promote", pending).Return(apperrors.ErrConflict)

	_, err := svc.ConfirmRegistration(context.Background(), "alice@x.com", "654321", userID)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmRegistration_ValidationErrors(t *testing.T) {
	svc, _, _, _, _, _ := newRegistrationService(t)

	_, err := svc.ConfirmRegistration(context.Background(), "", "654321", 42)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ConfirmRegistration(context.Background(), "alice@x.com", "", 42)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ConfirmRegistration(context.Background(), "alice@x.com", "654321", 0)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGenerateVerificationCode_Range(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := generateVerificationCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.Regexp(t, `^[1-9]\d{5}$`, code)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("alice@x.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.domain.org"))
	assert.False(t, IsValidEmail("alice"))
	assert.False(t, IsValidEmail("alice@x"))
	assert.False(t, IsValidEmail("alice @x.com"))
	assert.False(t, IsValidEmail("@x.com"))
}
