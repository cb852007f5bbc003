package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

func newAuthService(t *testing.T) (*AuthService, *MockUserRepository, *MockSessionTokens) {
	t.Helper()

	userRepo := new(MockUserRepository)
	tokens := new(MockSessionTokens)
	svc, err := NewAuthService(userRepo, tokens)
	require.NoError(t, err)
	return svc, userRepo, tokens
}

func hashedUser(t *testing.T, email, password, role string) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &entity.User{
		ID:       entity.DeriveUserID(email),
		Username: "alice",
		Email:    email,
		Password: string(hash),
		Role:     role,
	}
}

func TestLogin_Success(t *testing.T) {
	svc, userRepo, tokens := newAuthService(t)

	user := hashedUser(t, "alice@x.com", "pw1", entity.RoleLabour)
	userRepo.On("GetByID", entity.DeriveUserID("alice@x.com")).Return(user, nil)
	tokens.On("GenerateToken", user.ID, "alice@x.com", entity.RoleLabour).Return("signed", nil)

	got, token, err := svc.Login("alice@x.com", "pw1")

	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "signed", token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo, tokens := newAuthService(t)

	user := hashedUser(t, "alice@x.com", "pw1", entity.RoleLabour)
	userRepo.On("GetByID", entity.DeriveUserID("alice@x.com")).Return(user, nil)

	_, _, err := svc.Login("alice@x.com", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken")
}

func TestLogin_UnknownAccountSameError(t *testing.T) {
	svc, userRepo, _ := newAuthService(t)

	userRepo.On("GetByID", entity.DeriveUserID("ghost@x.com")).Return(nil, apperrors.ErrNotFound)

	_, _, err := svc.Login("ghost@x.com", "pw1")

	// Unknown account and wrong password are indistinguishable.
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, _, err := svc.Login("", "pw")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, _, err = svc.Login("alice@x.com", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestVerifyToken_Empty(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, err := svc.VerifyToken(context.Background(), "  ")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogout_EmptyTokenIsNoop(t *testing.T) {
	svc, _, tokens := newAuthService(t)

	err := svc.Logout(context.Background(), "")
	require.NoError(t, err)
	tokens.AssertNotCalled(t, "RevokeToken")
}
