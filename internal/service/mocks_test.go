package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	"github.com/yourusername/labourease-api/pkg/auth"
)

// ============================================================================
// Shared mocks for the service tests
// ============================================================================

// MockUserRepository implements repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(id uint) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Promote(pending *entity.PendingUser) error {
	args := m.Called(pending)
	return args.Error(0)
}

// MockPendingUserRepository implements repository.PendingUserRepository.
type MockPendingUserRepository struct {
	mock.Mock
}

func (m *MockPendingUserRepository) Create(pending *entity.PendingUser) error {
	args := m.Called(pending)
	return args.Error(0)
}

func (m *MockPendingUserRepository) ExistsByEmail(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *MockPendingUserRepository) GetByEmailAndID(email string, id uint) (*entity.PendingUser, error) {
	args := m.Called(email, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PendingUser), args.Error(1)
}

func (m *MockPendingUserRepository) Delete(email string, id uint) error {
	args := m.Called(email, id)
	return args.Error(0)
}

func (m *MockPendingUserRepository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	args := m.Called(cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockVerificationTokenRepository implements repository.VerificationTokenRepository.
type MockVerificationTokenRepository struct {
	mock.Mock
}

func (m *MockVerificationTokenRepository) Issue(email, code string, expiresAt time.Time) error {
	args := m.Called(email, code, expiresAt)
	return args.Error(0)
}

func (m *MockVerificationTokenRepository) Consume(email, code string) (bool, error) {
	args := m.Called(email, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockVerificationTokenRepository) DeleteExpired(now time.Time) (int64, error) {
	args := m.Called(now)
	return args.Get(0).(int64), args.Error(1)
}

// MockEmailService implements EmailService.
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendVerificationCode(ctx context.Context, toEmail, username, code, idempotencyKey string) error {
	args := m.Called(ctx, toEmail, username, code, idempotencyKey)
	return args.Error(0)
}

// MockSessionTokens implements SessionTokens (and therefore TokenIssuer).
type MockSessionTokens struct {
	mock.Mock
}

func (m *MockSessionTokens) GenerateToken(userID uint, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}

func (m *MockSessionTokens) ParseToken(ctx context.Context, token string) (*auth.Claims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.Claims), args.Error(1)
}

func (m *MockSessionTokens) RevokeToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}
