package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	"github.com/yourusername/labourease-api/internal/domain/repository"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
	"github.com/yourusername/labourease-api/pkg/auth"
)

// SessionTokens is the session token surface the auth service depends on.
type SessionTokens interface {
	TokenIssuer
	ParseToken(ctx context.Context, token string) (*auth.Claims, error)
	RevokeToken(ctx context.Context, token string) error
}

// AuthService handles login, token verification and logout for verified
// accounts.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   SessionTokens
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, tokens SessionTokens) (*AuthService, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if tokens == nil {
		return nil, fmt.Errorf("session token service is required")
	}
	return &AuthService{userRepo: userRepo, tokens: tokens}, nil
}

// Login authenticates by email and password. Lookup goes through the derived
// account ID, the same key registration used, so email and ID stay in step.
// Unknown accounts and wrong passwords produce the same error.
func (s *AuthService) Login(email, password string) (*entity.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", fmt.Errorf("%w: email and password are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.GetByID(entity.DeriveUserID(email))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}

	if !user.CheckPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return user, token, nil
}

// VerifyToken validates a session token and returns its claims.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*auth.Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, apperrors.ErrUnauthorized
	}
	return s.tokens.ParseToken(ctx, token)
}

// Logout revokes the session token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	return s.tokens.RevokeToken(ctx, token)
}

// GetUserByID returns the account for an authenticated session.
func (s *AuthService) GetUserByID(id uint) (*entity.User, error) {
	return s.userRepo.GetByID(id)
}
