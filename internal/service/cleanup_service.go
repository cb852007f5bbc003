package service

import (
	"fmt"
	"log"
	"time"

	"github.com/yourusername/labourease-api/internal/domain/repository"
)

// CleanupService removes expired verification codes and abandoned pending
// registrations. Neither sweep is needed for correctness (expiry is enforced
// lazily at validation time); this is storage hygiene, run on a timer from
// the process entry point.
type CleanupService struct {
	codes       repository.VerificationTokenRepository
	pendingRepo repository.PendingUserRepository
	pendingTTL  time.Duration
}

// NewCleanupService creates a new cleanup service.
func NewCleanupService(
	codes repository.VerificationTokenRepository,
	pendingRepo repository.PendingUserRepository,
	pendingTTL time.Duration,
) (*CleanupService, error) {
	if codes == nil {
		return nil, fmt.Errorf("verification token repository is required")
	}
	if pendingRepo == nil {
		return nil, fmt.Errorf("pending user repository is required")
	}
	if pendingTTL <= 0 {
		pendingTTL = 24 * time.Hour
	}
	return &CleanupService{
		codes:       codes,
		pendingRepo: pendingRepo,
		pendingTTL:  pendingTTL,
	}, nil
}

// RunOnce performs a single sweep.
func (s *CleanupService) RunOnce() error {
	now := time.Now()

	expired, err := s.codes.DeleteExpired(now)
	if err != nil {
		return fmt.Errorf("verification code sweep failed: %w", err)
	}

	stale, err := s.pendingRepo.DeleteOlderThan(now.Add(-s.pendingTTL))
	if err != nil {
		return fmt.Errorf("pending registration sweep failed: %w", err)
	}

	if expired > 0 || stale > 0 {
		log.Printf("[Cleanup] removed %d expired codes, %d stale pending registrations", expired, stale)
	}
	return nil
}
