package postgres

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

// PendingUserRepo implements repository.PendingUserRepository.
type PendingUserRepo struct {
	db *gorm.DB
}

// NewPendingUserRepo creates a new pending registration repository.
func NewPendingUserRepo(db *gorm.DB) *PendingUserRepo {
	return &PendingUserRepo{db: db}
}

// Create stages a candidate account. The unique index on email and the
// primary key on the derived ID are the correctness backstop for concurrent
// identical requests; either violation surfaces as ErrConflict.
func (r *PendingUserRepo) Create(pending *entity.PendingUser) error {
	if err := r.db.Create(pending).Error; err != nil {
		if isUniqueViolation(err) {
			switch violatedConstraint(err) {
			case "pending_users_pkey":
				return fmt.Errorf("%w: account identifier collision, please retry with a different email", apperrors.ErrConflict)
			default:
				return fmt.Errorf("%w: registration already in progress for this email", apperrors.ErrConflict)
			}
		}
		return fmt.Errorf("failed to create pending user: %w", err)
	}
	return nil
}

// ExistsByEmail reports whether a registration is already staged for the email.
func (r *PendingUserRepo) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&entity.PendingUser{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check pending user: %w", err)
	}
	return count > 0, nil
}

// GetByEmailAndID returns the staged registration matching both keys.
func (r *PendingUserRepo) GetByEmailAndID(email string, id uint) (*entity.PendingUser, error) {
	var pending entity.PendingUser
	err := r.db.Where("email = ? AND id = ?", email, id).First(&pending).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pending user: %w", err)
	}
	return &pending, nil
}

// Delete removes a staged registration.
func (r *PendingUserRepo) Delete(email string, id uint) error {
	return r.db.Where("email = ? AND id = ?", email, id).
		Delete(&entity.PendingUser{}).Error
}

// DeleteOlderThan removes abandoned registrations created before the cutoff.
func (r *PendingUserRepo) DeleteOlderThan(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&entity.PendingUser{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete stale pending users: %w", res.Error)
	}
	return res.RowsAffected, nil
}
