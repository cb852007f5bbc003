package repository

import (
	"time"

	"github.com/yourusername/labourease-api/internal/domain/entity"
)

// PendingUserRepository defines access to staged registrations.
type PendingUserRepository interface {
	// Create stages a candidate account. A duplicate email or derived-ID
	// collision is reported as apperrors.ErrConflict.
	Create(pending *entity.PendingUser) error

	ExistsByEmail(email string) (bool, error)
	GetByEmailAndID(email string, id uint) (*entity.PendingUser, error)
	Delete(email string, id uint) error

	// DeleteOlderThan removes abandoned registrations created before the
	// cutoff. Returns the number of rows removed.
	DeleteOlderThan(cutoff time.Time) (int64, error)
}
