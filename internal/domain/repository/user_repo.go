package repository

import (
	"github.com/yourusername/labourease-api/internal/domain/entity"
)

// UserRepository defines access to permanent accounts.
type UserRepository interface {
	GetByID(id uint) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)

	// Promote moves a pending registration into the permanent account store:
	// it creates the user row, the role-specific profile row with placeholder
	// values, and deletes the pending row, all in one transaction. A
	// uniqueness violation (concurrent confirmation, ID collision) is
	// reported as apperrors.ErrConflict and leaves the pending row in place.
	Promote(pending *entity.PendingUser) error
}
