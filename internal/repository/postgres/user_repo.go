package postgres

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

// UserRepo implements repository.UserRepository.
type UserRepo struct {
	db *gorm.DB
}

// NewUserRepo creates a new user repository.
func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetByID returns a user by their derived account ID.
func (r *UserRepo) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns a user by email.
func (r *UserRepo) GetByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Promote migrates a pending registration into users plus the role profile
// and removes the pending row, as one transaction. On a unique violation the
// transaction rolls back, so the pending row survives and confirmation can be
// retried.
func (r *UserRepo) Promote(pending *entity.PendingUser) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		user := &entity.User{
			ID:       pending.ID,
			Username: pending.Username,
			Email:    pending.Email,
			Password: pending.Password,
			Role:     pending.Role,
		}
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		switch pending.Role {
		case entity.RoleShopkeeper:
			if err := tx.Create(entity.NewShopkeeperProfile(pending.ID)).Error; err != nil {
				return err
			}
		case entity.RoleLabour:
			if err := tx.Create(entity.NewLabourProfile(pending.ID)).Error; err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, pending.Role)
		}

		return tx.Where("email = ? AND id = ?", pending.Email, pending.ID).
			Delete(&entity.PendingUser{}).Error
	})
	if err != nil {
		if isUniqueViolation(err) {
			log.Printf("[UserRepo] promotion conflict for email=%s id=%d (constraint %s)",
				pending.Email, pending.ID, violatedConstraint(err))
			return fmt.Errorf("%w: account already exists", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to promote pending user: %w", err)
	}
	return nil
}
