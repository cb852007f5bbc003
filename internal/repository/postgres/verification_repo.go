package postgres

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yourusername/labourease-api/internal/domain/entity"
)

// VerificationTokenRepo implements repository.VerificationTokenRepository.
type VerificationTokenRepo struct {
	db *gorm.DB
}

// NewVerificationTokenRepo creates a new verification code repository.
func NewVerificationTokenRepo(db *gorm.DB) *VerificationTokenRepo {
	return &VerificationTokenRepo{db: db}
}

// Issue replaces any existing code for the email. Delete-then-insert runs in
// one transaction so a concurrent Issue cannot leave two active codes.
func (r *VerificationTokenRepo) Issue(email, code string, expiresAt time.Time) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", email).
			Delete(&entity.VerificationToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&entity.VerificationToken{
			Email:     email,
			Token:     code,
			ExpiresAt: expiresAt,
		}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to issue verification code: %w", err)
	}
	return nil
}

// Consume deletes the matching unexpired code and reports whether one
// existed. The single conditional DELETE makes check-and-invalidate atomic,
// so a code cannot be replayed between check and delete.
func (r *VerificationTokenRepo) Consume(email, code string) (bool, error) {
	res := r.db.Where("email = ? AND token = ? AND expires_at > ?", email, code, time.Now()).
		Delete(&entity.VerificationToken{})
	if res.Error != nil {
		return false, fmt.Errorf("failed to consume verification code: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// DeleteExpired removes codes past their expiry. Expiry is enforced lazily by
// Consume; this only keeps the table small.
func (r *VerificationTokenRepo) DeleteExpired(now time.Time) (int64, error) {
	res := r.db.Where("expires_at <= ?", now).Delete(&entity.VerificationToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete expired verification codes: %w", res.Error)
	}
	return res.RowsAffected, nil
}
