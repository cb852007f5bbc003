package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

// ProfileRepo implements repository.ProfileRepository.
type ProfileRepo struct {
	db *gorm.DB
}

// NewProfileRepo creates a new role-profile repository.
func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// GetShopkeeper returns the shopkeeper profile for an account ID.
func (r *ProfileRepo) GetShopkeeper(id uint) (*entity.Shopkeeper, error) {
	var profile entity.Shopkeeper
	err := r.db.First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get shopkeeper profile: %w", err)
	}
	return &profile, nil
}

// UpdateShopkeeper updates the given shopkeeper profile fields.
func (r *ProfileRepo) UpdateShopkeeper(id uint, updates map[string]interface{}) error {
	delete(updates, "id")
	res := r.db.Model(&entity.Shopkeeper{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update shopkeeper profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetLabour returns the labour profile for an account ID.
func (r *ProfileRepo) GetLabour(id uint) (*entity.Labour, error) {
	var profile entity.Labour
	err := r.db.First(&profile, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get labour profile: %w", err)
	}
	return &profile, nil
}

// UpdateLabour updates the given labour profile fields.
func (r *ProfileRepo) UpdateLabour(id uint, updates map[string]interface{}) error {
	delete(updates, "id")
	res := r.db.Model(&entity.Labour{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update labour profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
