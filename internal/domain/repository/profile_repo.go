package repository

import (
	"github.com/yourusername/labourease-api/internal/domain/entity"
)

// ProfileRepository defines access to the role-specific profile rows.
type ProfileRepository interface {
	GetShopkeeper(id uint) (*entity.Shopkeeper, error)
	UpdateShopkeeper(id uint, updates map[string]interface{}) error

	GetLabour(id uint) (*entity.Labour, error)
	UpdateLabour(id uint, updates map[string]interface{}) error
}
