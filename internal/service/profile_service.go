package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	"github.com/yourusername/labourease-api/internal/domain/repository"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

// ProfileService reads and updates the role-specific profile rows.
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository) (*ProfileService, error) {
	if profileRepo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	return &ProfileService{profileRepo: profileRepo}, nil
}

func (s *ProfileService) GetShopkeeperProfile(id uint) (*entity.Shopkeeper, error) {
	return s.profileRepo.GetShopkeeper(id)
}

// UpdateShopkeeperProfile updates the provided fields; empty values keep the
// stored ones.
func (s *ProfileService) UpdateShopkeeperProfile(id uint, shopName, shopAddress, shopPhone, bio string) error {
	updates := map[string]interface{}{}
	if v := strings.TrimSpace(shopName); v != "" {
		updates["shop_name"] = v
	}
	if v := strings.TrimSpace(shopAddress); v != "" {
		updates["shop_address"] = v
	}
	if v := strings.TrimSpace(shopPhone); v != "" {
		updates["shop_phone"] = v
	}
	if v := strings.TrimSpace(bio); v != "" {
		updates["bio"] = v
	}
	if len(updates) == 0 {
		return fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}
	return s.profileRepo.UpdateShopkeeper(id, updates)
}

func (s *ProfileService) GetLabourProfile(id uint) (*entity.Labour, error) {
	return s.profileRepo.GetLabour(id)
}

// UpdateLabourProfile updates the provided fields; empty values keep the
// stored ones.
func (s *ProfileService) UpdateLabourProfile(id uint, name, phone, address, experience string) error {
	updates := map[string]interface{}{}
	if v := strings.TrimSpace(name); v != "" {
		updates["name"] = v
	}
	if v := strings.TrimSpace(phone); v != "" {
		updates["phone"] = v
	}
	if v := strings.TrimSpace(address); v != "" {
		updates["address"] = v
	}
	if v := strings.TrimSpace(experience); v != "" {
		updates["experience"] = v
	}
	if len(updates) == 0 {
		return fmt.Errorf("%w: nothing to update", apperrors.ErrValidation)
	}
	return s.profileRepo.UpdateLabour(id, updates)
}
