package service

import (
	"errors"
	"fmt"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	"github.com/yourusername/labourease-api/internal/domain/repository"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

// ReviewService manages shopkeeper ratings of labourers.
type ReviewService struct {
	reviewRepo  repository.ReviewRepository
	profileRepo repository.ProfileRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, profileRepo repository.ProfileRepository) (*ReviewService, error) {
	if reviewRepo == nil {
		return nil, fmt.Errorf("review repository is required")
	}
	if profileRepo == nil {
		return nil, fmt.Errorf("profile repository is required")
	}
	return &ReviewService{reviewRepo: reviewRepo, profileRepo: profileRepo}, nil
}

// RateLabour records a shopkeeper's rating of a labourer. One rating per
// shopkeeper-labourer pair; a repeat surfaces as a conflict.
func (s *ReviewService) RateLabour(shopkeeperID, labourID uint, rating int, review string) error {
	if labourID == 0 {
		return fmt.Errorf("%w: labour_id is required", apperrors.ErrValidation)
	}
	if rating < 1 || rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", apperrors.ErrValidation)
	}

	if _, err := s.profileRepo.GetLabour(labourID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: labourer not found", apperrors.ErrNotFound)
		}
		return err
	}

	return s.reviewRepo.Create(&entity.ShopkeeperReview{
		ShopkeeperID: shopkeeperID,
		LabourID:     labourID,
		Rating:       rating,
		Review:       review,
	})
}

// GetRatingsForLabour returns a labourer's received ratings.
func (s *ReviewService) GetRatingsForLabour(labourID uint) ([]entity.LabourRating, error) {
	if labourID == 0 {
		return nil, fmt.Errorf("%w: labour_id is required", apperrors.ErrValidation)
	}
	return s.reviewRepo.ListForLabour(labourID)
}

// GetRatingsByShopkeeper returns the ratings a shopkeeper has submitted, for
// the export report.
func (s *ReviewService) GetRatingsByShopkeeper(shopkeeperID uint) ([]entity.RatingExportRow, error) {
	return s.reviewRepo.ListByShopkeeper(shopkeeperID)
}
