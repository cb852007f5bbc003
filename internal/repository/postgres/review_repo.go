package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

// ReviewRepo implements repository.ReviewRepository.
type ReviewRepo struct {
	db *gorm.DB
}

// NewReviewRepo creates a new review repository.
func NewReviewRepo(db *gorm.DB) *ReviewRepo {
	return &ReviewRepo{db: db}
}

// Create stores a shopkeeper's rating of a labourer.
func (r *ReviewRepo) Create(review *entity.ShopkeeperReview) error {
	if err := r.db.Create(review).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: labourer already rated", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ListForLabour returns a labourer's received ratings with the shop name.
func (r *ReviewRepo) ListForLabour(labourID uint) ([]entity.LabourRating, error) {
	var ratings []entity.LabourRating
	err := r.db.Model(&entity.ShopkeeperReview{}).
		Select("shopkeeper_reviews_labour.rating, shopkeeper_reviews_labour.review, shopkeepers.shop_name").
		Joins("JOIN shopkeepers ON shopkeeper_reviews_labour.shopkeeper_id = shopkeepers.id").
		Where("shopkeeper_reviews_labour.labour_id = ?", labourID).
		Scan(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings for labour: %w", err)
	}
	return ratings, nil
}

// ListByShopkeeper returns the ratings a shopkeeper has submitted, with the
// labourer's name, newest first.
func (r *ReviewRepo) ListByShopkeeper(shopkeeperID uint) ([]entity.RatingExportRow, error) {
	var rows []entity.RatingExportRow
	err := r.db.Model(&entity.ShopkeeperReview{}).
		Select("shopkeeper_reviews_labour.labour_id, labours.name AS labour_name, shopkeeper_reviews_labour.rating, shopkeeper_reviews_labour.review, shopkeeper_reviews_labour.created_at").
		Joins("JOIN labours ON shopkeeper_reviews_labour.labour_id = labours.id").
		Where("shopkeeper_reviews_labour.shopkeeper_id = ?", shopkeeperID).
		Order("shopkeeper_reviews_labour.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list ratings by shopkeeper: %w", err)
	}
	return rows, nil
}
