package repository

import (
	"github.com/yourusername/labourease-api/internal/domain/entity"
)

// ReviewRepository defines access to shopkeeper ratings of labourers.
type ReviewRepository interface {
	Create(review *entity.ShopkeeperReview) error

	// ListForLabour returns a labourer's received ratings joined with the
	// reviewing shop's name.
	ListForLabour(labourID uint) ([]entity.LabourRating, error)

	// ListByShopkeeper returns the ratings a shopkeeper has submitted,
	// joined with the labourer's name, newest first.
	ListByShopkeeper(shopkeeperID uint) ([]entity.RatingExportRow, error)
}
