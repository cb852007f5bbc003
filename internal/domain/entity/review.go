package entity

import "time"

// ShopkeeperReview is a shopkeeper's rating of a labourer.
type ShopkeeperReview struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopkeeperID uint      `gorm:"not null;index" json:"shopkeeper_id"`
	LabourID     uint      `gorm:"not null;index" json:"labour_id"`
	Rating       int       `gorm:"not null" json:"rating"`
	Review       string    `gorm:"size:1000;not null" json:"review"`
	CreatedAt    time.Time `json:"created_at"`
}

func (ShopkeeperReview) TableName() string {
	return "shopkeeper_reviews_labour"
}

// LabourRating is a read model for a labourer's received ratings, joined with
// the reviewing shop's name.
type LabourRating struct {
	Rating   int    `json:"rating"`
	Review   string `json:"review"`
	ShopName string `json:"shop_name"`
}

// RatingExportRow is a read model for the shopkeeper ratings export.
type RatingExportRow struct {
	LabourID   uint      `json:"labour_id"`
	LabourName string    `json:"labour_name"`
	Rating     int       `json:"rating"`
	Review     string    `json:"review"`
	CreatedAt  time.Time `json:"created_at"`
}
