package entity

import "time"

// JobPosting is an opening published by a shopkeeper.
type JobPosting struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopkeeperID uint      `gorm:"not null;index" json:"shopkeeper_id"`
	Title        string    `gorm:"size:100;not null" json:"title"`
	Description  string    `gorm:"size:1000;not null" json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}
