package postgres

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/labourease-api/internal/domain/entity"
)

// JobPostingRepo implements repository.JobPostingRepository.
type JobPostingRepo struct {
	db *gorm.DB
}

// NewJobPostingRepo creates a new job posting repository.
func NewJobPostingRepo(db *gorm.DB) *JobPostingRepo {
	return &JobPostingRepo{db: db}
}

// Create publishes a job opening.
func (r *JobPostingRepo) Create(job *entity.JobPosting) error {
	if err := r.db.Create(job).Error; err != nil {
		return fmt.Errorf("failed to create job posting: %w", err)
	}
	return nil
}

// ListByShopkeeper returns a shopkeeper's openings with the total count.
func (r *JobPostingRepo) ListByShopkeeper(shopkeeperID uint) ([]entity.JobPosting, int64, error) {
	var jobs []entity.JobPosting
	var total int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.JobPosting{}).
			Where("shopkeeper_id = ?", shopkeeperID).
			Count(&total).Error; err != nil {
			return err
		}
		return tx.Where("shopkeeper_id = ?", shopkeeperID).
			Order("id DESC").
			Find(&jobs).Error
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job postings: %w", err)
	}
	return jobs, total, nil
}
