package repository

import (
	"github.com/yourusername/labourease-api/internal/domain/entity"
)

// JobPostingRepository defines access to job openings.
type JobPostingRepository interface {
	Create(job *entity.JobPosting) error
	ListByShopkeeper(shopkeeperID uint) ([]entity.JobPosting, int64, error)
}
