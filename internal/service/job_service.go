package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/labourease-api/internal/domain/entity"
	"github.com/yourusername/labourease-api/internal/domain/repository"
	apperrors "github.com/yourusername/labourease-api/internal/pkg/errors"
)

// JobService manages a shopkeeper's job openings.
type JobService struct {
	jobRepo repository.JobPostingRepository
}

// NewJobService creates a new job service.
func NewJobService(jobRepo repository.JobPostingRepository) (*JobService, error) {
	if jobRepo == nil {
		return nil, fmt.Errorf("job posting repository is required")
	}
	return &JobService{jobRepo: jobRepo}, nil
}

// CreateJob publishes an opening for the shopkeeper.
func (s *JobService) CreateJob(shopkeeperID uint, title, description string) (*entity.JobPosting, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return nil, fmt.Errorf("%w: title and description are required", apperrors.ErrValidation)
	}

	job := &entity.JobPosting{
		ShopkeeperID: shopkeeperID,
		Title:        title,
		Description:  description,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, err
	}
	return job, nil
}

// ListOpenings returns a shopkeeper's openings with the total count.
func (s *JobService) ListOpenings(shopkeeperID uint) ([]entity.JobPosting, int64, error) {
	if shopkeeperID == 0 {
		return nil, 0, fmt.Errorf("%w: shopkeeper_id is required", apperrors.ErrValidation)
	}
	return s.jobRepo.ListByShopkeeper(shopkeeperID)
}
