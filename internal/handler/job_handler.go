package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/labourease-api/internal/middleware"
	"github.com/yourusername/labourease-api/internal/service"
)

// JobHandler serves job posting endpoints.
type JobHandler struct {
	jobService *service.JobService
}

// NewJobHandler creates a new job handler.
func NewJobHandler(jobService *service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// CreateJobRequest is the job posting payload.
type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// CreateJob handles POST /jobs (shopkeeper only).
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shopkeeperID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	job, err := h.jobService.CreateJob(shopkeeperID, req.Title, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Job posted successfully",
		"job":     job,
	})
}

// CurrentOpenings handles GET /currentOpenings?shopkeeper_id=N.
func (h *JobHandler) CurrentOpenings(c *gin.Context) {
	shopkeeperID, err := strconv.ParseUint(c.Query("shopkeeper_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "shopkeeper_id must be a number"})
		return
	}

	jobs, total, err := h.jobService.ListOpenings(uint(shopkeeperID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": total,
	})
}
