package handler

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/labourease-api/internal/middleware"
	"github.com/yourusername/labourease-api/internal/service"
)

// ReviewHandler serves rating endpoints.
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RateLabourRequest is a shopkeeper's rating payload.
type RateLabourRequest struct {
	LabourID uint   `json:"labour_id" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Review   string `json:"review"`
}

// LabourRatingsRequest selects the labourer whose ratings to fetch.
type LabourRatingsRequest struct {
	LabourID uint `json:"labour_id" binding:"required"`
}

// RateLabour handles POST /rateLabour (shopkeeper only).
func (h *ReviewHandler) RateLabour(c *gin.Context) {
	var req RateLabourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shopkeeperID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.reviewService.RateLabour(shopkeeperID, req.LabourID, req.Rating, req.Review); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted successfully"})
}

// GetRatingsForLabour handles POST /getRatingsForLabour.
func (h *ReviewHandler) GetRatingsForLabour(c *gin.Context) {
	var req LabourRatingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ratings, err := h.reviewService.GetRatingsForLabour(req.LabourID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ratings": ratings})
}

// ExportRatings handles GET /ratings/export (shopkeeper only): the ratings
// the shopkeeper has submitted, as an Excel sheet.
func (h *ReviewHandler) ExportRatings(c *gin.Context) {
	shopkeeperID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rows, err := h.reviewService.GetRatingsByShopkeeper(shopkeeperID)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("ratings-%d", shopkeeperID)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Ratings"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ReviewHandler] failed to create stream writer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"Labour ID", "Labourer", "Rating", "Review", "Rated At"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ReviewHandler] failed to write headers: %v", err)
	}

	for i, r := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		row := []interface{}{r.LabourID, r.LabourName, r.Rating, r.Review, r.CreatedAt.Format(time.RFC3339)}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ReviewHandler] failed to write row %d: %v", i+2, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ReviewHandler] failed to flush stream writer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build Excel file"})
		return
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ReviewHandler] failed to write Excel response: %v", err)
	}
}
