package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/labourease-api/internal/middleware"
	"github.com/yourusername/labourease-api/internal/service"
)

// ProfileHandler serves the role-profile endpoints.
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateShopkeeperProfileRequest carries editable shopkeeper fields; omitted
// fields keep their stored values.
type UpdateShopkeeperProfileRequest struct {
	ShopName    string `json:"shop_name"`
	ShopAddress string `json:"shop_address"`
	ShopPhone   string `json:"shop_phone"`
	Bio         string `json:"bio"`
}

// UpdateLabourProfileRequest carries editable labour fields; omitted fields
// keep their stored values.
type UpdateLabourProfileRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Experience string `json:"experience"`
}

// GetShopkeeperProfile handles GET /shopkeeperProfile.
func (h *ProfileHandler) GetShopkeeperProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetShopkeeperProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateShopkeeperProfile handles PUT /shopkeeperProfile.
func (h *ProfileHandler) UpdateShopkeeperProfile(c *gin.Context) {
	var req UpdateShopkeeperProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.profileService.UpdateShopkeeperProfile(userID, req.ShopName, req.ShopAddress, req.ShopPhone, req.Bio); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}

// GetLabourProfile handles GET /labourProfile.
func (h *ProfileHandler) GetLabourProfile(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	profile, err := h.profileService.GetLabourProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateLabourProfile handles PUT /labourProfile.
func (h *ProfileHandler) UpdateLabourProfile(c *gin.Context) {
	var req UpdateLabourProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.profileService.UpdateLabourProfile(userID, req.Name, req.Phone, req.Address, req.Experience); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
