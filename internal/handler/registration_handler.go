package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/labourease-api/internal/service"
)

// RegistrationHandler serves the email-verified registration endpoints.
type RegistrationHandler struct {
	registrationService *service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(registrationService *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registrationService}
}

// RegisterRequest is the registration form payload. Format checks (email
// shape, role set) live in the service so every caller gets the same rules.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// VerifyRequest is the code confirmation payload.
type VerifyRequest struct {
	Email  string `json:"email" binding:"required"`
	OTP    string `json:"otp" binding:"required"`
	UserID uint   `json:"userId" binding:"required"`
}

// Register handles POST /register: stage the account and email a code.
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.registrationService.RequestRegistration(
		c.Request.Context(), req.Username, req.Password, req.Email, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[RegistrationHandler] verification code sent for email=%s id=%d", result.Email, result.UserID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification code sent to your email",
		"userId":  result.UserID,
		"email":   result.Email,
	})
}

// Verify handles POST /verify: confirm the code and promote the account.
func (h *RegistrationHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.registrationService.ConfirmRegistration(
		c.Request.Context(), req.Email, req.OTP, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Printf("[RegistrationHandler] account promoted for email=%s id=%d", req.Email, req.UserID)

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"userId":  req.UserID,
	})
}
