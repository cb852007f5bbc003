package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/labourease-api/internal/middleware"
	"github.com/yourusername/labourease-api/internal/service"
	"github.com/yourusername/labourease-api/pkg/auth"
)

// AuthHandler serves login, session and logout endpoints.
type AuthHandler struct {
	authService   *service.AuthService
	cookieMaxAge  time.Duration
	secureCookies bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService, cookieMaxAge time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		cookieMaxAge:  cookieMaxAge,
		secureCookies: secureCookies,
	}
}

// LoginRequest is the sign-in payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyTokenRequest carries a token for explicit validation.
type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	auth.SetAuthCookie(c.Writer, token, h.cookieMaxAge, h.secureCookies)

	c.JSON(http.StatusOK, gin.H{
		"user":   user,
		"token":  token,
		"userId": user.ID,
	})
}

// VerifyToken handles POST /verifyToken.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	var req VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	if _, err := h.authService.VerifyToken(c.Request.Context(), req.Token); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// GetUser handles GET /user: the identity behind the session.
func (h *AuthHandler) GetUser(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
		"name":  user.Username,
	})
}

// GetUsername handles GET /username.
func (h *AuthHandler) GetUsername(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": user.Username})
}

// Logout handles POST /logoutLabour: clears the session cookie and revokes
// the token for the rest of its lifetime.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := auth.TokenFromCookie(c.Request)
	if err != nil {
		// No cookie: fall back to the token the middleware already parsed.
		token = middleware.TokenFromContext(c)
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	auth.ClearAuthCookie(c.Writer, h.secureCookies)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
