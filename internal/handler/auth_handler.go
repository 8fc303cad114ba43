package handler

import (
	"net/http"
	"time"

	"github.com/BTulkas/Foster-Finder/internal/phone"
	"github.com/BTulkas/Foster-Finder/internal/service"
	"github.com/BTulkas/Foster-Finder/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// PhoneRequest is one submitted phone slot, shared by the clinic and
// volunteer forms
type PhoneRequest struct {
	DialCode string `json:"dial_code"`
	Number   string `json:"number"`
	Primary  bool   `json:"primary_contact"`
}

func (p PhoneRequest) toInput() phone.Input {
	return phone.Input{DialCode: p.DialCode, Number: p.Number, Primary: p.Primary}
}

type RegisterRequest struct {
	Email           string       `json:"email" binding:"required,email"`
	Name            string       `json:"name" binding:"required"`
	Password        string       `json:"password" binding:"required,min=6"`
	Area            string       `json:"area" binding:"omitempty"`
	MainNumber      PhoneRequest `json:"main_number"`
	EmergencyNumber PhoneRequest `json:"emergency_number"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type PasswordResetRequestRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// Register handles clinic registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Register(service.RegisterInput{
		Email:           req.Email,
		Name:            req.Name,
		Password:        req.Password,
		Area:            req.Area,
		MainNumber:      req.MainNumber.toInput(),
		EmergencyNumber: req.EmergencyNumber.toInput(),
	})
	if err != nil {
		respondError(c, err, "Failed to register clinic")
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)

	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"clinic":       response.Clinic,
	})
}

// Login handles clinic authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	h.setRefreshCookie(c, response.RefreshToken)

	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"clinic":       response.Clinic,
	})
}

// Refresh generates a new access token from refresh token
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		// If no cookie, just clear it and return success
		c.SetCookie("refresh_token", "", -1, "/", "", false, true)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	if err := h.authService.Logout(refreshToken); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	c.SetCookie("refresh_token", "", -1, "/", "", false, true)

	utils.MessageResponse(c, "Logged out successfully")
}

// RequestPasswordReset issues a password reset token for the given email
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.RequestPasswordReset(req.Email); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to request password reset")
		return
	}

	utils.MessageResponse(c, "If the email is registered, a reset message has been sent")
}

// ResetPassword sets a new password from a reset token
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.Password); err != nil {
		respondError(c, err, "Failed to reset password")
		return
	}

	utils.MessageResponse(c, "Password updated successfully")
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, refreshToken string) {
	c.SetCookie(
		"refresh_token",               // name
		refreshToken,                  // value
		int(7*24*time.Hour.Seconds()), // maxAge in seconds (7 days)
		"/",                           // path
		"",                            // domain (empty means current domain)
		false,                         // secure (set to true in production with HTTPS)
		true,                          // httpOnly
	)
}
