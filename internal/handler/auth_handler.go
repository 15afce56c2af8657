package handler

import (
	"errors"
	"log"
	"net/http"

	"mocar/internal/middleware"
	"mocar/internal/repository"
	"mocar/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	token, err := h.svc.Login(req.Username, req.Password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCreds) {
			log.Printf("[auth] login failed: %v", err)
		}
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email is required")
		return
	}
	if err := h.svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrEmailNotRegistered) {
			fail(c, http.StatusBadRequest, "Email not registered")
			return
		}
		log.Printf("[auth] forgot-password: %v", err)
		fail(c, http.StatusInternalServerError, "Failed to send email")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "OTP sent to your email"})
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Missing fields")
		return
	}
	if err := h.svc.ResetPassword(req.Email, req.OTP, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrEmailNotRegistered):
			fail(c, http.StatusBadRequest, "Invalid email")
		case errors.Is(err, service.ErrInvalidOTP):
			fail(c, http.StatusBadRequest, "Invalid or expired OTP")
		case errors.Is(err, service.ErrNoAdminAccount):
			fail(c, http.StatusInternalServerError, "Admin account not found")
		default:
			log.Printf("[auth] reset-password: %v", err)
			fail(c, http.StatusInternalServerError, "Database error")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
}

type changeUsernameRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewUsername     string `json:"newUsername" binding:"required"`
}

func (h *AuthHandler) ChangeUsername(c *gin.Context) {
	var req changeUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "New username required")
		return
	}
	err := h.svc.ChangeUsername(middleware.GetAdminID(c), req.CurrentPassword, req.NewUsername)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Username updated successfully"})
	case errors.Is(err, service.ErrInvalidCreds):
		fail(c, http.StatusUnauthorized, "Incorrect current password")
	case errors.Is(err, repository.ErrDuplicate):
		fail(c, http.StatusBadRequest, "Username already taken")
	default:
		log.Printf("[auth] change-username: %v", err)
		fail(c, http.StatusInternalServerError, "Server error")
	}
}
