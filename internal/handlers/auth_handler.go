package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telecat/backend/internal/auth"
	"github.com/telecat/backend/internal/models"
	"github.com/telecat/backend/internal/repository"
)

type AuthHandler struct {
	adminRepo  *repository.AdminRepository
	jwtService *auth.JWTService
}

func NewAuthHandler(adminRepo *repository.AdminRepository, jwtService *auth.JWTService) *AuthHandler {
	return &AuthHandler{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login handles admin login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	// Unknown username and wrong password answer identically
	admin, err := h.adminRepo.GetByUsername(req.Username)
	if err != nil {
		ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := auth.CheckPassword(admin.PasswordHash, req.Password); err != nil {
		ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateToken(admin.ID, admin.Username)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:    token,
		Username: admin.Username,
	})
}
