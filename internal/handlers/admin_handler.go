package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/telecat/backend/internal/auth"
	"github.com/telecat/backend/internal/models"
	"github.com/telecat/backend/internal/repository"
)

type AdminHandler struct {
	adminRepo *repository.AdminRepository
}

func NewAdminHandler(adminRepo *repository.AdminRepository) *AdminHandler {
	return &AdminHandler{adminRepo: adminRepo}
}

// ListAdmins returns every admin account, without password hashes
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminRepo.List()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, admins)
}

// CreateAdmin creates a new admin account
func (h *AdminHandler) CreateAdmin(c *gin.Context) {
	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Username and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Username:     req.Username,
		PasswordHash: hash,
	}

	if err := h.adminRepo.Create(admin); err != nil {
		RepoErrorResponse(c, err, "", "Admin already exists")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": admin.ID, "username": admin.Username, "message": "Admin created successfully"})
}

// DeleteAdmin removes an admin account. There is no self-lockout guard; the
// last admin can delete themselves.
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid admin id")
		return
	}

	if err := h.adminRepo.Delete(id); err != nil {
		RepoErrorResponse(c, err, "Admin not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted successfully"})
}
