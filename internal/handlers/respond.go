package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/telecat/backend/internal/repository"
)

// ErrorResponse sends a standardized error response and logs at caller if needed
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// RepoErrorResponse maps repository sentinel errors onto the HTTP taxonomy:
// missing entity 404, duplicate unique field 400, anything else 500.
func RepoErrorResponse(c *gin.Context, err error, notFoundMsg, duplicateMsg string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, repository.ErrDuplicate):
		ErrorResponse(c, http.StatusBadRequest, duplicateMsg)
	default:
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
	}
}
