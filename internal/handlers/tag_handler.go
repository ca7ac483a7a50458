package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/telecat/backend/internal/cache"
	"github.com/telecat/backend/internal/models"
	"github.com/telecat/backend/internal/repository"
)

type TagHandler struct {
	tagRepo *repository.TagRepository
	cache   *cache.RedisClient // nil when Redis is unavailable
}

func NewTagHandler(tagRepo *repository.TagRepository, cache *cache.RedisClient) *TagHandler {
	return &TagHandler{
		tagRepo: tagRepo,
		cache:   cache,
	}
}

// ListTags returns approved tags ordered by name
func (h *TagHandler) ListTags(c *gin.Context) {
	tags, err := h.tagRepo.ListApproved()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, tags)
}

// SuggestTag handles a public tag suggestion. The tag starts out pending.
func (h *TagHandler) SuggestTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Tag name required")
		return
	}

	tag, err := h.tagRepo.Create(req.Name, models.StatusPending)
	if err != nil {
		RepoErrorResponse(c, err, "", "Tag already exists")
		return
	}

	c.JSON(http.StatusOK, tag)
}

// ListAllTags returns every tag for the admin panel, pending first
func (h *TagHandler) ListAllTags(c *gin.Context) {
	tags, err := h.tagRepo.ListAll()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, tags)
}

// CreateTag handles admin tag creation. Admin-created tags skip moderation.
func (h *TagHandler) CreateTag(c *gin.Context) {
	var req models.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Tag name is required")
		return
	}

	tag, err := h.tagRepo.Create(req.Name, models.StatusApproved)
	if err != nil {
		RepoErrorResponse(c, err, "", "Tag already exists")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": tag.ID, "name": tag.Name, "message": "Tag created successfully"})
}

// ApproveTag makes a suggested tag usable publicly
func (h *TagHandler) ApproveTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid tag id")
		return
	}

	if err := h.tagRepo.Approve(id); err != nil {
		RepoErrorResponse(c, err, "Tag not found", "")
		return
	}

	h.invalidateListings()
	c.JSON(http.StatusOK, gin.H{"message": "Tag approved"})
}

// RejectTag deletes a tag outright; tags have no rejected state
func (h *TagHandler) RejectTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid tag id")
		return
	}

	if err := h.tagRepo.Delete(id); err != nil {
		RepoErrorResponse(c, err, "Tag not found", "")
		return
	}

	h.invalidateListings()
	c.JSON(http.StatusOK, gin.H{"message": "Tag rejected and deleted"})
}

// DeleteTag removes a tag
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid tag id")
		return
	}

	if err := h.tagRepo.Delete(id); err != nil {
		RepoErrorResponse(c, err, "Tag not found", "")
		return
	}

	h.invalidateListings()
	c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
}

func (h *TagHandler) invalidateListings() {
	if h.cache == nil {
		return
	}
	if err := h.cache.InvalidateChannelLists(); err != nil {
		log.Printf("Warning: failed to invalidate listing cache: %v", err)
	}
}
