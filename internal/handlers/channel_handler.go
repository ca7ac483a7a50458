package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/telecat/backend/internal/cache"
	"github.com/telecat/backend/internal/models"
	"github.com/telecat/backend/internal/repository"
)

type ChannelHandler struct {
	channelRepo *repository.ChannelRepository
	tagRepo     *repository.TagRepository
	cache       *cache.RedisClient // nil when Redis is unavailable
}

func NewChannelHandler(channelRepo *repository.ChannelRepository, tagRepo *repository.TagRepository, cache *cache.RedisClient) *ChannelHandler {
	return &ChannelHandler{
		channelRepo: channelRepo,
		tagRepo:     tagRepo,
		cache:       cache,
	}
}

// ListChannels returns approved channels, optionally filtered by a search
// string or an exact tag name. A search string that matches an approved tag
// name in any case variant filters by that tag; otherwise it falls back to a
// case-insensitive substring match on title or description.
func (h *ChannelHandler) ListChannels(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))
	tag := c.Query("tag")

	if h.cache != nil {
		if payload, ok, err := h.cache.GetChannelList(search, tag); err == nil && ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}
	}

	var channels []models.ChannelListing
	var err error

	switch {
	case search != "":
		channels, err = h.searchChannels(search)
	case tag != "":
		channels, err = h.channelRepo.ListApprovedByTagName(tag)
	default:
		channels, err = h.channelRepo.ListApproved()
	}

	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
		return
	}

	if h.cache != nil {
		if payload, merr := json.Marshal(channels); merr == nil {
			if cerr := h.cache.SetChannelList(search, tag, payload); cerr != nil {
				log.Printf("Warning: failed to cache channel listing: %v", cerr)
			}
		}
	}

	c.JSON(http.StatusOK, channels)
}

func (h *ChannelHandler) searchChannels(search string) ([]models.ChannelListing, error) {
	variants := repository.SearchVariants(search)

	tag, err := h.tagRepo.FindApprovedByNames(variants)
	if err == nil {
		return h.channelRepo.ListApprovedByTagID(tag.ID)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	return h.channelRepo.ListApprovedBySubstring(search)
}

// GetChannel returns one approved channel with its tags
func (h *ChannelHandler) GetChannel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid channel id")
		return
	}

	channel, err := h.channelRepo.GetApprovedByID(id)
	if err != nil {
		RepoErrorResponse(c, err, "Channel not found", "")
		return
	}

	c.JSON(http.StatusOK, channel)
}

// CreateChannel handles a public channel submission. The channel starts out
// pending; attaching tags is best-effort and never fails the submission.
func (h *ChannelHandler) CreateChannel(c *gin.Context) {
	var req models.CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Title and link are required")
		return
	}

	channel := &models.Channel{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Link:        req.Link,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}

	if err := channel.Validate(); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.channelRepo.Create(channel); err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
		return
	}

	if err := h.channelRepo.AttachTags(channel.ID, req.Tags); err != nil {
		log.Printf("Error adding tags to channel %s: %v", channel.ID, err)
	}

	c.JSON(http.StatusOK, gin.H{"id": channel.ID, "message": "Channel added successfully"})
}

// ListPendingChannels returns the admin moderation queue
func (h *ChannelHandler) ListPendingChannels(c *gin.Context) {
	channels, err := h.channelRepo.ListPending()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, channels)
}

// ApproveChannel makes a channel publicly visible
func (h *ChannelHandler) ApproveChannel(c *gin.Context) {
	h.moderateChannel(c, models.StatusApproved, "Channel approved")
}

// RejectChannel hides a channel permanently. The row is retained.
func (h *ChannelHandler) RejectChannel(c *gin.Context) {
	h.moderateChannel(c, models.StatusRejected, "Channel rejected")
}

func (h *ChannelHandler) moderateChannel(c *gin.Context, status, message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid channel id")
		return
	}

	if err := h.channelRepo.UpdateStatus(id, status); err != nil {
		RepoErrorResponse(c, err, "Channel not found", "")
		return
	}

	h.invalidateListings()
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func (h *ChannelHandler) invalidateListings() {
	if h.cache == nil {
		return
	}
	if err := h.cache.InvalidateChannelLists(); err != nil {
		log.Printf("Warning: failed to invalidate listing cache: %v", err)
	}
}
