package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/telecat/backend/internal/cache"
	"github.com/telecat/backend/internal/models"
	"github.com/telecat/backend/internal/repository"
)

type ReviewHandler struct {
	reviewRepo *repository.ReviewRepository
	cache      *cache.RedisClient // nil when Redis is unavailable
}

func NewReviewHandler(reviewRepo *repository.ReviewRepository, cache *cache.RedisClient) *ReviewHandler {
	return &ReviewHandler{
		reviewRepo: reviewRepo,
		cache:      cache,
	}
}

// ListChannelReviews returns approved reviews for one channel, newest first
func (h *ReviewHandler) ListChannelReviews(c *gin.Context) {
	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid channel id")
		return
	}

	reviews, err := h.reviewRepo.ListApprovedByChannel(channelID)
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview handles a public review submission. The review starts out
// pending. A missing rating defaults to 5; anonymous reviews drop the
// nickname.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid channel id")
		return
	}

	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Review text is required")
		return
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	nickname := req.Nickname
	if req.IsAnonymous {
		nickname = nil
	}

	review := &models.Review{
		ID:          uuid.New(),
		ChannelID:   channelID,
		Text:        req.Text,
		Nickname:    nickname,
		IsAnonymous: req.IsAnonymous,
		Rating:      rating,
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}

	if err := review.Validate(); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reviewRepo.Create(review); err != nil {
		RepoErrorResponse(c, err, "Channel not found", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": review.ID, "message": "Review added successfully"})
}

// ListPendingReviews returns the admin moderation queue
func (h *ReviewHandler) ListPendingReviews(c *gin.Context) {
	reviews, err := h.reviewRepo.ListPending()
	if err != nil {
		ErrorResponse(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// ApproveReview makes a review publicly visible and part of the channel's
// rating aggregate
func (h *ReviewHandler) ApproveReview(c *gin.Context) {
	h.moderateReview(c, models.StatusApproved, "Review approved")
}

// RejectReview hides a review permanently. The row is retained.
func (h *ReviewHandler) RejectReview(c *gin.Context) {
	h.moderateReview(c, models.StatusRejected, "Review rejected")
}

func (h *ReviewHandler) moderateReview(c *gin.Context, status, message string) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	if err := h.reviewRepo.UpdateStatus(id, status); err != nil {
		RepoErrorResponse(c, err, "Review not found", "")
		return
	}

	h.invalidateListings()
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteReview removes a review outright
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid review id")
		return
	}

	if err := h.reviewRepo.Delete(id); err != nil {
		RepoErrorResponse(c, err, "Review not found", "")
		return
	}

	h.invalidateListings()
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

func (h *ReviewHandler) invalidateListings() {
	if h.cache == nil {
		return
	}
	if err := h.cache.InvalidateChannelLists(); err != nil {
		log.Printf("Warning: failed to invalidate listing cache: %v", err)
	}
}
