package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ChannelID   uuid.UUID `json:"channel_id" db:"channel_id"`
	Text        string    `json:"text" db:"text"`
	Nickname    *string   `json:"nickname,omitempty" db:"nickname"`
	IsAnonymous bool      `json:"is_anonymous" db:"is_anonymous"`
	Rating      int       `json:"rating" db:"rating"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`

	// ChannelTitle is joined in for review listings.
	ChannelTitle string `json:"channel_title,omitempty" db:"channel_title"`
}

// Validate checks basic review fields
func (r *Review) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("review text is required")
	}
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if !r.IsAnonymous && (r.Nickname == nil || strings.TrimSpace(*r.Nickname) == "") {
		return fmt.Errorf("nickname is required unless the review is anonymous")
	}
	return nil
}

type CreateReviewRequest struct {
	Text        string  `json:"text" binding:"required"`
	Nickname    *string `json:"nickname,omitempty"`
	IsAnonymous bool    `json:"isAnonymous"`
	// Rating bounds are checked in Review.Validate so an out-of-range value
	// gets its own message instead of a generic binding error.
	Rating int `json:"rating"`
}
