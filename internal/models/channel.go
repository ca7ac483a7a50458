package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Channel struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description *string   `json:"description,omitempty" db:"description"`
	Link        string    `json:"link" db:"link"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// ChannelListing is a channel row decorated with the aggregates the public
// listing exposes: comma-joined tag names and approved-review stats.
type ChannelListing struct {
	Channel
	Tags        string  `json:"tags"`
	AvgRating   float64 `json:"avgRating"`
	ReviewCount int     `json:"reviewCount"`
}

// ChannelDetail is a single channel with its comma-joined tag names.
type ChannelDetail struct {
	Channel
	Tags string `json:"tags"`
}

// Validate checks basic channel fields
func (c *Channel) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if strings.TrimSpace(c.Link) == "" {
		return fmt.Errorf("link is required")
	}
	return nil
}

type CreateChannelRequest struct {
	Title       string      `json:"title" binding:"required"`
	Description *string     `json:"description,omitempty"`
	Link        string      `json:"link" binding:"required"`
	Tags        []uuid.UUID `json:"tags,omitempty"`
}
