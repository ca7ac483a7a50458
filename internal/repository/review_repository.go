package repository

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/telecat/backend/internal/database"
	"github.com/telecat/backend/internal/models"
)

type ReviewRepository struct {
	db *database.DB
}

func NewReviewRepository(db *database.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(review *models.Review) error {
	query := `
		INSERT INTO reviews (id, channel_id, text, nickname, is_anonymous, rating, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		query,
		review.ID,
		review.ChannelID,
		review.Text,
		review.Nickname,
		review.IsAnonymous,
		review.Rating,
		review.Status,
		review.CreatedAt,
	).Scan(&review.ID, &review.CreatedAt)

	if err != nil {
		// A broken channel reference means the review target does not exist
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// ListApprovedByChannel returns approved reviews for a channel, newest first
func (r *ReviewRepository) ListApprovedByChannel(channelID uuid.UUID) ([]models.Review, error) {
	query := `
		SELECT r.id, r.channel_id, r.text, r.nickname, r.is_anonymous, r.rating, r.status, r.created_at,
			c.title AS channel_title
		FROM reviews r
		JOIN channels c ON r.channel_id = c.id
		WHERE r.channel_id = $1 AND r.status = 'approved'
		ORDER BY r.created_at DESC
	`
	return r.listReviews(query, channelID)
}

// ListPending returns the moderation queue, newest first
func (r *ReviewRepository) ListPending() ([]models.Review, error) {
	query := `
		SELECT r.id, r.channel_id, r.text, r.nickname, r.is_anonymous, r.rating, r.status, r.created_at,
			c.title AS channel_title
		FROM reviews r
		JOIN channels c ON r.channel_id = c.id
		WHERE r.status = 'pending'
		ORDER BY r.created_at DESC
	`
	return r.listReviews(query)
}

func (r *ReviewRepository) listReviews(query string, args ...interface{}) ([]models.Review, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID,
			&review.ChannelID,
			&review.Text,
			&review.Nickname,
			&review.IsAnonymous,
			&review.Rating,
			&review.Status,
			&review.CreatedAt,
			&review.ChannelTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read reviews: %w", err)
	}

	return reviews, nil
}

// UpdateStatus moves a review through the moderation lifecycle
func (r *ReviewRepository) UpdateStatus(id uuid.UUID, status string) error {
	result, err := r.db.Exec("UPDATE reviews SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update review status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a review
func (r *ReviewRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec("DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
