package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/telecat/backend/internal/database"
	"github.com/telecat/backend/internal/models"
)

type ChannelRepository struct {
	db *database.DB
}

func NewChannelRepository(db *database.DB) *ChannelRepository {
	return &ChannelRepository{db: db}
}

// Listing filters spliced into listingQuery. Tag names are unique only
// case-sensitively, so a case-insensitive name match may hit several tags;
// the name filter must stay a membership test, never a scalar comparison.
const (
	tagIDFilter = `AND c.id IN (SELECT channel_id FROM channel_tags WHERE tag_id = $1)`

	tagNameFilter = `AND c.id IN (
		SELECT channel_id FROM channel_tags
		WHERE tag_id IN (SELECT id FROM tags WHERE LOWER(name) = LOWER($1))
	)`

	substringFilter = `AND (LOWER(c.title) LIKE $1 OR LOWER(COALESCE(c.description, '')) LIKE $1)`
)

// listingQuery aggregates tag names and approved-review stats per channel.
// The ORDER BY is the fixed ranking for every public listing.
const listingQuery = `
	SELECT c.id, c.title, c.description, c.link, c.status, c.created_at,
		COALESCE(string_agg(t.name, ','), '') AS tags,
		COALESCE((SELECT AVG(r.rating) FROM reviews r WHERE r.channel_id = c.id AND r.status = 'approved'), 0) AS avg_rating,
		COALESCE((SELECT COUNT(*) FROM reviews r WHERE r.channel_id = c.id AND r.status = 'approved'), 0) AS review_count
	FROM channels c
	LEFT JOIN channel_tags ct ON c.id = ct.channel_id
	LEFT JOIN tags t ON ct.tag_id = t.id
	WHERE c.status = 'approved'
	%s
	GROUP BY c.id
	ORDER BY avg_rating DESC, review_count DESC, c.created_at DESC
`

func (r *ChannelRepository) Create(channel *models.Channel) error {
	query := `
		INSERT INTO channels (id, title, description, link, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(
		query,
		channel.ID,
		channel.Title,
		channel.Description,
		channel.Link,
		channel.Status,
		channel.CreatedAt,
	).Scan(&channel.ID, &channel.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create channel: %w", err)
	}

	return nil
}

// AttachTags links a channel to the given tag ids. Callers treat failures as
// best-effort: the channel itself is already committed.
func (r *ChannelRepository) AttachTags(channelID uuid.UUID, tagIDs []uuid.UUID) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query := `INSERT INTO channel_tags (channel_id, tag_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	for _, tagID := range tagIDs {
		if _, err := r.db.Exec(query, channelID, tagID); err != nil {
			return fmt.Errorf("failed to attach tag %s: %w", tagID, err)
		}
	}
	return nil
}

// ListApproved returns all approved channels, ranked
func (r *ChannelRepository) ListApproved() ([]models.ChannelListing, error) {
	return r.listChannels(fmt.Sprintf(listingQuery, ""))
}

// ListApprovedByTagID returns approved channels linked to a tag, ranked
func (r *ChannelRepository) ListApprovedByTagID(tagID uuid.UUID) ([]models.ChannelListing, error) {
	return r.listChannels(fmt.Sprintf(listingQuery, tagIDFilter), tagID)
}

// ListApprovedByTagName returns approved channels linked to any tag matching
// the name case-insensitively, ranked
func (r *ChannelRepository) ListApprovedByTagName(name string) ([]models.ChannelListing, error) {
	return r.listChannels(fmt.Sprintf(listingQuery, tagNameFilter), name)
}

// ListApprovedBySubstring returns approved channels whose title or description
// contains the string case-insensitively, ranked
func (r *ChannelRepository) ListApprovedBySubstring(search string) ([]models.ChannelListing, error) {
	pattern := "%" + strings.ToLower(search) + "%"
	return r.listChannels(fmt.Sprintf(listingQuery, substringFilter), pattern)
}

func (r *ChannelRepository) listChannels(query string, args ...interface{}) ([]models.ChannelListing, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	defer rows.Close()

	channels := []models.ChannelListing{}
	for rows.Next() {
		var ch models.ChannelListing
		err := rows.Scan(
			&ch.ID,
			&ch.Title,
			&ch.Description,
			&ch.Link,
			&ch.Status,
			&ch.CreatedAt,
			&ch.Tags,
			&ch.AvgRating,
			&ch.ReviewCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read channels: %w", err)
	}

	return channels, nil
}

// GetApprovedByID retrieves one approved channel with its tags
func (r *ChannelRepository) GetApprovedByID(id uuid.UUID) (*models.ChannelDetail, error) {
	query := `
		SELECT c.id, c.title, c.description, c.link, c.status, c.created_at,
			COALESCE(string_agg(t.name, ','), '') AS tags
		FROM channels c
		LEFT JOIN channel_tags ct ON c.id = ct.channel_id
		LEFT JOIN tags t ON ct.tag_id = t.id
		WHERE c.id = $1 AND c.status = 'approved'
		GROUP BY c.id
	`

	ch := &models.ChannelDetail{}
	err := r.db.QueryRow(query, id).Scan(
		&ch.ID,
		&ch.Title,
		&ch.Description,
		&ch.Link,
		&ch.Status,
		&ch.CreatedAt,
		&ch.Tags,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	return ch, nil
}

// ListPending returns pending channels with their tags, newest first
func (r *ChannelRepository) ListPending() ([]models.ChannelDetail, error) {
	query := `
		SELECT c.id, c.title, c.description, c.link, c.status, c.created_at,
			COALESCE(string_agg(t.name, ','), '') AS tags
		FROM channels c
		LEFT JOIN channel_tags ct ON c.id = ct.channel_id
		LEFT JOIN tags t ON ct.tag_id = t.id
		WHERE c.status = 'pending'
		GROUP BY c.id
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending channels: %w", err)
	}
	defer rows.Close()

	channels := []models.ChannelDetail{}
	for rows.Next() {
		var ch models.ChannelDetail
		err := rows.Scan(
			&ch.ID,
			&ch.Title,
			&ch.Description,
			&ch.Link,
			&ch.Status,
			&ch.CreatedAt,
			&ch.Tags,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel: %w", err)
		}
		channels = append(channels, ch)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read channels: %w", err)
	}

	return channels, nil
}

// UpdateStatus moves a channel through the moderation lifecycle.
// Channels are never hard-deleted; rejected ones are retained but hidden.
func (r *ChannelRepository) UpdateStatus(id uuid.UUID, status string) error {
	result, err := r.db.Exec("UPDATE channels SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update channel status: %w", err)
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
