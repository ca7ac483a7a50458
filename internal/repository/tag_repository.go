package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/telecat/backend/internal/database"
	"github.com/telecat/backend/internal/models"
)

type TagRepository struct {
	db *database.DB
}

func NewTagRepository(db *database.DB) *TagRepository {
	return &TagRepository{db: db}
}

// Create inserts a tag with the given status
func (r *TagRepository) Create(name, status string) (*models.Tag, error) {
	tag := &models.Tag{Name: name, Status: status}
	query := `INSERT INTO tags (id, name, status) VALUES ($1, $2, $3) RETURNING id`

	err := r.db.QueryRow(query, uuid.New(), name, status).Scan(&tag.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return tag, nil
}

// ListApproved returns approved tags ordered by name
func (r *TagRepository) ListApproved() ([]models.Tag, error) {
	return r.listTags("SELECT id, name, status FROM tags WHERE status = 'approved' ORDER BY name ASC")
}

// ListAll returns every tag, pending first ('pending' sorts after 'approved'
// so status DESC puts the moderation queue on top), then by name
func (r *TagRepository) ListAll() ([]models.Tag, error) {
	return r.listTags("SELECT id, name, status FROM tags ORDER BY status DESC, name ASC")
}

func (r *TagRepository) listTags(query string) ([]models.Tag, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Status); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	return tags, nil
}

// FindApprovedByNames probes the approved tags for the candidate names in one
// query. The first candidate (by input order) that exists wins.
func (r *TagRepository) FindApprovedByNames(names []string) (*models.Tag, error) {
	if len(names) == 0 {
		return nil, ErrNotFound
	}

	query := `SELECT id, name FROM tags WHERE status = 'approved' AND name = ANY($1)`
	rows, err := r.db.Query(query, pq.Array(names))
	if err != nil {
		return nil, fmt.Errorf("failed to probe tags: %w", err)
	}
	defer rows.Close()

	found := map[string]uuid.UUID{}
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		found[name] = id
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	for _, name := range names {
		if id, ok := found[name]; ok {
			return &models.Tag{ID: id, Name: name, Status: models.StatusApproved}, nil
		}
	}

	return nil, ErrNotFound
}

// Approve marks a tag approved
func (r *TagRepository) Approve(id uuid.UUID) error {
	result, err := r.db.Exec("UPDATE tags SET status = 'approved' WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to approve tag: %w", err)
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

// Delete removes a tag. Rejecting a tag is a delete, there is no rejected
// state for tags.
func (r *TagRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec("DELETE FROM tags WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
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

// GetByID retrieves a tag by id
func (r *TagRepository) GetByID(id uuid.UUID) (*models.Tag, error) {
	tag := &models.Tag{}
	err := r.db.QueryRow("SELECT id, name, status FROM tags WHERE id = $1", id).
		Scan(&tag.ID, &tag.Name, &tag.Status)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}

// SearchVariants builds the deduplicated candidate set of case variants used
// to match a search string against tag names: as typed, Capitalized, UPPER,
// lower. Order is preserved so the first variant found wins.
func SearchVariants(search string) []string {
	trimmed := strings.TrimSpace(search)
	if trimmed == "" {
		return nil
	}

	variants := []string{
		trimmed,
		capitalize(trimmed),
		strings.ToUpper(trimmed),
		strings.ToLower(trimmed),
	}

	seen := make(map[string]struct{}, len(variants))
	unique := make([]string, 0, len(variants))
	for _, v := range variants {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		unique = append(unique, v)
	}

	return unique
}

// capitalize upper-cases the first rune and lower-cases the rest
func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
