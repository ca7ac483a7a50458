package repository

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/telecat/backend/internal/database"
	"github.com/telecat/backend/internal/models"
)

type AdminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(admin *models.Admin) error {
	query := `
		INSERT INTO admins (id, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(query, admin.ID, admin.Username, admin.PasswordHash).Scan(&admin.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

// GetByUsername retrieves an admin by exact username
func (r *AdminRepository) GetByUsername(username string) (*models.Admin, error) {
	query := `SELECT id, username, password_hash FROM admins WHERE username = $1`

	admin := &models.Admin{}
	err := r.db.QueryRow(query, username).Scan(&admin.ID, &admin.Username, &admin.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return admin, nil
}

// List returns every admin account without password hashes
func (r *AdminRepository) List() ([]models.Admin, error) {
	rows, err := r.db.Query("SELECT id, username FROM admins")
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	defer rows.Close()

	admins := []models.Admin{}
	for rows.Next() {
		var admin models.Admin
		if err := rows.Scan(&admin.ID, &admin.Username); err != nil {
			return nil, fmt.Errorf("failed to scan admin: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read admins: %w", err)
	}

	return admins, nil
}

// Delete removes an admin account
func (r *AdminRepository) Delete(id uuid.UUID) error {
	result, err := r.db.Exec("DELETE FROM admins WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete admin: %w", err)
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
