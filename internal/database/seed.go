package database

import (
	"database/sql"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultTags are seeded as approved on first run so the catalog is
// browsable before any moderation happens.
var DefaultTags = []string{
	"Новости",
	"Технологии",
	"Развлечения",
	"Образование",
	"Спорт",
	"Музыка",
	"Кино",
	"Игры",
}

// Seed inserts the bootstrap admin account and the default tag set.
// Safe to call on every startup.
func Seed(db *sql.DB, adminUsername, adminPassword string) error {
	if err := ensureDefaultAdmin(db, adminUsername, adminPassword); err != nil {
		return err
	}
	return seedDefaultTags(db)
}

func ensureDefaultAdmin(db *sql.DB, username, password string) error {
	var exists bool
	err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM admins WHERE username = $1)", username).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check default admin: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default admin password: %w", err)
	}

	_, err = db.Exec(
		"INSERT INTO admins (username, password_hash) VALUES ($1, $2) ON CONFLICT (username) DO NOTHING",
		username, string(hash),
	)
	if err != nil {
		return fmt.Errorf("failed to create default admin: %w", err)
	}
	return nil
}

func seedDefaultTags(db *sql.DB) error {
	for _, name := range DefaultTags {
		_, err := db.Exec(
			"INSERT INTO tags (name, status) VALUES ($1, 'approved') ON CONFLICT (name) DO NOTHING",
			name,
		)
		if err != nil {
			return fmt.Errorf("failed to seed tag %q: %w", name, err)
		}
	}
	return nil
}
