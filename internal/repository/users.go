package repository

import (
	"database/sql"
	"fmt"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
)

// CreateUser creates a new operator account in the database
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO financiera.users (username, password_hash)
		VALUES ($1, $2)
		RETURNING id`
	err := r.db.QueryRow(query, user.Username, user.PasswordHash).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByUsername retrieves a user by username
func (r *Repository) FindUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, username, password_hash
		FROM financiera.users
		WHERE username = $1`
	err := r.db.QueryRow(query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user %s: %w", username, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
