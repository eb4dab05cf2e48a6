package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) WithTx(tx *sql.Tx) *UserRepository {
	return &UserRepository{db: r.db, tx: tx}
}

func (r *UserRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetUserOnID retrieves a single user by ID.
func (r *UserRepository) GetUserOnID(userID string) (model.User, error) {
	query := `
        SELECT id, email, display_name, created_at
        FROM user
        WHERE id = ?
    `

	var u model.User
	var createdAtStr string

	err := r.getQuerier().QueryRow(query, userID).Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	u.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return u, nil
}

// GetFirstUser retrieves the oldest user row. Used as the default owner
// when an account is created without an explicit user.
func (r *UserRepository) GetFirstUser() (model.User, error) {
	query := `
        SELECT id, email, display_name, created_at
        FROM user
        ORDER BY created_at ASC, id ASC
        LIMIT 1
    `

	var u model.User
	var createdAtStr string

	err := r.getQuerier().QueryRow(query).Scan(
		&u.ID,
		&u.Email,
		&u.DisplayName,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	u.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return u, nil
}

// InsertUser inserts a new user row.
func (r *UserRepository) InsertUser(ctx context.Context, u model.User) error {
	query := `
        INSERT INTO user (id, email, display_name)
        VALUES (?, ?, ?)
    `

	_, err := r.getQuerier().ExecContext(ctx, query,
		u.ID,
		u.Email,
		u.DisplayName,
	)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// CountUsers returns the number of user rows.
func (r *UserRepository) CountUsers() (int, error) {
	var count int
	if err := r.getQuerier().QueryRow(`SELECT COUNT(*) FROM user`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
