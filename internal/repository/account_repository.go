package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// AccountRepository provides data access methods for the account table.
// It handles retrieving account metadata and archived-state filtering.
type AccountRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewAccountRepository creates a new AccountRepository with the provided database connection.
func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) WithTx(tx *sql.Tx) *AccountRepository {
	return &AccountRepository{db: r.db, tx: tx}
}

func (r *AccountRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// GetAccounts retrieves accounts from the database based on filter criteria.
// The filter allows control over whether archived accounts are included and
// scoping to a single user. Returns an empty slice when nothing matches.
func (r *AccountRepository) GetAccounts(filter model.AccountFilter) ([]model.Account, error) {
	query := `
        SELECT id, user_id, name, description, currency, is_demo, is_archived, created_at
        FROM account
        WHERE 1=1
    `
	var args []any

	if !filter.IncludeArchived {
		query += " AND is_archived = ?"
		args = append(args, 0)
	}

	if filter.UserID != "" {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query account table: %w", err)
	}
	defer rows.Close()

	accounts := []model.Account{}

	for rows.Next() {
		var a model.Account
		var createdAtStr string

		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Name,
			&a.Description,
			&a.Currency,
			&a.IsDemo,
			&a.IsArchived,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account table results: %w", err)
		}

		a.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account table: %w", err)
	}

	return accounts, nil
}

// GetAccountOnID retrieves a single account by ID.
func (r *AccountRepository) GetAccountOnID(accountID string) (model.Account, error) {
	query := `
        SELECT id, user_id, name, description, currency, is_demo, is_archived, created_at
        FROM account
        WHERE id = ?
    `

	var a model.Account
	var createdAtStr string

	err := r.getQuerier().QueryRow(query, accountID).Scan(
		&a.ID,
		&a.UserID,
		&a.Name,
		&a.Description,
		&a.Currency,
		&a.IsDemo,
		&a.IsArchived,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Account{}, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to query account: %w", err)
	}

	a.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.Account{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return a, nil
}

// InsertAccount inserts a new account row.
func (r *AccountRepository) InsertAccount(ctx context.Context, a model.Account) error {
	query := `
        INSERT INTO account (id, user_id, name, description, currency, is_demo, is_archived)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `

	_, err := r.getQuerier().ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.Name,
		a.Description,
		a.Currency,
		a.IsDemo,
		a.IsArchived,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account: %w", err)
	}

	return nil
}

// UpdateAccount updates the mutable fields of an account row.
func (r *AccountRepository) UpdateAccount(ctx context.Context, a model.Account) error {
	query := `
        UPDATE account
        SET name = ?, description = ?, currency = ?, is_archived = ?
        WHERE id = ?
    `

	result, err := r.getQuerier().ExecContext(ctx, query,
		a.Name,
		a.Description,
		a.Currency,
		a.IsArchived,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// DeleteAccount removes an account; properties, mortgages, and expenses
// cascade through foreign keys.
func (r *AccountRepository) DeleteAccount(ctx context.Context, accountID string) error {
	query := `DELETE FROM account WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrAccountNotFound
	}

	return nil
}

// CountAccounts returns the number of account rows. Used by the demo
// seeding path to decide whether the store is empty.
func (r *AccountRepository) CountAccounts() (int, error) {
	var count int
	if err := r.getQuerier().QueryRow(`SELECT COUNT(*) FROM account`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}
