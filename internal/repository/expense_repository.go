package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// ExpenseRepository provides data access methods for the expense table.
type ExpenseRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewExpenseRepository creates a new ExpenseRepository with the provided database connection.
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) WithTx(tx *sql.Tx) *ExpenseRepository {
	return &ExpenseRepository{db: r.db, tx: tx}
}

func (r *ExpenseRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func scanExpense(scan func(dest ...any) error) (model.Expense, error) {
	var e model.Expense
	var dateStr string
	var createdAtStr sql.NullString

	err := scan(
		&e.ID,
		&e.PropertyID,
		&dateStr,
		&e.Amount,
		&e.Category,
		&e.Description,
		&createdAtStr,
	)
	if err != nil {
		return model.Expense{}, err
	}

	e.Date, err = ParseTime(dateStr)
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to parse date: %w", err)
	}
	e.CreatedAt = parseNullableTime(createdAtStr)

	return e, nil
}

// GetExpenses retrieves expenses matching the filter, sorted by date in
// ascending order. Returns an empty slice when nothing matches.
func (r *ExpenseRepository) GetExpenses(filter model.ExpenseFilter) ([]model.Expense, error) {
	query := `
        SELECT id, property_id, date, amount, category, description, created_at
        FROM expense
        WHERE 1=1
    `
	var args []any

	if filter.PropertyID != "" {
		query += " AND property_id = ?"
		args = append(args, filter.PropertyID)
	}

	if filter.Category != "" {
		query += " AND category = ?"
		args = append(args, filter.Category)
	}

	if filter.Year != 0 {
		query += " AND date >= ? AND date <= ?"
		args = append(args, fmt.Sprintf("%04d-01-01", filter.Year), fmt.Sprintf("%04d-12-31", filter.Year))
	}

	query += " ORDER BY date ASC"

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense table: %w", err)
	}
	defer rows.Close()

	expenses := []model.Expense{}

	for rows.Next() {
		e, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense table results: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense table: %w", err)
	}

	return expenses, nil
}

// GetExpensesOnPropertyIDs retrieves all expenses for the given properties,
// grouped by property ID and sorted by date ascending. If propertyIDs is
// empty, returns an empty map.
func (r *ExpenseRepository) GetExpensesOnPropertyIDs(propertyIDs []string) (map[string][]model.Expense, error) {
	if len(propertyIDs) == 0 {
		return make(map[string][]model.Expense), nil
	}

	placeholders := make([]string, len(propertyIDs))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
        SELECT id, property_id, date, amount, category, description, created_at
        FROM expense
        WHERE property_id IN (` + strings.Join(placeholders, ",") + `)
        ORDER BY date ASC
    `

	args := make([]any, len(propertyIDs))
	for i, id := range propertyIDs {
		args[i] = id
	}

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expense table: %w", err)
	}
	defer rows.Close()

	expensesByProperty := make(map[string][]model.Expense)

	for rows.Next() {
		e, err := scanExpense(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense table results: %w", err)
		}
		expensesByProperty[e.PropertyID] = append(expensesByProperty[e.PropertyID], e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense table: %w", err)
	}

	return expensesByProperty, nil
}

// GetExpenseOnID retrieves a single expense by ID.
func (r *ExpenseRepository) GetExpenseOnID(expenseID string) (model.Expense, error) {
	query := `
        SELECT id, property_id, date, amount, category, description, created_at
        FROM expense
        WHERE id = ?
    `

	e, err := scanExpense(r.getQuerier().QueryRow(query, expenseID).Scan)
	if err == sql.ErrNoRows {
		return model.Expense{}, apperrors.ErrExpenseNotFound
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to query expense: %w", err)
	}

	return e, nil
}

// InsertExpense inserts a new expense row.
func (r *ExpenseRepository) InsertExpense(ctx context.Context, e model.Expense) error {
	query := `
        INSERT INTO expense (id, property_id, date, amount, category, description)
        VALUES (?, ?, ?, ?, ?, ?)
    `

	_, err := r.getQuerier().ExecContext(ctx, query,
		e.ID,
		e.PropertyID,
		e.Date.Format("2006-01-02"),
		e.Amount,
		e.Category,
		e.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// UpdateExpense updates the mutable fields of an expense row.
func (r *ExpenseRepository) UpdateExpense(ctx context.Context, e model.Expense) error {
	query := `
        UPDATE expense
        SET date = ?, amount = ?, category = ?, description = ?
        WHERE id = ?
    `

	result, err := r.getQuerier().ExecContext(ctx, query,
		e.Date.Format("2006-01-02"),
		e.Amount,
		e.Category,
		e.Description,
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}

	return nil
}

// DeleteExpense removes an expense row.
func (r *ExpenseRepository) DeleteExpense(ctx context.Context, expenseID string) error {
	query := `DELETE FROM expense WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrExpenseNotFound
	}

	return nil
}
