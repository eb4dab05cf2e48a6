package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// MortgageRepository provides data access methods for the mortgage table.
// Each property owns at most one mortgage, enforced by a UNIQUE constraint
// on property_id.
type MortgageRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewMortgageRepository creates a new MortgageRepository with the provided database connection.
func NewMortgageRepository(db *sql.DB) *MortgageRepository {
	return &MortgageRepository{db: db}
}

func (r *MortgageRepository) WithTx(tx *sql.Tx) *MortgageRepository {
	return &MortgageRepository{db: r.db, tx: tx}
}

func (r *MortgageRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const mortgageColumns = `
    id, property_id, lender, original_amount, interest_rate, rate_type,
    term_months, amortization_years, payment_frequency, start_date, created_at
`

func scanMortgage(scan func(dest ...any) error) (model.Mortgage, error) {
	var m model.Mortgage
	var startDateStr, createdAtStr sql.NullString

	err := scan(
		&m.ID,
		&m.PropertyID,
		&m.Lender,
		&m.OriginalAmount,
		&m.InterestRate,
		&m.RateType,
		&m.TermMonths,
		&m.AmortizationYears,
		&m.PaymentFrequency,
		&startDateStr,
		&createdAtStr,
	)
	if err != nil {
		return model.Mortgage{}, err
	}

	m.StartDate = parseNullableTime(startDateStr)
	m.CreatedAt = parseNullableTime(createdAtStr)

	return m, nil
}

// GetMortgageOnID retrieves a single mortgage by ID.
func (r *MortgageRepository) GetMortgageOnID(mortgageID string) (model.Mortgage, error) {
	query := `SELECT ` + mortgageColumns + ` FROM mortgage WHERE id = ?`

	m, err := scanMortgage(r.getQuerier().QueryRow(query, mortgageID).Scan)
	if err == sql.ErrNoRows {
		return model.Mortgage{}, apperrors.ErrMortgageNotFound
	}
	if err != nil {
		return model.Mortgage{}, fmt.Errorf("failed to query mortgage: %w", err)
	}

	return m, nil
}

// GetMortgageOnPropertyID retrieves the mortgage owned by a property.
// Returns ErrMortgageNotFound when the property is unmortgaged.
func (r *MortgageRepository) GetMortgageOnPropertyID(propertyID string) (model.Mortgage, error) {
	query := `SELECT ` + mortgageColumns + ` FROM mortgage WHERE property_id = ?`

	m, err := scanMortgage(r.getQuerier().QueryRow(query, propertyID).Scan)
	if err == sql.ErrNoRows {
		return model.Mortgage{}, apperrors.ErrMortgageNotFound
	}
	if err != nil {
		return model.Mortgage{}, fmt.Errorf("failed to query mortgage: %w", err)
	}

	return m, nil
}

// GetMortgagesOnPropertyIDs retrieves mortgages for the given properties,
// keyed by property ID. Properties without a mortgage are absent from the
// map. If propertyIDs is empty, returns an empty map.
func (r *MortgageRepository) GetMortgagesOnPropertyIDs(propertyIDs []string) (map[string]model.Mortgage, error) {
	if len(propertyIDs) == 0 {
		return make(map[string]model.Mortgage), nil
	}

	placeholders := make([]string, len(propertyIDs))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `SELECT ` + mortgageColumns + `
        FROM mortgage
        WHERE property_id IN (` + strings.Join(placeholders, ",") + `)`

	args := make([]any, len(propertyIDs))
	for i, id := range propertyIDs {
		args[i] = id
	}

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mortgage table: %w", err)
	}
	defer rows.Close()

	mortgagesByProperty := make(map[string]model.Mortgage)

	for rows.Next() {
		m, err := scanMortgage(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan mortgage table results: %w", err)
		}
		mortgagesByProperty[m.PropertyID] = m
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mortgage table: %w", err)
	}

	return mortgagesByProperty, nil
}

// InsertMortgage inserts a new mortgage row. The UNIQUE constraint on
// property_id surfaces as ErrMortgageExists.
func (r *MortgageRepository) InsertMortgage(ctx context.Context, m model.Mortgage) error {
	query := `
        INSERT INTO mortgage (
            id, property_id, lender, original_amount, interest_rate,
            rate_type, term_months, amortization_years, payment_frequency,
            start_date
        )
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	var startDate any
	if !m.StartDate.IsZero() {
		startDate = m.StartDate.Format("2006-01-02")
	}

	_, err := r.getQuerier().ExecContext(ctx, query,
		m.ID,
		m.PropertyID,
		m.Lender,
		m.OriginalAmount,
		m.InterestRate,
		m.RateType,
		m.TermMonths,
		m.AmortizationYears,
		m.PaymentFrequency,
		startDate,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperrors.ErrMortgageExists
		}
		return fmt.Errorf("failed to insert mortgage: %w", err)
	}

	return nil
}

// UpdateMortgage updates the mutable fields of a mortgage row.
func (r *MortgageRepository) UpdateMortgage(ctx context.Context, m model.Mortgage) error {
	query := `
        UPDATE mortgage
        SET lender = ?, original_amount = ?, interest_rate = ?, rate_type = ?,
            term_months = ?, amortization_years = ?, payment_frequency = ?,
            start_date = ?
        WHERE id = ?
    `

	var startDate any
	if !m.StartDate.IsZero() {
		startDate = m.StartDate.Format("2006-01-02")
	}

	result, err := r.getQuerier().ExecContext(ctx, query,
		m.Lender,
		m.OriginalAmount,
		m.InterestRate,
		m.RateType,
		m.TermMonths,
		m.AmortizationYears,
		m.PaymentFrequency,
		startDate,
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update mortgage: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrMortgageNotFound
	}

	return nil
}

// DeleteMortgage removes a mortgage row.
func (r *MortgageRepository) DeleteMortgage(ctx context.Context, mortgageID string) error {
	query := `DELETE FROM mortgage WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, mortgageID)
	if err != nil {
		return fmt.Errorf("failed to delete mortgage: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrMortgageNotFound
	}

	return nil
}
