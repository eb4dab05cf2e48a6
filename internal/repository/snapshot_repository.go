package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the
// valuation_snapshot table.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new repository instance.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// UpsertSnapshot writes an account valuation for a date, replacing any
// snapshot already materialized for that account and date. Re-running the
// job for the same day is therefore idempotent.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, s model.ValuationSnapshot) error {
	query := `
        INSERT INTO valuation_snapshot (
            id, account_id, date, property_count, total_value,
            total_invested, annual_cash_flow, calculated_at
        )
        VALUES (?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(account_id, date) DO UPDATE SET
            property_count = excluded.property_count,
            total_value = excluded.total_value,
            total_invested = excluded.total_invested,
            annual_cash_flow = excluded.annual_cash_flow,
            calculated_at = excluded.calculated_at
    `

	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.AccountID,
		s.Date.Format("2006-01-02"),
		s.PropertyCount,
		s.TotalValue,
		s.TotalInvested,
		s.AnnualCashFlow,
		s.CalculatedAt.UTC().Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert valuation_snapshot: %w", err)
	}

	return nil
}

// GetSnapshotHistory retrieves snapshots for the given accounts within the
// date range, streaming each record through the callback to avoid holding
// long histories in memory.
func (r *SnapshotRepository) GetSnapshotHistory(
	accountIDs []string,
	startDate, endDate time.Time,
	callback func(record model.ValuationSnapshot) error,
) error {
	if len(accountIDs) == 0 {
		return nil
	}

	placeholders := make([]string, len(accountIDs))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
        SELECT id, account_id, date, property_count, total_value,
               total_invested, annual_cash_flow, calculated_at
        FROM valuation_snapshot
        WHERE account_id IN (` + strings.Join(placeholders, ",") + `)
        AND date >= ?
        AND date <= ?
        ORDER BY date ASC
    `

	args := make([]any, 0, len(accountIDs)+2)
	for _, id := range accountIDs {
		args = append(args, id)
	}
	args = append(args, startDate.Format("2006-01-02"))
	args = append(args, endDate.Format("2006-01-02"))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return fmt.Errorf("failed to query valuation_snapshot: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var record model.ValuationSnapshot
		var dateStr, calculatedAtStr string

		err := rows.Scan(
			&record.ID,
			&record.AccountID,
			&dateStr,
			&record.PropertyCount,
			&record.TotalValue,
			&record.TotalInvested,
			&record.AnnualCashFlow,
			&calculatedAtStr,
		)
		if err != nil {
			return fmt.Errorf("failed to scan valuation_snapshot results: %w", err)
		}

		record.Date, err = ParseTime(dateStr)
		if err != nil {
			return fmt.Errorf("failed to parse date: %w", err)
		}
		record.CalculatedAt, err = ParseTime(calculatedAtStr)
		if err != nil {
			return fmt.Errorf("failed to parse date: %w", err)
		}

		if err := callback(record); err != nil {
			return err
		}
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("error iterating valuation_snapshot: %w", err)
	}

	return nil
}
