package repository

import (
	"context"
	"database/sql"
	"fmt"

	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// PropertyRepository provides data access methods for the property table.
type PropertyRepository struct {
	db *sql.DB
	tx *sql.Tx
}

// NewPropertyRepository creates a new PropertyRepository with the provided database connection.
func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) WithTx(tx *sql.Tx) *PropertyRepository {
	return &PropertyRepository{db: r.db, tx: tx}
}

func (r *PropertyRepository) getQuerier() querier {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

const propertyColumns = `
    id, account_id, name, address, city, province, type, unit_configuration,
    size_sq_ft, year_built, purchase_date, purchase_price, closing_costs,
    renovation_costs, initial_renovations, land_transfer_tax,
    current_market_value, monthly_rent, created_at
`

// scanProperty scans one property row; the column order must match
// propertyColumns.
func scanProperty(scan func(dest ...any) error) (model.Property, error) {
	var p model.Property
	var purchaseDateStr, createdAtStr sql.NullString
	var landTransferTax sql.NullFloat64

	err := scan(
		&p.ID,
		&p.AccountID,
		&p.Name,
		&p.Address,
		&p.City,
		&p.Province,
		&p.Type,
		&p.UnitConfiguration,
		&p.SizeSqFt,
		&p.YearBuilt,
		&purchaseDateStr,
		&p.PurchasePrice,
		&p.ClosingCosts,
		&p.RenovationCosts,
		&p.InitialRenovations,
		&landTransferTax,
		&p.CurrentMarketValue,
		&p.MonthlyRent,
		&createdAtStr,
	)
	if err != nil {
		return model.Property{}, err
	}

	p.PurchaseDate = parseNullableTime(purchaseDateStr)
	p.CreatedAt = parseNullableTime(createdAtStr)
	if landTransferTax.Valid {
		value := landTransferTax.Float64
		p.LandTransferTax = &value
	}

	return p, nil
}

// GetProperties retrieves properties matching the filter, oldest first.
// Returns an empty slice when nothing matches.
func (r *PropertyRepository) GetProperties(filter model.PropertyFilter) ([]model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM property WHERE 1=1`
	var args []any

	if filter.AccountID != "" {
		query += " AND account_id = ?"
		args = append(args, filter.AccountID)
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.getQuerier().Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query property table: %w", err)
	}
	defer rows.Close()

	properties := []model.Property{}

	for rows.Next() {
		p, err := scanProperty(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property table results: %w", err)
		}
		properties = append(properties, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property table: %w", err)
	}

	return properties, nil
}

// GetPropertyOnID retrieves a single property by ID.
func (r *PropertyRepository) GetPropertyOnID(propertyID string) (model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM property WHERE id = ?`

	p, err := scanProperty(r.getQuerier().QueryRow(query, propertyID).Scan)
	if err == sql.ErrNoRows {
		return model.Property{}, apperrors.ErrPropertyNotFound
	}
	if err != nil {
		return model.Property{}, fmt.Errorf("failed to query property: %w", err)
	}

	return p, nil
}

// InsertProperty inserts a new property row.
func (r *PropertyRepository) InsertProperty(ctx context.Context, p model.Property) error {
	query := `
        INSERT INTO property (
            id, account_id, name, address, city, province, type,
            unit_configuration, size_sq_ft, year_built, purchase_date,
            purchase_price, closing_costs, renovation_costs,
            initial_renovations, land_transfer_tax, current_market_value,
            monthly_rent
        )
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	var purchaseDate any
	if !p.PurchaseDate.IsZero() {
		purchaseDate = p.PurchaseDate.Format("2006-01-02")
	}

	var landTransferTax any
	if p.LandTransferTax != nil {
		landTransferTax = *p.LandTransferTax
	}

	_, err := r.getQuerier().ExecContext(ctx, query,
		p.ID,
		p.AccountID,
		p.Name,
		p.Address,
		p.City,
		p.Province,
		p.Type,
		p.UnitConfiguration,
		p.SizeSqFt,
		p.YearBuilt,
		purchaseDate,
		p.PurchasePrice,
		p.ClosingCosts,
		p.RenovationCosts,
		p.InitialRenovations,
		landTransferTax,
		p.CurrentMarketValue,
		p.MonthlyRent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}

	return nil
}

// UpdateProperty updates the mutable fields of a property row.
func (r *PropertyRepository) UpdateProperty(ctx context.Context, p model.Property) error {
	query := `
        UPDATE property
        SET name = ?, address = ?, city = ?, province = ?, type = ?,
            unit_configuration = ?, size_sq_ft = ?, year_built = ?,
            purchase_date = ?, purchase_price = ?, closing_costs = ?,
            renovation_costs = ?, initial_renovations = ?,
            land_transfer_tax = ?, current_market_value = ?, monthly_rent = ?
        WHERE id = ?
    `

	var purchaseDate any
	if !p.PurchaseDate.IsZero() {
		purchaseDate = p.PurchaseDate.Format("2006-01-02")
	}

	var landTransferTax any
	if p.LandTransferTax != nil {
		landTransferTax = *p.LandTransferTax
	}

	result, err := r.getQuerier().ExecContext(ctx, query,
		p.Name,
		p.Address,
		p.City,
		p.Province,
		p.Type,
		p.UnitConfiguration,
		p.SizeSqFt,
		p.YearBuilt,
		purchaseDate,
		p.PurchasePrice,
		p.ClosingCosts,
		p.RenovationCosts,
		p.InitialRenovations,
		landTransferTax,
		p.CurrentMarketValue,
		p.MonthlyRent,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}

// DeleteProperty removes a property; its mortgage and expenses cascade.
func (r *PropertyRepository) DeleteProperty(ctx context.Context, propertyID string) error {
	query := `DELETE FROM property WHERE id = ?`

	result, err := r.getQuerier().ExecContext(ctx, query, propertyID)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return apperrors.ErrPropertyNotFound
	}

	return nil
}
