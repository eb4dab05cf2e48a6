package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA timezone = 'UTC'",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migration.
//
//nolint:funlen // Database schema DDL
func createTestSchema(db *sql.DB) error {
	schema := `
		-- User table
		CREATE TABLE IF NOT EXISTS user (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			display_name VARCHAR(100) NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		-- Account table
		CREATE TABLE IF NOT EXISTS account (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			user_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			description TEXT,
			currency VARCHAR(3) NOT NULL DEFAULT 'CAD',
			is_demo BOOLEAN DEFAULT FALSE NOT NULL,
			is_archived BOOLEAN DEFAULT FALSE NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(user_id) REFERENCES user(id) ON DELETE CASCADE
		);

		-- Property table
		CREATE TABLE IF NOT EXISTS property (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			account_id VARCHAR(36) NOT NULL,
			name VARCHAR(100) NOT NULL,
			address VARCHAR(255),
			city VARCHAR(100),
			province VARCHAR(2),
			type VARCHAR(50),
			unit_configuration VARCHAR(50),
			size_sq_ft FLOAT DEFAULT 0 NOT NULL,
			year_built INTEGER DEFAULT 0 NOT NULL,
			purchase_date DATE,
			purchase_price FLOAT DEFAULT 0 NOT NULL,
			closing_costs FLOAT DEFAULT 0 NOT NULL,
			renovation_costs FLOAT DEFAULT 0 NOT NULL,
			initial_renovations FLOAT DEFAULT 0 NOT NULL,
			land_transfer_tax FLOAT,
			current_market_value FLOAT DEFAULT 0 NOT NULL,
			monthly_rent FLOAT DEFAULT 0 NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(account_id) REFERENCES account(id) ON DELETE CASCADE
		);

		-- Mortgage table (one per property)
		CREATE TABLE IF NOT EXISTS mortgage (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			property_id VARCHAR(36) NOT NULL UNIQUE,
			lender VARCHAR(100),
			original_amount FLOAT DEFAULT 0 NOT NULL,
			interest_rate FLOAT DEFAULT 0 NOT NULL,
			rate_type VARCHAR(10) NOT NULL DEFAULT 'fixed',
			term_months INTEGER DEFAULT 0 NOT NULL,
			amortization_years INTEGER DEFAULT 0 NOT NULL,
			payment_frequency VARCHAR(25) NOT NULL DEFAULT 'monthly',
			start_date DATE,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(property_id) REFERENCES property(id) ON DELETE CASCADE
		);

		-- Expense table
		CREATE TABLE IF NOT EXISTS expense (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			property_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			amount FLOAT DEFAULT 0 NOT NULL,
			category VARCHAR(30) NOT NULL,
			description TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(property_id) REFERENCES property(id) ON DELETE CASCADE
		);

		CREATE INDEX IF NOT EXISTS idx_expense_property_date ON expense(property_id, date);

		-- Event log table
		CREATE TABLE IF NOT EXISTS event (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			category VARCHAR(20) NOT NULL,
			level VARCHAR(10) NOT NULL,
			message TEXT NOT NULL,
			entity_id VARCHAR(36),
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_event_created_at ON event(created_at);

		-- Valuation snapshot table
		CREATE TABLE IF NOT EXISTS valuation_snapshot (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			account_id VARCHAR(36) NOT NULL,
			date DATE NOT NULL,
			property_count INTEGER DEFAULT 0 NOT NULL,
			total_value FLOAT DEFAULT 0 NOT NULL,
			total_invested FLOAT DEFAULT 0 NOT NULL,
			annual_cash_flow FLOAT DEFAULT 0 NOT NULL,
			calculated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY(account_id) REFERENCES account(id) ON DELETE CASCADE,
			CONSTRAINT unique_account_date UNIQUE (account_id, date)
		);
	`

	_, err := db.Exec(schema)
	return err
}
