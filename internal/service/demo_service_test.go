package service_test

import (
	"context"
	"testing"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/testutil"
)

// TestDemoService_SeedIfEmpty tests the demo seeding path.
//
// WHY: The demo account is the first thing a new user sees. Seeding must
// happen exactly once on an empty store and must never fire again once any
// account exists, or user data would get demo rows mixed in.
func TestDemoService_SeedIfEmpty(t *testing.T) {
	t.Run("seeds demo account on empty store", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDemoService(t, db)

		err := svc.SeedIfEmpty(context.Background())
		if err != nil {
			t.Fatalf("SeedIfEmpty() returned unexpected error: %v", err)
		}

		var accountCount int
		if err := db.QueryRow(`SELECT COUNT(*) FROM account`).Scan(&accountCount); err != nil {
			t.Fatalf("Failed to count accounts: %v", err)
		}
		if accountCount != 1 {
			t.Fatalf("Expected 1 account, got %d", accountCount)
		}

		var isDemo bool
		if err := db.QueryRow(`SELECT is_demo FROM account`).Scan(&isDemo); err != nil {
			t.Fatalf("Failed to read demo flag: %v", err)
		}
		if !isDemo {
			t.Error("Expected seeded account to be flagged as demo")
		}

		var propertyCount int
		if err := db.QueryRow(`SELECT COUNT(*) FROM property`).Scan(&propertyCount); err != nil {
			t.Fatalf("Failed to count properties: %v", err)
		}
		if propertyCount != 2 {
			t.Errorf("Expected 2 demo properties, got %d", propertyCount)
		}

		var mortgageCount int
		if err := db.QueryRow(`SELECT COUNT(*) FROM mortgage`).Scan(&mortgageCount); err != nil {
			t.Fatalf("Failed to count mortgages: %v", err)
		}
		if mortgageCount != 2 {
			t.Errorf("Expected 2 demo mortgages, got %d", mortgageCount)
		}

		var expenseCount int
		if err := db.QueryRow(`SELECT COUNT(*) FROM expense`).Scan(&expenseCount); err != nil {
			t.Fatalf("Failed to count expenses: %v", err)
		}
		if expenseCount != 8 {
			t.Errorf("Expected 8 demo expenses, got %d", expenseCount)
		}
	})

	t.Run("is a no-op when an account already exists", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDemoService(t, db)

		existing := testutil.CreateAccount(t, db, "User Account")

		err := svc.SeedIfEmpty(context.Background())
		if err != nil {
			t.Fatalf("SeedIfEmpty() returned unexpected error: %v", err)
		}

		var accountCount int
		if err := db.QueryRow(`SELECT COUNT(*) FROM account`).Scan(&accountCount); err != nil {
			t.Fatalf("Failed to count accounts: %v", err)
		}
		if accountCount != 1 {
			t.Errorf("Expected only the existing account, got %d rows", accountCount)
		}

		var id string
		if err := db.QueryRow(`SELECT id FROM account`).Scan(&id); err != nil {
			t.Fatalf("Failed to read account: %v", err)
		}
		if id != existing.ID {
			t.Errorf("Expected account %s to be untouched, got %s", existing.ID, id)
		}
	})

	t.Run("is idempotent across repeated calls", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestDemoService(t, db)

		for i := 0; i < 3; i++ {
			if err := svc.SeedIfEmpty(context.Background()); err != nil {
				t.Fatalf("SeedIfEmpty() call %d returned unexpected error: %v", i+1, err)
			}
		}

		var accountCount int
		if err := db.QueryRow(`SELECT COUNT(*) FROM account`).Scan(&accountCount); err != nil {
			t.Fatalf("Failed to count accounts: %v", err)
		}
		if accountCount != 1 {
			t.Errorf("Expected 1 account after repeated seeding, got %d", accountCount)
		}
	})

	t.Run("account list read triggers the seed", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestAccountServiceWithDemo(t, db)

		accounts, err := svc.GetAccounts(context.Background(), model.AccountFilter{})
		if err != nil {
			t.Fatalf("GetAccounts() returned unexpected error: %v", err)
		}

		if len(accounts) != 1 {
			t.Fatalf("Expected the demo account, got %d accounts", len(accounts))
		}
		if !accounts[0].IsDemo {
			t.Error("Expected returned account to be the demo account")
		}
		if accounts[0].Name != "Demo Portfolio" {
			t.Errorf("Expected name 'Demo Portfolio', got '%s'", accounts[0].Name)
		}
	})
}
