package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/testutil"
)

func TestPropertyHandler_Properties(t *testing.T) {
	setupHandler := func(t *testing.T) (*PropertyHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPropertyService(t, db)
		return NewPropertyHandler(ps), db
	}

	t.Run("returns empty array when no properties exist", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/property/", nil)
		w := httptest.NewRecorder()

		handler.Properties(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d", w.Code)
		}

		var response []PropertyResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		if err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d items", len(response))
		}
	})

	t.Run("returns all properties across accounts", func(t *testing.T) {
		handler, db := setupHandler(t)

		a1 := testutil.CreateAccount(t, db, "Account One")
		a2 := testutil.CreateAccount(t, db, "Account Two")
		testutil.CreateProperty(t, db, a1.ID, "Property One")
		testutil.CreateProperty(t, db, a2.ID, "Property Two")

		req := httptest.NewRequest(http.MethodGet, "/api/property/", nil)
		w := httptest.NewRecorder()

		handler.Properties(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []PropertyResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Errorf("Expected 2 properties, got %d", len(response))
		}
	})

	t.Run("filters by account_id query parameter", func(t *testing.T) {
		handler, db := setupHandler(t)

		a1 := testutil.CreateAccount(t, db, "Account One")
		a2 := testutil.CreateAccount(t, db, "Account Two")
		p1 := testutil.CreateProperty(t, db, a1.ID, "Mine")
		testutil.CreateProperty(t, db, a2.ID, "Not Mine")

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/property/",
			map[string]string{"account_id": a1.ID},
		)
		w := httptest.NewRecorder()

		handler.Properties(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []PropertyResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 1 {
			t.Fatalf("Expected 1 property, got %d", len(response))
		}
		if response[0].ID != p1.ID {
			t.Errorf("Expected property ID %s, got %s", p1.ID, response[0].ID)
		}
	})

	t.Run("returns 400 for malformed account_id", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(
			http.MethodGet,
			"/api/property/",
			map[string]string{"account_id": "not-a-uuid"},
		)
		w := httptest.NewRecorder()

		handler.Properties(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestPropertyHandler_GetProperty(t *testing.T) {
	setupHandler := func(t *testing.T) (*PropertyHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPropertyService(t, db)
		return NewPropertyHandler(ps), db
	}

	t.Run("returns enriched property with computed land transfer tax", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Account")
		property := testutil.NewProperty(account.ID).
			WithName("King West Condo").
			WithPurchasePrice(500000).
			WithMarketValue(550000).
			Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/property/"+property.ID,
			map[string]string{"uuid": property.ID},
		)
		w := httptest.NewRecorder()

		handler.GetProperty(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response PropertyResponse
		err := json.NewDecoder(w.Body).Decode(&response)
		if err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}

		if response.ID != property.ID {
			t.Errorf("Expected property ID %s, got %s", property.ID, response.ID)
		}
		if response.Name != "King West Condo" {
			t.Errorf("Expected name 'King West Condo', got '%s'", response.Name)
		}

		// Toronto property at 500000: provincial 6475 plus municipal 6475
		if response.LandTransferTax != 12950 {
			t.Errorf("Expected land transfer tax 12950, got %f", response.LandTransferTax)
		}
		if response.Metrics.Appreciation != 50000 {
			t.Errorf("Expected appreciation 50000, got %f", response.Metrics.Appreciation)
		}
		if response.AnnualRent != 30000 {
			t.Errorf("Expected annual rent 30000, got %f", response.AnnualRent)
		}
		if response.Mortgage != nil {
			t.Error("Expected no mortgage on response")
		}
	})

	t.Run("manual land transfer tax override wins over schedule", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Account")
		property := testutil.NewProperty(account.ID).
			WithLandTransferTax(9999).
			Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/property/"+property.ID,
			map[string]string{"uuid": property.ID},
		)
		w := httptest.NewRecorder()

		handler.GetProperty(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response PropertyResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.LandTransferTax != 9999 {
			t.Errorf("Expected land transfer tax 9999, got %f", response.LandTransferTax)
		}
	})

	t.Run("includes mortgage and payment figures when present", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Account")
		property := testutil.CreateProperty(t, db, account.ID, "Mortgaged")
		mortgage := testutil.NewMortgage(property.ID).
			WithAmount(400000).
			WithRate(0.05).
			Build(t, db)

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/property/"+property.ID,
			map[string]string{"uuid": property.ID},
		)
		w := httptest.NewRecorder()

		handler.GetProperty(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response PropertyResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Mortgage == nil {
			t.Fatal("Expected mortgage on response")
		}
		if response.Mortgage.ID != mortgage.ID {
			t.Errorf("Expected mortgage ID %s, got %s", mortgage.ID, response.Mortgage.ID)
		}

		// 400000 at 5% over 25 years, monthly payments
		if response.MonthlyExpenses.MortgagePayment != 2338.36 {
			t.Errorf("Expected mortgage payment 2338.36, got %f", response.MonthlyExpenses.MortgagePayment)
		}
		if response.MonthlyExpenses.MortgageInterest != 1666.67 {
			t.Errorf("Expected mortgage interest 1666.67, got %f", response.MonthlyExpenses.MortgageInterest)
		}
	})

	t.Run("returns 404 for nonexistent property", func(t *testing.T) {
		handler, _ := setupHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/property/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.GetProperty(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestPropertyHandler_CreateProperty(t *testing.T) {
	setupHandler := func(t *testing.T) (*PropertyHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPropertyService(t, db)
		return NewPropertyHandler(ps), db
	}

	t.Run("creates property successfully", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Account")

		body := `{
			"accountId": "` + account.ID + `",
			"name": "New Condo",
			"address": "55 Front St",
			"city": "Toronto",
			"province": "ON",
			"type": "condo",
			"purchaseDate": "2023-03-10",
			"purchasePrice": 650000,
			"currentMarketValue": 700000,
			"monthlyRent": 2800
		}`

		req := httptest.NewRequest(http.MethodPost, "/api/property/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.CreateProperty(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response PropertyResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID == "" {
			t.Error("Expected property ID to be set")
		}
		if response.AccountID != account.ID {
			t.Errorf("Expected account ID %s, got %s", account.ID, response.AccountID)
		}
		if response.PurchaseDate != "2023-03-10" {
			t.Errorf("Expected purchase date '2023-03-10', got '%s'", response.PurchaseDate)
		}
		if response.MonthlyRent != 2800 {
			t.Errorf("Expected monthly rent 2800, got %f", response.MonthlyRent)
		}
	})

	t.Run("derives monthly rent from annual rent", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Account")

		body := `{
			"accountId": "` + account.ID + `",
			"name": "Annual Rent Property",
			"annualRent": 30000
		}`

		req := httptest.NewRequest(http.MethodPost, "/api/property/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.CreateProperty(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response PropertyResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.MonthlyRent != 2500 {
			t.Errorf("Expected monthly rent 2500, got %f", response.MonthlyRent)
		}
	})

	t.Run("returns 404 when account does not exist", func(t *testing.T) {
		handler, _ := setupHandler(t)

		body := `{
			"accountId": "` + testutil.MakeID() + `",
			"name": "Orphan Property"
		}`

		req := httptest.NewRequest(http.MethodPost, "/api/property/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.CreateProperty(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("returns 400 for negative purchase price", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Account")

		body := `{
			"accountId": "` + account.ID + `",
			"name": "Bad Property",
			"purchasePrice": -1
		}`

		req := httptest.NewRequest(http.MethodPost, "/api/property/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.CreateProperty(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 when name is missing", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Account")

		body := `{"accountId": "` + account.ID + `"}`

		req := httptest.NewRequest(http.MethodPost, "/api/property/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		handler.CreateProperty(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestPropertyHandler_UpdateProperty(t *testing.T) {
	setupHandler := func(t *testing.T) (*PropertyHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPropertyService(t, db)
		return NewPropertyHandler(ps), db
	}

	t.Run("updates market value without touching other fields", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Account")
		property := testutil.NewProperty(account.ID).
			WithName("Stable Name").
			WithMarketValue(550000).
			Build(t, db)

		body := `{"currentMarketValue": 580000}`

		req := testutil.NewRequestWithURLParamsAndBody(
			http.MethodPut,
			"/api/property/"+property.ID,
			map[string]string{"uuid": property.ID},
			body,
		)
		w := httptest.NewRecorder()

		handler.UpdateProperty(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response PropertyResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.CurrentMarketValue != 580000 {
			t.Errorf("Expected market value 580000, got %f", response.CurrentMarketValue)
		}
		if response.Name != "Stable Name" {
			t.Errorf("Expected name to be unchanged, got '%s'", response.Name)
		}
	})

	t.Run("returns 404 for nonexistent property", func(t *testing.T) {
		handler, _ := setupHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParamsAndBody(
			http.MethodPut,
			"/api/property/"+id,
			map[string]string{"uuid": id},
			`{"monthlyRent": 3000}`,
		)
		w := httptest.NewRecorder()

		handler.UpdateProperty(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestPropertyHandler_DeleteProperty(t *testing.T) {
	setupHandler := func(t *testing.T) (*PropertyHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		ps := testutil.NewTestPropertyService(t, db)
		return NewPropertyHandler(ps), db
	}

	t.Run("deletes property and cascades to mortgage and expenses", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Account")
		property := testutil.CreateProperty(t, db, account.ID, "Doomed")
		testutil.NewMortgage(property.ID).Build(t, db)
		testutil.CreateExpense(t, db, property.ID, 300, "Maintenance")

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/property/"+property.ID,
			map[string]string{"uuid": property.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteProperty(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d: %s", w.Code, w.Body.String())
		}

		var expenseCount int
		err := db.QueryRow(`SELECT COUNT(*) FROM expense WHERE property_id = ?`, property.ID).Scan(&expenseCount)
		if err != nil {
			t.Fatalf("Failed to count expenses: %v", err)
		}
		if expenseCount != 0 {
			t.Errorf("Expected expenses to cascade, found %d rows", expenseCount)
		}
	})

	t.Run("returns 404 for nonexistent property", func(t *testing.T) {
		handler, _ := setupHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/property/"+id,
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.DeleteProperty(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}
