package handlers

import (
	"bytes"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/testutil"
)

func TestReportHandler_PDFReport(t *testing.T) {
	setupHandler := func(t *testing.T) (*ReportHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		rs := testutil.NewTestReportService(t, db)
		return NewReportHandler(rs), db
	}

	t.Run("returns a PDF attachment", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Report Account")
		testutil.CreateProperty(t, db, account.ID, "Reported Property")

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/account/"+account.ID+"/report.pdf",
			map[string]string{"uuid": account.ID},
		)
		w := httptest.NewRecorder()

		handler.PDFReport(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Errorf("Expected Content-Type 'application/pdf', got '%s'", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != "attachment; filename=account-report.pdf" {
			t.Errorf("Unexpected Content-Disposition '%s'", cd)
		}
		if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
			t.Error("Expected body to start with PDF magic bytes")
		}
	})

	t.Run("returns 404 for nonexistent account", func(t *testing.T) {
		handler, _ := setupHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/account/"+id+"/report.pdf",
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.PDFReport(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestReportHandler_CSVReport(t *testing.T) {
	setupHandler := func(t *testing.T) (*ReportHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		rs := testutil.NewTestReportService(t, db)
		return NewReportHandler(rs), db
	}

	t.Run("returns CSV with header and one row per property", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "CSV Account")
		testutil.CreateProperty(t, db, account.ID, "First Property")
		testutil.CreateProperty(t, db, account.ID, "Second Property")

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/account/"+account.ID+"/report.csv",
			map[string]string{"uuid": account.ID},
		)
		w := httptest.NewRecorder()

		handler.CSVReport(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
			t.Errorf("Expected Content-Type 'text/csv', got '%s'", ct)
		}

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
		}
		if !strings.HasPrefix(lines[0], "name,") {
			t.Errorf("Expected header row to start with 'name,', got '%s'", lines[0])
		}
		if !strings.Contains(w.Body.String(), "First Property") {
			t.Error("Expected CSV to contain 'First Property'")
		}
	})

	t.Run("returns 404 for nonexistent account", func(t *testing.T) {
		handler, _ := setupHandler(t)

		id := testutil.MakeID()
		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/account/"+id+"/report.csv",
			map[string]string{"uuid": id},
		)
		w := httptest.NewRecorder()

		handler.CSVReport(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
	})
}

func TestReportHandler_MarkdownReport(t *testing.T) {
	setupHandler := func(t *testing.T) (*ReportHandler, *sql.DB) {
		t.Helper()
		db := testutil.SetupTestDB(t)
		rs := testutil.NewTestReportService(t, db)
		return NewReportHandler(rs), db
	}

	t.Run("returns Markdown containing account and property names", func(t *testing.T) {
		handler, db := setupHandler(t)

		account := testutil.CreateAccount(t, db, "Markdown Account")
		testutil.CreateProperty(t, db, account.ID, "Markdown Property")

		req := testutil.NewRequestWithURLParams(
			http.MethodGet,
			"/api/account/"+account.ID+"/report.md",
			map[string]string{"uuid": account.ID},
		)
		w := httptest.NewRecorder()

		handler.MarkdownReport(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if ct := w.Header().Get("Content-Type"); ct != "text/markdown" {
			t.Errorf("Expected Content-Type 'text/markdown', got '%s'", ct)
		}

		body := w.Body.String()
		if !strings.Contains(body, "Markdown Account") {
			t.Error("Expected report to contain the account name")
		}
		if !strings.Contains(body, "Markdown Property") {
			t.Error("Expected report to contain the property name")
		}
	})
}
