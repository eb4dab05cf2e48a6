package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/response"
	apperrors "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/errors"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/service"
)

// ReportHandler handles HTTP requests for account report downloads.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new ReportHandler with the provided service dependency.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// PDFReport handles GET requests to download an account report as PDF.
//
// Endpoint: GET /api/account/{uuid}/report.pdf
// Response: 200 OK with application/pdf attachment
// Error: 400 Bad Request if account ID is invalid (validated by middleware)
// Error: 404 Not Found if account not found
// Error: 500 Internal Server Error if rendering fails
func (h *ReportHandler) PDFReport(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, "pdf", "application/pdf", h.reportService.BuildPDF)
}

// CSVReport handles GET requests to download an account report as CSV.
//
// Endpoint: GET /api/account/{uuid}/report.csv
// Response: 200 OK with text/csv attachment
func (h *ReportHandler) CSVReport(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, "csv", "text/csv", h.reportService.BuildCSV)
}

// MarkdownReport handles GET requests to download an account report as Markdown.
//
// Endpoint: GET /api/account/{uuid}/report.md
// Response: 200 OK with text/markdown attachment
func (h *ReportHandler) MarkdownReport(w http.ResponseWriter, r *http.Request) {
	h.serveReport(w, r, "md", "text/markdown", h.reportService.BuildMarkdown)
}

func (h *ReportHandler) serveReport(
	w http.ResponseWriter,
	r *http.Request,
	extension, contentType string,
	build func(accountID string) ([]byte, error),
) {
	accountID := chi.URLParam(r, "uuid")

	data, err := build(accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrAccountNotFound) {
			response.RespondError(w, http.StatusNotFound, apperrors.ErrAccountNotFound.Error(), err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to build report", err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=account-report.%s", extension))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		// Too late to change the status; the client hung up mid-download.
		return
	}
}
