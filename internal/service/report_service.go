package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/model"
)

// ReportService renders account reports from enriched property data. The
// service owns formatting only; it fetches nothing itself.
type ReportService struct {
	accountService  *AccountService
	propertyService *PropertyService
}

// NewReportService creates a new ReportService
func NewReportService(accountService *AccountService, propertyService *PropertyService) *ReportService {
	return &ReportService{
		accountService:  accountService,
		propertyService: propertyService,
	}
}

// reportData bundles everything one report needs.
type reportData struct {
	account    model.Account
	summary    model.AccountSummary
	properties []EnrichedProperty
}

func (s *ReportService) load(accountID string) (reportData, error) {
	account, err := s.accountService.GetAccount(accountID)
	if err != nil {
		return reportData{}, err
	}

	summary, err := s.accountService.GetAccountSummary(accountID)
	if err != nil {
		return reportData{}, err
	}

	properties, err := s.propertyService.GetEnrichedProperties(model.PropertyFilter{AccountID: accountID})
	if err != nil {
		return reportData{}, err
	}

	return reportData{account: account, summary: summary, properties: properties}, nil
}

// BuildPDF renders the account report as a PDF document.
func (s *ReportService) BuildPDF(accountID string) ([]byte, error) {
	data, err := s.load(accountID)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(data.account.Name, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, data.account.Name)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s - %d properties", time.Now().Format("2006-01-02"), data.summary.PropertyCount))
	pdf.Ln(10)

	headers := []string{"Property", "City", "Market Value", "Invested", "Monthly Rent", "Cash Flow/mo", "Cap Rate", "CoC Return"}
	widths := []float64{55, 30, 32, 32, 30, 30, 25, 25}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, p := range data.properties {
		cells := []string{
			p.Name,
			p.City,
			formatMoney(p.CurrentMarketValue),
			formatMoney(p.Metrics.TotalInvestment),
			formatMoney(p.MonthlyRent),
			formatMoney(p.Metrics.MonthlyCashFlow),
			fmt.Sprintf("%.2f%%", p.Metrics.CapRate),
			fmt.Sprintf("%.2f%%", p.Metrics.CashOnCashReturn),
		}
		for i, c := range cells {
			align := "R"
			if i < 2 {
				align = "L"
			}
			pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFont("Helvetica", "B", 9)
	totals := []string{
		"Total", "",
		formatMoney(data.summary.TotalValue),
		formatMoney(data.summary.TotalInvested),
		formatMoney(data.summary.MonthlyRent),
		formatMoney(data.summary.MonthlyCashFlow),
		"", "",
	}
	for i, c := range totals {
		align := "R"
		if i < 2 {
			align = "L"
		}
		pdf.CellFormat(widths[i], 6, c, "1", 0, align, false, 0, "")
	}
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF report: %w", err)
	}

	return buf.Bytes(), nil
}

// BuildCSV renders the account's properties with derived metrics as CSV.
func (s *ReportService) BuildCSV(accountID string) ([]byte, error) {
	data, err := s.load(accountID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{
		"name", "address", "city", "province", "type",
		"purchase_price", "current_market_value", "monthly_rent",
		"total_investment", "noi", "cap_rate", "monthly_cash_flow",
		"annual_cash_flow", "cash_on_cash_return", "appreciation",
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, p := range data.properties {
		row := []string{
			p.Name,
			p.Address,
			p.City,
			p.Province,
			p.Type,
			formatFloat(p.PurchasePrice),
			formatFloat(p.CurrentMarketValue),
			formatFloat(p.MonthlyRent),
			formatFloat(p.Metrics.TotalInvestment),
			formatFloat(p.Metrics.NetOperatingIncome),
			formatFloat(p.Metrics.CapRate),
			formatFloat(p.Metrics.MonthlyCashFlow),
			formatFloat(p.Metrics.AnnualCashFlow),
			formatFloat(p.Metrics.CashOnCashReturn),
			formatFloat(p.Metrics.Appreciation),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// BuildMarkdown renders the account report as a Markdown document.
func (s *ReportService) BuildMarkdown(accountID string) ([]byte, error) {
	data, err := s.load(accountID)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", data.account.Name)
	fmt.Fprintf(&b, "Generated %s\n\n", time.Now().Format("2006-01-02"))

	fmt.Fprintf(&b, "## Portfolio\n\n")
	fmt.Fprintf(&b, "- Properties: %d\n", data.summary.PropertyCount)
	fmt.Fprintf(&b, "- Total value: %s\n", formatMoney(data.summary.TotalValue))
	fmt.Fprintf(&b, "- Total invested: %s\n", formatMoney(data.summary.TotalInvested))
	fmt.Fprintf(&b, "- Monthly cash flow: %s\n", formatMoney(data.summary.MonthlyCashFlow))
	fmt.Fprintf(&b, "- Appreciation: %s\n\n", formatMoney(data.summary.TotalAppreciation))

	b.WriteString("| Property | City | Market Value | Cash Flow/mo | Cap Rate | CoC Return |\n")
	b.WriteString("|---|---|---:|---:|---:|---:|\n")
	for _, p := range data.properties {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %.2f%% | %.2f%% |\n",
			p.Name,
			p.City,
			formatMoney(p.CurrentMarketValue),
			formatMoney(p.Metrics.MonthlyCashFlow),
			p.Metrics.CapRate,
			p.Metrics.CashOnCashReturn,
		)
	}

	return []byte(b.String()), nil
}

func formatMoney(amount float64) string {
	return "$" + strconv.FormatFloat(amount, 'f', 2, 64)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
