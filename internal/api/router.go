package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/handlers"
	custommiddleware "github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api/middleware"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/config"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/service"
)

// Services bundles the service dependencies the router passes on to handlers.
type Services struct {
	System   *service.SystemService
	Account  *service.AccountService
	Property *service.PropertyService
	Mortgage *service.MortgageService
	Expense  *service.ExpenseService
	Event    *service.EventService
	Snapshot *service.SnapshotService
	Report   *service.ReportService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/account", func(r chi.Router) {
			accountHandler := handlers.NewAccountHandler(svc.Account, svc.Snapshot)
			reportHandler := handlers.NewReportHandler(svc.Report)
			r.Get("/", accountHandler.Accounts)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", accountHandler.CreateAccount)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", accountHandler.GetAccount)
				r.With(custommiddleware.APIKeyMiddleware).Put("/", accountHandler.UpdateAccount)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", accountHandler.DeleteAccount)
				r.Get("/summary", accountHandler.AccountSummary)
				r.Get("/history", accountHandler.AccountHistory)
				r.Get("/report.pdf", reportHandler.PDFReport)
				r.Get("/report.csv", reportHandler.CSVReport)
				r.Get("/report.md", reportHandler.MarkdownReport)
			})
		})

		r.Route("/property", func(r chi.Router) {
			propertyHandler := handlers.NewPropertyHandler(svc.Property)
			r.Get("/", propertyHandler.Properties)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", propertyHandler.CreateProperty)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", propertyHandler.GetProperty)
				r.With(custommiddleware.APIKeyMiddleware).Put("/", propertyHandler.UpdateProperty)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", propertyHandler.DeleteProperty)
			})
		})

		r.Route("/mortgage", func(r chi.Router) {
			mortgageHandler := handlers.NewMortgageHandler(svc.Mortgage)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", mortgageHandler.CreateMortgage)

			r.Route("/property/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", mortgageHandler.MortgagePerProperty)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", mortgageHandler.GetMortgage)
				r.With(custommiddleware.APIKeyMiddleware).Put("/", mortgageHandler.UpdateMortgage)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", mortgageHandler.DeleteMortgage)
			})
		})

		r.Route("/expense", func(r chi.Router) {
			expenseHandler := handlers.NewExpenseHandler(svc.Expense)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", expenseHandler.CreateExpense)

			r.Route("/property/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", expenseHandler.ExpensesPerProperty)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", expenseHandler.GetExpense)
				r.With(custommiddleware.APIKeyMiddleware).Put("/", expenseHandler.UpdateExpense)
				r.With(custommiddleware.APIKeyMiddleware).Delete("/", expenseHandler.DeleteExpense)
			})
		})

		r.Route("/event", func(r chi.Router) {
			eventHandler := handlers.NewEventHandler(svc.Event)
			r.Get("/", eventHandler.Events)
		})
	})

	return r
}
