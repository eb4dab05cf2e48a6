package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/api"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/config"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/database"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/repository"
	"github.com/tvandenberg/Property-Investment-Manager-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	mortgageRepo := repository.NewMortgageRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	eventRepo := repository.NewEventRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	eventService := service.NewEventService(eventRepo)
	dataLoaderService := service.NewDataLoaderService(mortgageRepo, expenseRepo)
	propertyService := service.NewPropertyService(propertyRepo, accountRepo, dataLoaderService, eventService)

	var demoService *service.DemoService
	if cfg.Demo.SeedEnabled {
		demoService = service.NewDemoService(db, userRepo, accountRepo, propertyRepo, mortgageRepo, expenseRepo)
	}

	accountService := service.NewAccountService(accountRepo, userRepo, propertyService, demoService, eventService)
	mortgageService := service.NewMortgageService(mortgageRepo, propertyRepo, eventService)
	expenseService := service.NewExpenseService(expenseRepo, propertyRepo, eventService)
	snapshotService := service.NewSnapshotService(accountRepo, snapshotRepo, propertyService, eventService)
	reportService := service.NewReportService(accountService, propertyService)

	// Nightly valuation snapshots
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Snapshot.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		count, err := snapshotService.MaterializeAll(ctx, time.Now())
		if err != nil {
			log.Printf("Snapshot materialization failed: %v", err)
			return
		}
		log.Printf("Materialized valuation snapshots for %d accounts", count)
	})
	if err != nil {
		log.Fatalf("Failed to schedule snapshot job: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(api.Services{
		System:   systemService,
		Account:  accountService,
		Property: propertyService,
		Mortgage: mortgageService,
		Expense:  expenseService,
		Event:    eventService,
		Snapshot: snapshotService,
		Report:   reportService,
	}, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
