package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/config"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/database"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/repository"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/service"
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

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if !cfg.Auth.Configured {
		log.Println("INTERNAL_API_KEY is not set; mutating routes will reject every request")
	}

	// Create repositories
	operationRepo := repository.NewOperationRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Create services
	services := api.Services{
		System: service.NewSystemService(db, map[string]bool{
			"recurring_expenses": cfg.Scheduler.Enabled,
			"team_ranking":       true,
		}),
		Operation:        service.NewOperationService(operationRepo),
		Expense:          service.NewExpenseService(expenseRepo),
		RecurringExpense: service.NewRecurringExpenseService(expenseRepo),
		Report:           service.NewReportService(operationRepo),
		Team:             service.NewTeamService(userRepo, operationRepo),
	}

	var scheduler *service.RecurringScheduler
	if cfg.Scheduler.Enabled {
		scheduler, err = service.NewRecurringScheduler(services.RecurringExpense, cfg.Scheduler.Schedule)
		if err != nil {
			log.Fatalf("Failed to create scheduler: %v", err)
		}
		scheduler.Start()
		log.Printf("Recurring expense scheduler started (%s)", cfg.Scheduler.Schedule)
	}

	// Create router
	router := api.NewRouter(services, cfg)

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

	if scheduler != nil {
		select {
		case <-scheduler.Stop().Done():
		case <-ctx.Done():
		}
	}

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
