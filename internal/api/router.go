package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Brokerage-Backoffice-Backend/internal/api/middleware"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/config"
	"github.com/ndewijer/Brokerage-Backoffice-Backend/internal/service"
)

// Services bundles the service layer handed to the router.
type Services struct {
	System           *service.SystemService
	Operation        *service.OperationService
	Expense          *service.ExpenseService
	RecurringExpense *service.RecurringExpenseService
	Report           *service.ReportService
	Team             *service.TeamService
}

// NewRouter creates and configures the HTTP router.
// Read routes are open; every mutating route requires the API key and time token.
func NewRouter(services Services, cfg *config.Config) http.Handler {
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
			systemHandler := handlers.NewSystemHandler(services.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/operation", func(r chi.Router) {
			operationHandler := handlers.NewOperationHandler(services.Operation)
			r.Get("/", operationHandler.Operations)
			r.With(custommiddleware.APIKeyMiddleware).Post("/", operationHandler.CreateOperation)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", operationHandler.GetOperation)

				r.Group(func(r chi.Router) {
					r.Use(custommiddleware.APIKeyMiddleware)
					r.Put("/", operationHandler.UpdateOperation)
					r.Delete("/", operationHandler.DeleteOperation)
					r.Put("/status", operationHandler.ToggleStatus)
				})
			})
		})

		r.Route("/expense", func(r chi.Router) {
			expenseHandler := handlers.NewExpenseHandler(services.Expense, services.RecurringExpense)
			r.Get("/", expenseHandler.Expenses)

			r.Group(func(r chi.Router) {
				r.Use(custommiddleware.APIKeyMiddleware)
				r.Post("/", expenseHandler.CreateExpense)
				r.Post("/recurring/process", expenseHandler.ProcessRecurring)
			})

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", expenseHandler.GetExpense)

				r.Group(func(r chi.Router) {
					r.Use(custommiddleware.APIKeyMiddleware)
					r.Put("/", expenseHandler.UpdateExpense)
					r.Delete("/", expenseHandler.DeleteExpense)
				})
			})
		})

		r.Route("/report", func(r chi.Router) {
			reportHandler := handlers.NewReportHandler(services.Report)
			r.With(custommiddleware.ValidateUUIDMiddleware).Get("/operation/{uuid}/profit", reportHandler.OperationProfit)
			r.Get("/{userUid}/totals", reportHandler.Totals)
			r.Get("/{userUid}/monthly", reportHandler.Monthly)
			r.Get("/{userUid}/cartera-activa", reportHandler.CarteraActiva)
		})

		r.Route("/team", func(r chi.Router) {
			teamHandler := handlers.NewTeamHandler(services.Team)
			r.Get("/{leaderUid}/agents", teamHandler.Agents)
		})
	})

	return r
}
