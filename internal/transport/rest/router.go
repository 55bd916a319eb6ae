package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/finance-tracker/internal/auth"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/expense"
	"github.com/frahmantamala/finance-tracker/internal/report"
	"github.com/frahmantamala/finance-tracker/internal/transport/middleware"
	"github.com/frahmantamala/finance-tracker/internal/transport/swagger"
	"github.com/frahmantamala/finance-tracker/internal/user"
	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
)

func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	authHandler *auth.Handler,
	userHandler *user.Handler,
	categoryHandler *category.Handler,
	expenseHandler *expense.Handler,
	budgetHandler *budget.Handler,
	reportHandler *report.Handler,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware. chi's RequestID feeds the request_id the
	// logging middleware reads; ours adds the externally propagated trace ID.
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		// Auth routes
		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/signup", authHandler.Signup)
			sr.Post("/login", authHandler.Login)
			sr.Post("/refresh", authHandler.RefreshToken)
			sr.Post("/logout", authHandler.Logout)
		})

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(authHandler.AuthMiddleware)

			pr.Get("/users/me", userHandler.GetCurrentUser)

			pr.Route("/categories", func(cr chi.Router) {
				cr.Get("/", categoryHandler.GetCategories)
				cr.Post("/", categoryHandler.CreateCategory)
				cr.Delete("/{name}", categoryHandler.DeleteCategory)
			})

			pr.Route("/expenses", func(er chi.Router) {
				er.Post("/", expenseHandler.CreateExpense)
				er.Get("/", expenseHandler.GetExpenses)
				er.Get("/export", expenseHandler.ExportExpenses)
				er.Delete("/{id}", expenseHandler.DeleteExpense)
			})

			pr.Route("/budgets", func(br chi.Router) {
				br.Get("/", budgetHandler.GetBudgets)
				br.Put("/", budgetHandler.SetBudget)
			})

			pr.Get("/dashboard", reportHandler.GetDashboard)
			pr.Get("/reports/categories", reportHandler.GetCategoryReport)
		})
	})
}
