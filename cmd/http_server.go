package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/auth"
	authsqlite "github.com/frahmantamala/finance-tracker/internal/auth/sqlite"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	budgetsqlite "github.com/frahmantamala/finance-tracker/internal/budget/sqlite"
	"github.com/frahmantamala/finance-tracker/internal/category"
	categorysqlite "github.com/frahmantamala/finance-tracker/internal/category/sqlite"
	"github.com/frahmantamala/finance-tracker/internal/expense"
	expensesqlite "github.com/frahmantamala/finance-tracker/internal/expense/sqlite"
	"github.com/frahmantamala/finance-tracker/internal/report"
	"github.com/frahmantamala/finance-tracker/internal/transport/rest"
	"github.com/frahmantamala/finance-tracker/internal/user"
	usersqlite "github.com/frahmantamala/finance-tracker/internal/user/sqlite"
	"github.com/frahmantamala/finance-tracker/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger

	AuthHandler     *auth.Handler
	UserHandler     *user.Handler
	CategoryHandler *category.Handler
	ExpenseHandler  *expense.Handler
	BudgetHandler   *budget.Handler
	ReportHandler   *report.Handler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if sqlDB, err := deps.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				deps.Logger.Error("database close error", "error", err)
			}
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	sqlDB, err := deps.DB.DB()
	if err != nil {
		deps.Logger.Error("failed to get database handle", "error", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		sqlDB,
		deps.AuthHandler,
		deps.UserHandler,
		deps.CategoryHandler,
		deps.ExpenseHandler,
		deps.BudgetHandler,
		deps.ReportHandler,
		deps.Logger,
	)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Repositories share the pooled handle; nothing opens per operation.
	authRepo := authsqlite.NewRepository(db)
	userRepo := usersqlite.NewUserRepository(db)
	categoryRepo := categorysqlite.NewCategoryRepository(db)
	expenseRepo := expensesqlite.NewExpenseRepository(db)
	budgetRepo := budgetsqlite.NewBudgetRepository(db)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)

	categoryService := category.NewService(categoryRepo, lg)
	authService := auth.NewService(authRepo, categoryService, tokenGen, config.Security.BCryptCost, lg)
	userService := user.NewService(userRepo)
	expenseService := expense.NewService(expenseRepo, lg)
	budgetService := budget.NewService(budgetRepo, lg)
	reportService := report.NewService(expenseRepo, budgetRepo, lg)

	return &Dependencies{
		Config: config,
		DB:     db,
		Router: chi.NewRouter(),
		Logger: lg,

		AuthHandler:     auth.NewHandler(authService),
		UserHandler:     user.NewHandler(userService),
		CategoryHandler: category.NewHandler(categoryService),
		ExpenseHandler:  expense.NewHandler(expenseService),
		BudgetHandler:   budget.NewHandler(budgetService),
		ReportHandler:   report.NewHandler(reportService),
	}, nil
}

// initDB opens the pooled gorm handle for the configured driver.
func initDB(cfg internal.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Source)
	default:
		dialector = sqlite.Open(cfg.Source)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
