package cmd

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/frahmantamala/finance-tracker/internal/auth"
	authsqlite "github.com/frahmantamala/finance-tracker/internal/auth/sqlite"
	"github.com/frahmantamala/finance-tracker/internal/budget"
	budgetsqlite "github.com/frahmantamala/finance-tracker/internal/budget/sqlite"
	"github.com/frahmantamala/finance-tracker/internal/category"
	categorysqlite "github.com/frahmantamala/finance-tracker/internal/category/sqlite"
	"github.com/frahmantamala/finance-tracker/internal/expense"
	expensesqlite "github.com/frahmantamala/finance-tracker/internal/expense/sqlite"
	"github.com/frahmantamala/finance-tracker/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	RunE:  runSeed,
	Use:   "seed",
	Short: "populate the database with a demo user and sample data",
}

const demoUsername = "demo"

func runSeed(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	lg := logger.LoggerWrapper()

	db, err := initDB(cfg.Database)
	if err != nil {
		log.Fatalf("seed: failed to open DB: %v", err)
	}

	if clearData {
		lg.Info("clearing existing data")
		for _, table := range []string{"expenses", "budgets", "categories", "users"} {
			if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
	}

	categoryRepo := categorysqlite.NewCategoryRepository(db)
	categoryService := category.NewService(categoryRepo, lg)

	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authsqlite.NewRepository(db), categoryService, tokenGen, cfg.Security.BCryptCost, lg)

	if err := authService.Signup(auth.SignupDTO{Username: demoUsername, Password: "demo-password"}); err != nil {
		if err == auth.ErrUsernameTaken {
			lg.Info("demo user already exists, skipping account creation")
		} else {
			return fmt.Errorf("creating demo user: %w", err)
		}
	}

	if err := seedExpenses(db, lg); err != nil {
		return err
	}
	if err := seedBudgets(db, lg); err != nil {
		return err
	}

	lg.Info("seeding complete", "username", demoUsername)
	return nil
}

var demoExpenses = []expense.CreateExpenseDTO{
	{Date: "2026-08-01", Category: "Food", Amount: decimal.NewFromFloat(420.50), Description: "weekly groceries"},
	{Date: "2026-08-03", Category: "Transport", Amount: decimal.NewFromFloat(85.00), Description: "metro card top-up"},
	{Date: "2026-08-05", Category: "Entertainment", Amount: decimal.NewFromFloat(350.00), Description: "movie night"},
	{Date: "2026-08-10", Category: "Health", Amount: decimal.NewFromFloat(1200.00), Description: "dental checkup"},
	{Date: "2026-08-12", Category: "Food", Amount: decimal.NewFromFloat(260.75), Description: "dinner out"},
}

var demoBudgets = []budget.SetBudgetDTO{
	{Category: "Food", MonthlyLimit: decimal.NewFromInt(3000)},
	{Category: "Transport", MonthlyLimit: decimal.NewFromInt(1000)},
	{Category: "Entertainment", MonthlyLimit: decimal.NewFromInt(500)},
}

func seedExpenses(db *gorm.DB, lg *slog.Logger) error {
	svc := expense.NewService(expensesqlite.NewExpenseRepository(db), lg)

	for _, dto := range demoExpenses {
		if _, err := svc.CreateExpense(demoUsername, dto); err != nil {
			return fmt.Errorf("seeding expense %q: %w", dto.Description, err)
		}
	}
	lg.Info("seeded sample expenses", "count", len(demoExpenses))
	return nil
}

func seedBudgets(db *gorm.DB, lg *slog.Logger) error {
	svc := budget.NewService(budgetsqlite.NewBudgetRepository(db), lg)

	for _, dto := range demoBudgets {
		if _, err := svc.SetBudget(demoUsername, dto); err != nil {
			return fmt.Errorf("seeding budget for %s: %w", dto.Category, err)
		}
	}
	lg.Info("seeded sample budgets", "count", len(demoBudgets))
	return nil
}
