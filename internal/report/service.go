package report

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/expense"
	"github.com/shopspring/decimal"
)

// ExpenseSource and BudgetSource are the raw reads the aggregator needs;
// the sqlite repositories satisfy them directly.
type ExpenseSource interface {
	ListByUsername(username string) ([]*expense.Expense, error)
}

type BudgetSource interface {
	ListByUsername(username string) ([]*budget.Budget, error)
}

type Service struct {
	expenses ExpenseSource
	budgets  BudgetSource
	logger   *slog.Logger
}

func NewService(expenses ExpenseSource, budgets BudgetSource, logger *slog.Logger) *Service {
	return &Service{
		expenses: expenses,
		budgets:  budgets,
		logger:   logger,
	}
}

// Dashboard is the month overview: total spent, per-active-day average and
// the budget standings for the reference month.
type Dashboard struct {
	Month               string          `json:"month"`
	TotalSpent          decimal.Decimal `json:"total_spent"`
	TotalSpentDisplay   string          `json:"total_spent_display"`
	DailyAverage        decimal.Decimal `json:"daily_average"`
	DailyAverageDisplay string          `json:"daily_average_display"`
	Budgets             []BudgetStatus  `json:"budgets"`
}

// CategoryReport is the all-time spending breakdown behind the pie chart.
type CategoryReport struct {
	Total      decimal.Decimal  `json:"total"`
	ByCategory []CategoryAmount `json:"by_category"`
}

func (s *Service) Dashboard(username string, ref time.Time) (*Dashboard, error) {
	allExpenses, err := s.expenses.ListByUsername(username)
	if err != nil {
		s.logger.Error("dashboard: failed to load expenses", "username", username, "error", err)
		return nil, err
	}

	budgets, err := s.budgets.ListByUsername(username)
	if err != nil {
		s.logger.Error("dashboard: failed to load budgets", "username", username, "error", err)
		return nil, err
	}

	monthExpenses := FilterToMonth(allExpenses, ref)
	total := TotalSpent(monthExpenses)
	avg := DailyAverage(monthExpenses)
	statuses := BudgetStatuses(budgets, monthExpenses)
	if statuses == nil {
		statuses = []BudgetStatus{}
	}

	return &Dashboard{
		Month:               MonthKey(ref),
		TotalSpent:          total,
		TotalSpentDisplay:   FormatAmount(total),
		DailyAverage:        avg,
		DailyAverageDisplay: FormatAmount(avg),
		Budgets:             statuses,
	}, nil
}

func (s *Service) CategoryReport(username string) (*CategoryReport, error) {
	allExpenses, err := s.expenses.ListByUsername(username)
	if err != nil {
		s.logger.Error("category report: failed to load expenses", "username", username, "error", err)
		return nil, err
	}

	breakdown := CategoryBreakdown(allExpenses)

	return &CategoryReport{
		Total:      TotalSpent(allExpenses),
		ByCategory: breakdown,
	}, nil
}
