// Package report derives dashboard metrics from raw expenses and budgets:
// calendar-month windowing, spending totals, per-day averages and budget
// alert classification.
package report

import (
	"sort"
	"time"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/expense"
	"github.com/shopspring/decimal"
)

// MonthKeyLayout buckets dates into calendar months; two dates are in the
// same month iff their keys match. This is not a rolling 30-day window.
const MonthKeyLayout = "2006-01"

type Level string

const (
	LevelOK         Level = "ok"
	LevelNearLimit  Level = "near_limit"
	LevelOverBudget Level = "over_budget"
)

// Alert thresholds on spent/limit. Fixed design constants.
var (
	overBudgetRatio = decimal.NewFromInt(1)
	nearLimitRatio  = decimal.NewFromFloat(0.8)
)

// BudgetStatus is one budgeted category's standing for the month.
type BudgetStatus struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Spent    decimal.Decimal `json:"spent"`
	Ratio    decimal.Decimal `json:"ratio"`
	Level    Level           `json:"level"`
}

// CategoryAmount is a per-category spending total.
type CategoryAmount struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}

// MonthKeyOfDate derives the month key from a stored "YYYY-MM-DD" date.
// Malformed dates yield "" and never match a reference month.
func MonthKeyOfDate(date string) string {
	t, err := time.Parse(expense.DateLayout, date)
	if err != nil {
		return ""
	}
	return MonthKey(t)
}

// FilterToMonth keeps only the expenses whose month key equals the
// reference date's, regardless of day of month.
func FilterToMonth(expenses []*expense.Expense, ref time.Time) []*expense.Expense {
	key := MonthKey(ref)

	var filtered []*expense.Expense
	for _, exp := range expenses {
		if MonthKeyOfDate(exp.ExpenseDate) == key {
			filtered = append(filtered, exp)
		}
	}
	return filtered
}

// TotalSpent sums the amounts, zero for an empty set.
func TotalSpent(expenses []*expense.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, exp := range expenses {
		total = total.Add(exp.Amount)
	}
	return total
}

// DailyAverage is the mean of per-calendar-day sums, averaged over days that
// have at least one expense rather than over all days elapsed in the month.
// Quiet days do not dilute the average.
func DailyAverage(expenses []*expense.Expense) decimal.Decimal {
	if len(expenses) == 0 {
		return decimal.Zero
	}

	perDay := make(map[string]decimal.Decimal)
	for _, exp := range expenses {
		perDay[exp.ExpenseDate] = perDay[exp.ExpenseDate].Add(exp.Amount)
	}

	total := decimal.Zero
	for _, sum := range perDay {
		total = total.Add(sum)
	}

	return total.Div(decimal.NewFromInt(int64(len(perDay))))
}

// BudgetStatuses reports each budgeted category against the month's
// spending. A budgeted category with no expenses this month reports zero
// spent; entries with a non-positive limit are excluded from classification.
func BudgetStatuses(budgets []*budget.Budget, monthExpenses []*expense.Expense) []BudgetStatus {
	spentByCategory := make(map[string]decimal.Decimal)
	for _, exp := range monthExpenses {
		spentByCategory[exp.Category] = spentByCategory[exp.Category].Add(exp.Amount)
	}

	var statuses []BudgetStatus
	for _, b := range budgets {
		if !b.MonthlyLimit.IsPositive() {
			continue
		}

		spent := spentByCategory[b.Category]
		ratio := spent.Div(b.MonthlyLimit)

		statuses = append(statuses, BudgetStatus{
			Category: b.Category,
			Limit:    b.MonthlyLimit,
			Spent:    spent,
			Ratio:    ratio,
			Level:    classify(ratio),
		})
	}

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Category < statuses[j].Category
	})
	return statuses
}

func classify(ratio decimal.Decimal) Level {
	switch {
	case ratio.GreaterThan(overBudgetRatio):
		return LevelOverBudget
	case ratio.GreaterThan(nearLimitRatio):
		return LevelNearLimit
	default:
		return LevelOK
	}
}

// CategoryBreakdown totals spending per category, sorted by category name.
// This feeds the spending-by-category chart.
func CategoryBreakdown(expenses []*expense.Expense) []CategoryAmount {
	byCategory := make(map[string]decimal.Decimal)
	for _, exp := range expenses {
		byCategory[exp.Category] = byCategory[exp.Category].Add(exp.Amount)
	}

	breakdown := make([]CategoryAmount, 0, len(byCategory))
	for name, amount := range byCategory {
		breakdown = append(breakdown, CategoryAmount{Category: name, Amount: amount})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		return breakdown[i].Category < breakdown[j].Category
	})
	return breakdown
}
