package budget

import (
	"strings"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/shopspring/decimal"
)

// SetBudgetDTO is the upsert payload. A zero limit is allowed and simply
// drops the category out of alert classification.
type SetBudgetDTO struct {
	Category     string          `json:"category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit"`
}

func (d *SetBudgetDTO) Validate() error {
	d.Category = strings.TrimSpace(d.Category)
	if d.Category == "" {
		return internal.NewValidationError("category is required", internal.ErrCodeEmptyCategory)
	}
	if d.MonthlyLimit.IsNegative() {
		return internal.NewValidationError("monthly limit must not be negative", internal.ErrCodeInvalidAmount)
	}
	return nil
}
