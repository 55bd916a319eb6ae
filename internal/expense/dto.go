package expense

import (
	"strings"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/shopspring/decimal"
)

// CreateExpenseDTO represents the request payload for adding an expense.
type CreateExpenseDTO struct {
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func (d *CreateExpenseDTO) Validate() error {
	if d.Date == "" {
		return internal.NewValidationError("date is required", internal.ErrCodeInvalidDate)
	}
	if _, err := time.Parse(DateLayout, d.Date); err != nil {
		return internal.NewValidationError("date must be in YYYY-MM-DD form", internal.ErrCodeInvalidDate)
	}
	if strings.TrimSpace(d.Category) == "" {
		return internal.NewValidationError("category is required", internal.ErrCodeEmptyCategory)
	}
	if !d.Amount.IsPositive() {
		return internal.NewValidationError("amount must be a positive number", internal.ErrCodeInvalidAmount)
	}
	d.Description = strings.TrimSpace(d.Description)
	return nil
}
