package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the sortable calendar-date form expenses are stored in.
const DateLayout = "2006-01-02"

// Expense rows are append-and-delete only; there is no edit operation.
type Expense struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Username    string          `json:"-" gorm:"column:username;not null;index"`
	ExpenseDate string          `json:"date" gorm:"column:expense_date;not null"`
	Category    string          `json:"category" gorm:"column:category;not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"column:amount;type:decimal(12,2);not null"`
	Description string          `json:"description" gorm:"column:description"`
	CreatedAt   time.Time       `json:"created_at" gorm:"column:created_at"`
}

func (Expense) TableName() string {
	return "expenses"
}
