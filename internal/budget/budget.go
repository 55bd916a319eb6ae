package budget

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget holds the monthly limit for one (owner, category) pair. Setting a
// budget again replaces the prior limit.
type Budget struct {
	Username     string          `json:"-" gorm:"primaryKey;column:username"`
	Category     string          `json:"category" gorm:"primaryKey;column:category"`
	MonthlyLimit decimal.Decimal `json:"monthly_limit" gorm:"column:monthly_limit;type:decimal(12,2);not null"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"column:updated_at"`
}

func (Budget) TableName() string {
	return "budgets"
}
