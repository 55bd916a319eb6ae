package sqlite

import (
	"github.com/frahmantamala/finance-tracker/internal/budget"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) budget.Repository {
	return &BudgetRepository{db: db}
}

// Upsert replaces the monthly limit on conflict of the (username, category)
// primary key.
func (r *BudgetRepository) Upsert(b *budget.Budget) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"monthly_limit", "updated_at"}),
	}).Create(b).Error
}

func (r *BudgetRepository) ListByUsername(username string) ([]*budget.Budget, error) {
	var budgets []*budget.Budget
	err := r.db.Where("username = ?", username).Order("category ASC").Find(&budgets).Error
	return budgets, err
}
