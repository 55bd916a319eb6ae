package sqlite

import (
	"github.com/frahmantamala/finance-tracker/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements the expense.Repository interface using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(exp *expense.Expense) error {
	return r.db.Create(exp).Error
}

func (r *ExpenseRepository) ListByUsername(username string) ([]*expense.Expense, error) {
	var expenses []*expense.Expense
	err := r.db.Where("username = ?", username).
		Order("expense_date DESC, id DESC").
		Find(&expenses).Error
	return expenses, err
}

// DeleteByIDAndUsername deletes only when both keys match and reports the
// affected row count so the service can distinguish a miss.
func (r *ExpenseRepository) DeleteByIDAndUsername(id int64, username string) (int64, error) {
	res := r.db.Where("id = ? AND username = ?", id, username).Delete(&expense.Expense{})
	return res.RowsAffected, res.Error
}
