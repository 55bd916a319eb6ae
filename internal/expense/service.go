package expense

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/finance-tracker/internal"
)

// Repository defines the data access methods for expenses. Deletion is keyed
// by (id, owner) so one account can never remove another account's rows.
type Repository interface {
	Create(exp *Expense) error
	ListByUsername(username string) ([]*Expense, error)
	DeleteByIDAndUsername(id int64, username string) (int64, error)
}

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// CreateExpense validates the payload and stores a new expense; the store
// assigns the id.
func (s *Service) CreateExpense(username string, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err, "username", username)
		return nil, err
	}

	exp := &Expense{
		Username:    username,
		ExpenseDate: dto.Date,
		Category:    dto.Category,
		Amount:      dto.Amount,
		Description: dto.Description,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(exp); err != nil {
		s.logger.Error("failed to create expense", "error", err, "username", username)
		return nil, err
	}

	s.logger.Info("expense created",
		"expense_id", exp.ID,
		"username", username,
		"amount", exp.Amount,
		"category", exp.Category)

	return exp, nil
}

func (s *Service) ListExpenses(username string) ([]*Expense, error) {
	expenses, err := s.repo.ListByUsername(username)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "username", username)
		return nil, err
	}
	return expenses, nil
}

// DeleteExpense removes the expense only when it belongs to the caller.
// A miss on either key reports not-found, without revealing which.
func (s *Service) DeleteExpense(username string, id int64) error {
	rows, err := s.repo.DeleteByIDAndUsername(id, username)
	if err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id, "username", username)
		return err
	}
	if rows == 0 {
		return internal.ErrExpenseNotFound
	}

	s.logger.Info("expense deleted", "expense_id", id, "username", username)
	return nil
}
