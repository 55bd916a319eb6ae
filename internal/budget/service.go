package budget

import (
	"log/slog"
	"time"
)

type Repository interface {
	Upsert(b *Budget) error
	ListByUsername(username string) ([]*Budget, error)
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

// SetBudget inserts or replaces the limit for (owner, category).
func (s *Service) SetBudget(username string, dto SetBudgetDTO) (*Budget, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	b := &Budget{
		Username:     username,
		Category:     dto.Category,
		MonthlyLimit: dto.MonthlyLimit,
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Upsert(b); err != nil {
		s.logger.Error("failed to set budget", "error", err, "username", username, "category", dto.Category)
		return nil, err
	}

	s.logger.Info("budget set", "username", username, "category", dto.Category, "limit", dto.MonthlyLimit)
	return b, nil
}

func (s *Service) ListBudgets(username string) ([]*Budget, error) {
	budgets, err := s.repo.ListByUsername(username)
	if err != nil {
		s.logger.Error("failed to list budgets", "error", err, "username", username)
		return nil, err
	}
	return budgets, nil
}
