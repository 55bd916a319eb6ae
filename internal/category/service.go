package category

import (
	"log/slog"

	"github.com/frahmantamala/finance-tracker/internal"
)

type RepositoryAPI interface {
	ListByUsername(username string) ([]*Category, error)
	Create(cat *Category) error
	CreateIgnoreDuplicate(cat *Category) error
	Exists(username, name string) (bool, error)
	Delete(username, name string) error
	CountExpenseRefs(username, name string) (int64, error)
	CountBudgetRefs(username, name string) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCategories returns the owner's category names, lexicographically sorted.
func (s *Service) ListCategories(username string) ([]string, error) {
	categories, err := s.repo.ListByUsername(username)
	if err != nil {
		s.logger.Error("failed to list categories", "username", username, "error", err)
		return nil, err
	}

	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = cat.Name
	}
	return names, nil
}

func (s *Service) AddCategory(username string, dto CreateCategoryDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	if err := s.repo.Create(&Category{Username: username, Name: dto.Name}); err != nil {
		if err == internal.ErrCategoryExists {
			return err
		}
		s.logger.Error("failed to add category", "username", username, "name", dto.Name, "error", err)
		return err
	}

	s.logger.Info("category added", "username", username, "name", dto.Name)
	return nil
}

// DeleteCategory refuses to delete while any expense or budget still
// references the category. Both counts are taken before deciding; a category
// is never partially deleted.
func (s *Service) DeleteCategory(username, name string) error {
	exists, err := s.repo.Exists(username, name)
	if err != nil {
		s.logger.Error("failed to check category", "username", username, "name", name, "error", err)
		return err
	}
	if !exists {
		return internal.ErrCategoryNotFound
	}

	expenseRefs, err := s.repo.CountExpenseRefs(username, name)
	if err != nil {
		s.logger.Error("failed to count expense refs", "username", username, "name", name, "error", err)
		return err
	}

	budgetRefs, err := s.repo.CountBudgetRefs(username, name)
	if err != nil {
		s.logger.Error("failed to count budget refs", "username", username, "name", name, "error", err)
		return err
	}

	if expenseRefs > 0 || budgetRefs > 0 {
		s.logger.Warn("category still referenced",
			"username", username,
			"name", name,
			"expense_refs", expenseRefs,
			"budget_refs", budgetRefs)
		return internal.ErrCategoryInUse
	}

	if err := s.repo.Delete(username, name); err != nil {
		s.logger.Error("failed to delete category", "username", username, "name", name, "error", err)
		return err
	}

	s.logger.Info("category deleted", "username", username, "name", name)
	return nil
}

// SeedDefaults installs the default category set for a new account,
// ignoring any name the account already has.
func (s *Service) SeedDefaults(username string) error {
	for _, name := range DefaultCategories {
		if err := s.repo.CreateIgnoreDuplicate(&Category{Username: username, Name: name}); err != nil {
			return err
		}
	}
	return nil
}
