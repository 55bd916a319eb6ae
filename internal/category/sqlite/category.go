package sqlite

import (
	"errors"

	"github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListByUsername(username string) ([]*category.Category, error) {
	var categories []*category.Category
	err := r.db.Where("username = ?", username).Order("category ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) Create(cat *category.Category) error {
	if err := r.db.Create(cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return internal.ErrCategoryExists
		}
		return err
	}
	return nil
}

func (r *CategoryRepository) CreateIgnoreDuplicate(cat *category.Category) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(cat).Error
}

func (r *CategoryRepository) Exists(username, name string) (bool, error) {
	var count int64
	err := r.db.Model(&category.Category{}).
		Where("username = ? AND category = ?", username, name).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) Delete(username, name string) error {
	return r.db.Where("username = ? AND category = ?", username, name).
		Delete(&category.Category{}).Error
}

// The reference counts read the expenses and budgets tables directly; the
// category link is a soft string key, not a foreign key.
func (r *CategoryRepository) CountExpenseRefs(username, name string) (int64, error) {
	var count int64
	err := r.db.Table("expenses").
		Where("username = ? AND category = ?", username, name).
		Count(&count).Error
	return count, err
}

func (r *CategoryRepository) CountBudgetRefs(username, name string) (int64, error) {
	var count int64
	err := r.db.Table("budgets").
		Where("username = ? AND category = ?", username, name).
		Count(&count).Error
	return count, err
}
