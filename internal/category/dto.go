package category

import (
	"strings"

	"github.com/frahmantamala/finance-tracker/internal"
)

// CreateCategoryDTO carries the new category name. Surrounding whitespace is
// trimmed before validation, so an all-blank name is rejected as empty.
type CreateCategoryDTO struct {
	Name string `json:"name"`
}

func (d *CreateCategoryDTO) Validate() error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return internal.ErrEmptyCategory
	}
	if len(d.Name) > 100 {
		return internal.NewValidationError("category name must be at most 100 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}
