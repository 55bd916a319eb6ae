package category

import "time"

// DefaultCategories is the fixed set seeded for every new account.
var DefaultCategories = []string{"Food", "Transport", "Health", "Entertainment", "Other"}

// Category is keyed by (owner, name); the link from expenses and budgets to
// a category is a soft string key, so deletion is guarded at the service
// layer rather than by a cascading constraint.
type Category struct {
	Username  string    `json:"-" gorm:"primaryKey;column:username"`
	Name      string    `json:"name" gorm:"primaryKey;column:category"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Category) TableName() string {
	return "categories"
}
