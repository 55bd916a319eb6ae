package user

import (
	"errors"
	"time"
)

// User is immutable after signup: no update operation exists and accounts
// are never deleted through the exposed API.
type User struct {
	Username     string    `json:"username" gorm:"primaryKey;column:username"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

var ErrNotFound = errors.New("user not found")
