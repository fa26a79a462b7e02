package models

import "time"

// Service is a consulting offering shown on the public site.
type Service struct {
	ID          int64     `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Price       *float64  `json:"price" db:"price"`
	Duration    *string   `json:"duration" db:"duration"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
