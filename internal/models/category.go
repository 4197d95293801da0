package models

import "time"

// Category represents an expense/income category. UserID is nil for
// the global default categories that every user sees.
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    *uint  `gorm:"index"`
	Name      string `gorm:"size:64;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
