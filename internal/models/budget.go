package models

import "time"

// Budget is a per-category spending target for one calendar month.
// Month is a zero-padded "YYYY-MM" key, so lexical order equals
// chronological order. At most one row per (user, category, month);
// the budget handler upserts instead of inserting duplicates.
type Budget struct {
	ID           uint    `gorm:"primaryKey"`
	UserID       uint    `gorm:"index;not null"`
	CategoryName string  `gorm:"size:64;not null"`
	Amount       float64 `gorm:"not null"`
	Month        string  `gorm:"size:7;index;not null"` // YYYY-MM
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
