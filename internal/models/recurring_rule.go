package models

import "time"

// RecurringRule is a template that spawns one transaction per calendar
// month until deleted. LastAdded holds the "YYYY-MM" key of the last
// month it was materialized for, nil if never.
type RecurringRule struct {
	ID          uint    `gorm:"primaryKey"`
	UserID      uint    `gorm:"index;not null"`
	Description string  `gorm:"size:255;not null"`
	Amount      float64 `gorm:"not null"`
	Type        string  `gorm:"size:16;not null"` // Income / Expense
	Category    string  `gorm:"size:64;not null"`
	DayOfMonth  int     `gorm:"not null"` // 1-31, clamped to 28 when materializing
	LastAdded   *string `gorm:"size:7"`   // YYYY-MM
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName keeps the table name used by the original schema.
func (RecurringRule) TableName() string {
	return "recurring_transactions"
}
