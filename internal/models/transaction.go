package models

import "time"

// Transaction types. Stored as-is in the type column.
const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Transaction represents a single income or expense record.
// Category is a plain name, not a foreign key: deleting a category
// leaves the name in place on existing transactions.
type Transaction struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	Description string    `gorm:"size:255"`
	Amount      float64   `gorm:"not null"`
	Type        string    `gorm:"size:16;index;not null"` // Income / Expense
	Category    string    `gorm:"size:64;not null"`
	Timestamp   time.Time `gorm:"index;not null"` // when the transaction happened
	CreatedAt   time.Time
}
