package service

import (
	"fmt"

	"github.com/Da20-Costa/mybudget/internal/models"

	"gorm.io/gorm"
)

// FilterTransactions returns userID's transactions, newest first,
// optionally restricted to a "YYYY-MM" month and/or an exact category
// name. Empty filters mean no constraint; both filters conjoin.
func FilterTransactions(db *gorm.DB, userID uint, month, category string) ([]models.Transaction, error) {
	q := db.Where("user_id = ?", userID)

	if month != "" {
		start, end, err := monthRange(month)
		if err != nil {
			return nil, err
		}
		q = q.Where("timestamp >= ? AND timestamp < ?", start, end)
	}
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var transactions []models.Transaction
	if err := q.Order("timestamp DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("filter transactions: %w", err)
	}
	return transactions, nil
}
