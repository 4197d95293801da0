package service

import (
	"fmt"

	"gorm.io/gorm"
)

// ExpensesByCategory returns the given month's Expense totals per
// category for userID, largest first, as parallel label/value slices
// ready for chart rendering.
func ExpensesByCategory(db *gorm.DB, userID uint, month string) ([]string, []float64, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return nil, nil, err
	}

	rows, err := expenseTotals(db, userID, start, end, "total DESC")
	if err != nil {
		return nil, nil, fmt.Errorf("expenses by category: %w", err)
	}

	labels := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Category)
		values = append(values, row.Total)
	}
	return labels, values, nil
}
