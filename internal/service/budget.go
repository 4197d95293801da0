package service

import (
	"fmt"

	"github.com/Da20-Costa/mybudget/internal/models"

	"gorm.io/gorm"
)

// CarryForwardBudgets copies the most recent prior month's budget rows
// into month, unless rows for month already exist. Month keys are
// zero-padded "YYYY-MM", so MAX() and < compare chronologically. The
// copy runs in one database transaction; the existence check makes the
// whole operation idempotent.
func CarryForwardBudgets(db *gorm.DB, userID uint, month string) error {
	var count int64
	if err := db.Model(&models.Budget{}).
		Where("user_id = ? AND month = ?", userID, month).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check current budgets: %w", err)
	}
	if count > 0 {
		return nil
	}

	var lastMonth *string
	if err := db.Model(&models.Budget{}).
		Where("user_id = ? AND month < ?", userID, month).
		Select("MAX(month)").
		Row().Scan(&lastMonth); err != nil {
		return fmt.Errorf("find last budget month: %w", err)
	}
	if lastMonth == nil {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var previous []models.Budget
		if err := tx.Where("user_id = ? AND month = ?", userID, *lastMonth).
			Find(&previous).Error; err != nil {
			return fmt.Errorf("load previous budgets: %w", err)
		}

		for _, b := range previous {
			copy := models.Budget{
				UserID:       b.UserID,
				CategoryName: b.CategoryName,
				Amount:       b.Amount,
				Month:        month,
			}
			if err := tx.Create(&copy).Error; err != nil {
				return fmt.Errorf("copy budget %q: %w", b.CategoryName, err)
			}
		}
		return nil
	})
}

// UpsertBudget creates or updates the budget row for (userID, category,
// month). At most one row per key; enforced here, not by a constraint.
func UpsertBudget(db *gorm.DB, userID uint, category string, amount float64, month string) error {
	var existing models.Budget
	err := db.Where("user_id = ? AND category_name = ? AND month = ?", userID, category, month).
		First(&existing).Error
	switch {
	case err == nil:
		return db.Model(&existing).Update("amount", amount).Error
	case err == gorm.ErrRecordNotFound:
		b := models.Budget{
			UserID:       userID,
			CategoryName: category,
			Amount:       amount,
			Month:        month,
		}
		return db.Create(&b).Error
	default:
		return fmt.Errorf("look up budget: %w", err)
	}
}
