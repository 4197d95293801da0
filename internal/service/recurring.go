package service

import (
	"fmt"
	"time"

	"github.com/Da20-Costa/mybudget/internal/models"

	"gorm.io/gorm"
)

// maxRecurringDay clamps rule days so a rule set for the 29th-31st
// still materializes in every month (Feb included).
const maxRecurringDay = 28

// ProcessRecurring materializes the given month's transaction for every
// recurring rule of userID that has not been added for that month yet.
// Each rule's insert + last_added update runs in one database
// transaction, so a crash cannot leave a rule half-processed. Running
// it again in the same month is a no-op.
func ProcessRecurring(db *gorm.DB, userID uint, month string) error {
	start, _, err := monthRange(month)
	if err != nil {
		return err
	}

	var rules []models.RecurringRule
	if err := db.Where("user_id = ?", userID).Find(&rules).Error; err != nil {
		return fmt.Errorf("load recurring rules: %w", err)
	}

	for i := range rules {
		rule := &rules[i]
		if rule.LastAdded != nil && *rule.LastAdded == month {
			continue
		}

		day := rule.DayOfMonth
		if day > maxRecurringDay {
			day = maxRecurringDay
		}
		timestamp := time.Date(start.Year(), start.Month(), day, 0, 0, 0, 0, time.Local)

		err := db.Transaction(func(tx *gorm.DB) error {
			t := models.Transaction{
				UserID:      rule.UserID,
				Description: rule.Description,
				Amount:      rule.Amount,
				Type:        rule.Type,
				Category:    rule.Category,
				Timestamp:   timestamp,
			}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			return tx.Model(&models.RecurringRule{}).
				Where("id = ?", rule.ID).
				Update("last_added", month).Error
		})
		if err != nil {
			return fmt.Errorf("materialize rule %d: %w", rule.ID, err)
		}
	}
	return nil
}
