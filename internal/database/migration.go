package database

import (
	"fmt"

	"github.com/Da20-Costa/mybudget/internal/models"

	"gorm.io/gorm"
)

// Default categories visible to every user (user_id NULL).
var defaultCategories = []string{
	"Salary",
	"Food",
	"Transport",
	"Housing",
	"Leisure",
	"Health",
	"Education",
	"Other",
}

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Category{},
		&models.Budget{},
		&models.RecurringRule{},
		&models.Session{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Seed inserts the global default categories if they are missing.
func Seed(db *gorm.DB) error {
	for _, name := range defaultCategories {
		var count int64
		if err := db.Model(&models.Category{}).
			Where("user_id IS NULL AND name = ?", name).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check default category %q: %w", name, err)
		}
		if count == 0 {
			if err := db.Create(&models.Category{Name: name}).Error; err != nil {
				return fmt.Errorf("seed default category %q: %w", name, err)
			}
		}
	}
	return nil
}
