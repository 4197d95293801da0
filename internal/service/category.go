package service

import (
	"fmt"

	"github.com/Da20-Costa/mybudget/internal/models"

	"gorm.io/gorm"
)

// VisibleCategories lists the global default categories plus userID's
// own, for dropdowns and the categories page.
func VisibleCategories(db *gorm.DB, userID uint) ([]models.Category, error) {
	var categories []models.Category
	if err := db.Where("user_id IS NULL OR user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	return categories, nil
}
