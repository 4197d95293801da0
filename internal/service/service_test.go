package service

import (
	"testing"
	"time"

	"github.com/Da20-Costa/mybudget/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database with the schema
// migrated. A single connection keeps the :memory: database alive.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
		&models.Category{},
		&models.Budget{},
		&models.RecurringRule{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{Username: username, PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return &user
}

func addTransaction(t *testing.T, db *gorm.DB, userID uint, txType, category string, amount float64, ts time.Time) {
	t.Helper()
	tx := models.Transaction{
		UserID:      userID,
		Description: "test",
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Timestamp:   ts,
	}
	if err := db.Create(&tx).Error; err != nil {
		t.Fatalf("create test transaction: %v", err)
	}
}
