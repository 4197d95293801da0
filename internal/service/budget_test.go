package service

import (
	"testing"

	"github.com/Da20-Costa/mybudget/internal/models"

	"gorm.io/gorm"
)

func addBudget(t *testing.T, db *gorm.DB, userID uint, category string, amount float64, month string) {
	t.Helper()
	b := models.Budget{UserID: userID, CategoryName: category, Amount: amount, Month: month}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("create test budget: %v", err)
	}
}

func budgetCount(t *testing.T, db *gorm.DB, userID uint, month string) int64 {
	t.Helper()
	var count int64
	db.Model(&models.Budget{}).Where("user_id = ? AND month = ?", userID, month).Count(&count)
	return count
}

func TestCarryForward_CopiesMostRecentPriorMonth(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	addBudget(t, db, user.ID, "Food", 300, "2025-06")
	addBudget(t, db, user.ID, "Food", 350, "2025-07")
	addBudget(t, db, user.ID, "Transport", 100, "2025-07")

	if err := CarryForwardBudgets(db, user.ID, "2025-09"); err != nil {
		t.Fatalf("CarryForwardBudgets() error = %v", err)
	}

	var copied []models.Budget
	db.Where("user_id = ? AND month = ?", user.ID, "2025-09").
		Order("category_name ASC").Find(&copied)
	if len(copied) != 2 {
		t.Fatalf("copied rows = %d, want 2 (from 2025-07, not 2025-06)", len(copied))
	}
	if copied[0].CategoryName != "Food" || copied[0].Amount != 350 {
		t.Errorf("copied[0] = %s/%v, want Food/350", copied[0].CategoryName, copied[0].Amount)
	}
	if copied[1].CategoryName != "Transport" || copied[1].Amount != 100 {
		t.Errorf("copied[1] = %s/%v, want Transport/100", copied[1].CategoryName, copied[1].Amount)
	}
}

func TestCarryForward_SecondRunAddsNothing(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	addBudget(t, db, user.ID, "Food", 300, "2025-08")

	if err := CarryForwardBudgets(db, user.ID, "2025-09"); err != nil {
		t.Fatalf("CarryForwardBudgets() error = %v", err)
	}
	if err := CarryForwardBudgets(db, user.ID, "2025-09"); err != nil {
		t.Fatalf("CarryForwardBudgets() second run error = %v", err)
	}

	if got := budgetCount(t, db, user.ID, "2025-09"); got != 1 {
		t.Errorf("budget rows after second run = %d, want 1", got)
	}
}

func TestCarryForward_NoPriorMonthDoesNothing(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	if err := CarryForwardBudgets(db, user.ID, "2025-09"); err != nil {
		t.Fatalf("CarryForwardBudgets() error = %v", err)
	}

	if got := budgetCount(t, db, user.ID, "2025-09"); got != 0 {
		t.Errorf("budget rows = %d, want 0", got)
	}
}

func TestCarryForward_ExistingMonthUntouched(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	addBudget(t, db, user.ID, "Food", 300, "2025-08")
	addBudget(t, db, user.ID, "Leisure", 80, "2025-09")

	if err := CarryForwardBudgets(db, user.ID, "2025-09"); err != nil {
		t.Fatalf("CarryForwardBudgets() error = %v", err)
	}

	var rows []models.Budget
	db.Where("user_id = ? AND month = ?", user.ID, "2025-09").Find(&rows)
	if len(rows) != 1 || rows[0].CategoryName != "Leisure" {
		t.Errorf("rows = %+v, want only the pre-existing Leisure budget", rows)
	}
}

func TestCarryForward_ScopedToUser(t *testing.T) {
	db := openTestDB(t)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	addBudget(t, db, bob.ID, "Food", 500, "2025-08")

	if err := CarryForwardBudgets(db, alice.ID, "2025-09"); err != nil {
		t.Fatalf("CarryForwardBudgets() error = %v", err)
	}

	if got := budgetCount(t, db, alice.ID, "2025-09"); got != 0 {
		t.Errorf("alice got %d rows copied from bob, want 0", got)
	}
}

func TestUpsertBudget_UpdatesInPlace(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	if err := UpsertBudget(db, user.ID, "Food", 200, "2025-09"); err != nil {
		t.Fatalf("UpsertBudget() insert error = %v", err)
	}
	if err := UpsertBudget(db, user.ID, "Food", 250, "2025-09"); err != nil {
		t.Fatalf("UpsertBudget() update error = %v", err)
	}

	var rows []models.Budget
	db.Where("user_id = ? AND month = ?", user.ID, "2025-09").Find(&rows)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1 (upsert, not duplicate)", len(rows))
	}
	if rows[0].Amount != 250 {
		t.Errorf("amount = %v, want 250", rows[0].Amount)
	}
}
