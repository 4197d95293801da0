package service

import (
	"testing"

	"github.com/Da20-Costa/mybudget/internal/models"
)

func TestProcessRecurring_MaterializesOncePerMonth(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	rule := models.RecurringRule{
		UserID:      user.ID,
		Description: "Rent",
		Amount:      800,
		Type:        models.TypeExpense,
		Category:    "Housing",
		DayOfMonth:  5,
	}
	if err := db.Create(&rule).Error; err != nil {
		t.Fatalf("create rule: %v", err)
	}

	if err := ProcessRecurring(db, user.ID, "2025-09"); err != nil {
		t.Fatalf("ProcessRecurring() error = %v", err)
	}
	if err := ProcessRecurring(db, user.ID, "2025-09"); err != nil {
		t.Fatalf("ProcessRecurring() second run error = %v", err)
	}

	var count int64
	db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("transaction count = %d, want 1 (idempotent per month)", count)
	}

	var updated models.RecurringRule
	if err := db.First(&updated, rule.ID).Error; err != nil {
		t.Fatalf("reload rule: %v", err)
	}
	if updated.LastAdded == nil || *updated.LastAdded != "2025-09" {
		t.Errorf("rule.LastAdded = %v, want 2025-09", updated.LastAdded)
	}
}

func TestProcessRecurring_NewMonthAddsAgain(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	last := "2025-08"
	rule := models.RecurringRule{
		UserID:      user.ID,
		Description: "Salary",
		Amount:      3000,
		Type:        models.TypeIncome,
		Category:    "Salary",
		DayOfMonth:  1,
		LastAdded:   &last,
	}
	if err := db.Create(&rule).Error; err != nil {
		t.Fatalf("create rule: %v", err)
	}

	if err := ProcessRecurring(db, user.ID, "2025-09"); err != nil {
		t.Fatalf("ProcessRecurring() error = %v", err)
	}

	var count int64
	db.Model(&models.Transaction{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("transaction count = %d, want 1", count)
	}
}

func TestProcessRecurring_ClampsDayTo28(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	rule := models.RecurringRule{
		UserID:      user.ID,
		Description: "Subscription",
		Amount:      15,
		Type:        models.TypeExpense,
		Category:    "Leisure",
		DayOfMonth:  31,
	}
	if err := db.Create(&rule).Error; err != nil {
		t.Fatalf("create rule: %v", err)
	}

	// February: day 31 does not exist, the clamp must land on the 28th
	if err := ProcessRecurring(db, user.ID, "2025-02"); err != nil {
		t.Fatalf("ProcessRecurring() error = %v", err)
	}

	var tx models.Transaction
	if err := db.Where("user_id = ?", user.ID).First(&tx).Error; err != nil {
		t.Fatalf("load materialized transaction: %v", err)
	}
	if got := tx.Timestamp.Day(); got != 28 {
		t.Errorf("materialized day = %d, want 28", got)
	}
	if got := tx.Timestamp.Month(); got != 2 {
		t.Errorf("materialized month = %v, want February", got)
	}
}

func TestProcessRecurring_CopiesRuleFields(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "alice")

	rule := models.RecurringRule{
		UserID:      user.ID,
		Description: "Gym",
		Amount:      49.9,
		Type:        models.TypeExpense,
		Category:    "Health",
		DayOfMonth:  10,
	}
	if err := db.Create(&rule).Error; err != nil {
		t.Fatalf("create rule: %v", err)
	}

	if err := ProcessRecurring(db, user.ID, "2025-09"); err != nil {
		t.Fatalf("ProcessRecurring() error = %v", err)
	}

	var tx models.Transaction
	if err := db.Where("user_id = ?", user.ID).First(&tx).Error; err != nil {
		t.Fatalf("load materialized transaction: %v", err)
	}
	if tx.Description != "Gym" || tx.Amount != 49.9 || tx.Type != models.TypeExpense || tx.Category != "Health" {
		t.Errorf("materialized transaction = %+v, want rule fields copied", tx)
	}
}
