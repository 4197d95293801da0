package service

import (
	"fmt"
	"time"

	"github.com/Da20-Costa/mybudget/internal/models"
	"github.com/Da20-Costa/mybudget/internal/util"

	"gorm.io/gorm"
)

// BudgetProgress is one row of the dashboard's budget-vs-spent table.
type BudgetProgress struct {
	Category   string
	Budgeted   float64
	Spent      float64
	Percentage float64
}

// Dashboard aggregates everything the index page shows for one user.
type Dashboard struct {
	TotalIncome  float64
	TotalExpense float64
	Balance      float64
	Recent       []models.Transaction
	Progress     []BudgetProgress
}

// BuildDashboard computes the current month's totals, the most recent
// transactions and the per-category budget progress for userID.
// Missing sums count as zero; a zero budgeted amount reports 0%.
func BuildDashboard(db *gorm.DB, userID uint, now time.Time, recentLimit int) (*Dashboard, error) {
	month := util.MonthKey(now)
	start, end, err := monthRange(month)
	if err != nil {
		return nil, err
	}

	income, err := sumByType(db, userID, models.TypeIncome, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum income: %w", err)
	}
	expense, err := sumByType(db, userID, models.TypeExpense, start, end)
	if err != nil {
		return nil, fmt.Errorf("sum expenses: %w", err)
	}

	var recent []models.Transaction
	if err := db.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Limit(recentLimit).
		Find(&recent).Error; err != nil {
		return nil, fmt.Errorf("load recent transactions: %w", err)
	}

	var budgets []models.Budget
	if err := db.Where("user_id = ? AND month = ?", userID, month).
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("load budgets: %w", err)
	}

	spentByCategory, err := expenseTotals(db, userID, start, end, "")
	if err != nil {
		return nil, fmt.Errorf("sum expenses by category: %w", err)
	}
	spentMap := make(map[string]float64, len(spentByCategory))
	for _, row := range spentByCategory {
		spentMap[row.Category] = row.Total
	}

	progress := make([]BudgetProgress, 0, len(budgets))
	for _, b := range budgets {
		spent := spentMap[b.CategoryName]
		percentage := 0.0
		if b.Amount > 0 {
			percentage = spent / b.Amount * 100
		}
		progress = append(progress, BudgetProgress{
			Category:   b.CategoryName,
			Budgeted:   b.Amount,
			Spent:      spent,
			Percentage: percentage,
		})
	}

	return &Dashboard{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income - expense,
		Recent:       recent,
		Progress:     progress,
	}, nil
}

func sumByType(db *gorm.DB, userID uint, txType string, start, end time.Time) (float64, error) {
	var total *float64
	err := db.Model(&models.Transaction{}).
		Where("user_id = ? AND type = ? AND timestamp >= ? AND timestamp < ?",
			userID, txType, start, end).
		Select("SUM(amount)").
		Row().Scan(&total)
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// categoryTotal is one GROUP BY category row.
type categoryTotal struct {
	Category string
	Total    float64
}

// expenseTotals sums Expense transactions per category over [start, end).
// orderBy is appended as-is when non-empty; callers pass a constant.
func expenseTotals(db *gorm.DB, userID uint, start, end time.Time, orderBy string) ([]categoryTotal, error) {
	q := db.Model(&models.Transaction{}).
		Select("category, SUM(amount) AS total").
		Where("user_id = ? AND type = ? AND timestamp >= ? AND timestamp < ?",
			userID, models.TypeExpense, start, end).
		Group("category")
	if orderBy != "" {
		q = q.Order(orderBy)
	}

	var rows []categoryTotal
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
