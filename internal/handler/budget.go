package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/models"
	"github.com/Da20-Costa/mybudget/internal/service"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// BudgetHandler serves the monthly budgets page.
type BudgetHandler struct {
	DB *gorm.DB
}

func NewBudgetHandler(db *gorm.DB) *BudgetHandler {
	return &BudgetHandler{DB: db}
}

// budgetRow is a display-ready budget line.
type budgetRow struct {
	ID       uint
	Category string
	Amount   string
}

func (h *BudgetHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	lang := middleware.Lang(c)
	month := util.MonthKey(time.Now())

	var budgets []models.Budget
	if err := h.DB.Where("user_id = ? AND month = ?", user.ID, month).
		Find(&budgets).Error; err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	rows := make([]budgetRow, 0, len(budgets))
	for _, b := range budgets {
		rows = append(rows, budgetRow{
			ID:       b.ID,
			Category: b.CategoryName,
			Amount:   util.FormatCurrency(lang, b.Amount),
		})
	}

	categories, err := h.expenseCategories(user.ID)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	c.HTML(http.StatusOK, "budget.html", pageData(c, gin.H{
		"Budgets":    rows,
		"Categories": categories,
		"Month":      month,
	}))
}

// Save upserts the budget for (user, category, current month): at most
// one row per key, a resubmission updates the amount in place.
func (h *BudgetHandler) Save(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	category := c.PostForm("category")
	amountStr := c.PostForm("amount")

	if category == "" || amountStr == "" {
		apology(c, http.StatusBadRequest, "invalid_budget")
		return
	}

	amount, err := util.ParseBudgetAmount(amountStr)
	if err != nil {
		apology(c, http.StatusBadRequest, "invalid_value")
		return
	}

	month := util.MonthKey(time.Now())
	if err := service.UpsertBudget(h.DB, user.ID, category, amount, month); err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	setFlash(c, "save_budget")
	c.Redirect(http.StatusFound, "/budget")
}

func (h *BudgetHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if idStr := c.PostForm("budget_id"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil && id > 0 {
			h.DB.Where("id = ? AND user_id = ?", id, user.ID).
				Delete(&models.Budget{})
			setFlash(c, "delete_budget")
		}
	}

	c.Redirect(http.StatusFound, "/budget")
}

// expenseCategories lists budgetable categories: everything visible to
// the user except Salary, which only makes sense as income.
func (h *BudgetHandler) expenseCategories(userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := h.DB.Where("(user_id IS NULL OR user_id = ?) AND name != ?", userID, "Salary").
		Order("name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}
