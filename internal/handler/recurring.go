package handler

import (
	"net/http"
	"strconv"

	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/models"
	"github.com/Da20-Costa/mybudget/internal/service"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RecurringHandler serves the recurring-transactions page.
type RecurringHandler struct {
	DB *gorm.DB
}

func NewRecurringHandler(db *gorm.DB) *RecurringHandler {
	return &RecurringHandler{DB: db}
}

// recurringRow is a display-ready recurring rule.
type recurringRow struct {
	ID          uint
	Description string
	Amount      string
	Type        string
	Category    string
	DayOfMonth  int
}

func (h *RecurringHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	lang := middleware.Lang(c)

	var rules []models.RecurringRule
	if err := h.DB.Where("user_id = ?", user.ID).Find(&rules).Error; err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	rows := make([]recurringRow, 0, len(rules))
	for _, r := range rules {
		rows = append(rows, recurringRow{
			ID:          r.ID,
			Description: r.Description,
			Amount:      util.FormatCurrency(lang, r.Amount),
			Type:        r.Type,
			Category:    r.Category,
			DayOfMonth:  r.DayOfMonth,
		})
	}

	categories, err := service.VisibleCategories(h.DB, user.ID)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	c.HTML(http.StatusOK, "recurring.html", pageData(c, gin.H{
		"Rules":      rows,
		"Categories": categories,
		"Types":      transactionTypes,
	}))
}

func (h *RecurringHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	amountStr := c.PostForm("amount")
	txType := c.PostForm("type")
	description := c.PostForm("description")
	category := c.PostForm("category")
	dayStr := c.PostForm("day_of_month")

	if amountStr == "" || txType == "" || description == "" || category == "" || dayStr == "" {
		apology(c, http.StatusBadRequest, "missing_recurring")
		return
	}

	amount, err := util.ParseAmount(amountStr)
	if err != nil {
		apology(c, http.StatusBadRequest, "invalid_recurring")
		return
	}
	day, err := util.ParseDayOfMonth(dayStr)
	if err != nil {
		apology(c, http.StatusBadRequest, "invalid_recurring")
		return
	}
	if txType != models.TypeIncome && txType != models.TypeExpense {
		apology(c, http.StatusBadRequest, "invalid_recurring")
		return
	}

	rule := models.RecurringRule{
		UserID:      user.ID,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		DayOfMonth:  day,
	}
	if err := h.DB.Create(&rule).Error; err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	setFlash(c, "save_recurring")
	c.Redirect(http.StatusFound, "/recurring")
}

func (h *RecurringHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if idStr := c.PostForm("recurring_id"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil && id > 0 {
			h.DB.Where("id = ? AND user_id = ?", id, user.ID).
				Delete(&models.RecurringRule{})
			setFlash(c, "delete_recurring")
		}
	}

	c.Redirect(http.StatusFound, "/recurring")
}
