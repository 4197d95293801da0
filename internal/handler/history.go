package handler

import (
	"net/http"

	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/service"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HistoryHandler serves the filtered transaction list.
type HistoryHandler struct {
	DB *gorm.DB
}

func NewHistoryHandler(db *gorm.DB) *HistoryHandler {
	return &HistoryHandler{DB: db}
}

// List shows the user's transactions, optionally filtered by ?month=
// ("YYYY-MM") and/or ?category= (exact name). Both filters conjoin;
// absent filters mean no constraint.
func (h *HistoryHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	lang := middleware.Lang(c)

	month := c.Query("month")
	category := c.Query("category")

	if month != "" {
		if err := util.ValidateMonthKey(month); err != nil {
			apology(c, http.StatusBadRequest, "invalid_value")
			return
		}
	}

	transactions, err := service.FilterTransactions(h.DB, user.ID, month, category)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	categories, err := service.VisibleCategories(h.DB, user.ID)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	c.HTML(http.StatusOK, "history.html", pageData(c, gin.H{
		"Transactions":   transactionRows(lang, transactions),
		"Categories":     categories,
		"MonthFilter":    month,
		"CategoryFilter": category,
	}))
}
