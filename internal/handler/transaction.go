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

// TransactionHandler serves the add-transaction page and deletion.
type TransactionHandler struct {
	DB *gorm.DB
}

func NewTransactionHandler(db *gorm.DB) *TransactionHandler {
	return &TransactionHandler{DB: db}
}

var transactionTypes = []string{models.TypeIncome, models.TypeExpense}

func (h *TransactionHandler) AddForm(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	categories, err := service.VisibleCategories(h.DB, user.ID)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	c.HTML(http.StatusOK, "add.html", pageData(c, gin.H{
		"Types":      transactionTypes,
		"Categories": categories,
	}))
}

func (h *TransactionHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	amountStr := c.PostForm("amount")
	txType := c.PostForm("type")
	description := c.PostForm("description")
	category := c.PostForm("category")

	if amountStr == "" {
		apology(c, http.StatusBadRequest, "missing_value")
		return
	}
	if txType == "" {
		apology(c, http.StatusBadRequest, "missing_type")
		return
	}
	if category == "" {
		apology(c, http.StatusBadRequest, "missing_category")
		return
	}
	if txType != models.TypeIncome && txType != models.TypeExpense {
		apology(c, http.StatusBadRequest, "invalid_type")
		return
	}

	amount, err := util.ParseAmount(amountStr)
	if err != nil {
		apology(c, http.StatusBadRequest, "invalid_value")
		return
	}

	transaction := models.Transaction{
		UserID:      user.ID,
		Description: description,
		Amount:      amount,
		Type:        txType,
		Category:    category,
		Timestamp:   time.Now(),
	}
	if err := h.DB.Create(&transaction).Error; err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	setFlash(c, "success_transaction")
	c.Redirect(http.StatusFound, "/")
}

// Delete removes a transaction scoped to the owner. A foreign or absent
// id deletes nothing and still redirects; nothing to report.
func (h *TransactionHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if idStr := c.PostForm("transaction_id"); idStr != "" {
		if id, err := strconv.Atoi(idStr); err == nil && id > 0 {
			h.DB.Where("id = ? AND user_id = ?", id, user.ID).
				Delete(&models.Transaction{})
			setFlash(c, "delete_transaction")
		}
	}

	redirectBack(c, "/")
}
