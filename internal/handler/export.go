package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/Da20-Costa/mybudget/internal/i18n"
	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/models"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportHandler downloads the user's full transaction history.
type ExportHandler struct {
	DB *gorm.DB
}

func NewExportHandler(db *gorm.DB) *ExportHandler {
	return &ExportHandler{DB: db}
}

func (h *ExportHandler) loadTransactions(userID uint) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := h.DB.Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&transactions).Error
	return transactions, err
}

func exportHeader(lang string) []string {
	return []string{
		i18n.T(lang, "date"),
		i18n.T(lang, "description"),
		i18n.T(lang, "type"),
		i18n.T(lang, "category"),
		i18n.T(lang, "amount"),
	}
}

// CSV exports all owned transactions as a CSV download.
func (h *ExportHandler) CSV(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	lang := middleware.Lang(c)

	transactions, err := h.loadTransactions(user.ID)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.csv\"",
		time.Now().Format("20060102")))

	// UTF-8 BOM so Excel detects the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeader(lang))
	for _, t := range transactions {
		writer.Write([]string{
			util.FormatDate(lang, t.Timestamp),
			t.Description,
			t.Type,
			t.Category,
			util.FormatCurrency(lang, t.Amount),
		})
	}
}

// XLSX exports all owned transactions as an Excel workbook.
func (h *ExportHandler) XLSX(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	lang := middleware.Lang(c)

	transactions, err := h.loadTransactions(user.ID)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	f.SetSheetName("Sheet1", sheet)

	for col, title := range exportHeader(lang) {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, title)
	}

	for row, t := range transactions {
		values := []interface{}{
			util.FormatDate(lang, t.Timestamp),
			t.Description,
			t.Type,
			t.Category,
			t.Amount,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
	}
}
