package handler

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/service"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportHandler serves the expense charts page.
type ReportHandler struct {
	DB *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{DB: db}
}

// Charts renders the current month's per-category expense totals as
// parallel label/value arrays embedded for Chart.js.
func (h *ReportHandler) Charts(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	month := util.MonthKey(time.Now())
	labels, values, err := service.ExpensesByCategory(h.DB, user.ID, month)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}
	valuesJSON, err := json.Marshal(values)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	c.HTML(http.StatusOK, "reports.html", pageData(c, gin.H{
		"HasData": len(labels) > 0,
		"Labels":  template.JS(labelsJSON),
		"Values":  template.JS(valuesJSON),
	}))
}
