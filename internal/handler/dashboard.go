package handler

import (
	"net/http"
	"time"

	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/service"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DashboardHandler serves the index page.
type DashboardHandler struct {
	DB          *gorm.DB
	RecentLimit int
}

func NewDashboardHandler(db *gorm.DB, recentLimit int) *DashboardHandler {
	if recentLimit <= 0 {
		recentLimit = 5
	}
	return &DashboardHandler{DB: db, RecentLimit: recentLimit}
}

// progressRow is a display-ready budget progress bar.
type progressRow struct {
	Category   string
	Budgeted   string
	Spent      string
	Percentage float64
	BarWidth   int // capped at 100 so overspent bars stay inside the track
}

// Index runs the per-month maintenance (budget carry-forward, then
// recurring materialization) and renders the dashboard.
func (h *DashboardHandler) Index(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}
	lang := middleware.Lang(c)

	now := time.Now()
	month := util.MonthKey(now)

	if err := service.CarryForwardBudgets(h.DB, user.ID, month); err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}
	if err := service.ProcessRecurring(h.DB, user.ID, month); err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	dash, err := service.BuildDashboard(h.DB, user.ID, now, h.RecentLimit)
	if err != nil {
		apology(c, http.StatusInternalServerError, "server_error")
		return
	}

	progress := make([]progressRow, 0, len(dash.Progress))
	for _, p := range dash.Progress {
		width := int(p.Percentage)
		if width > 100 {
			width = 100
		}
		progress = append(progress, progressRow{
			Category:   p.Category,
			Budgeted:   util.FormatCurrency(lang, p.Budgeted),
			Spent:      util.FormatCurrency(lang, p.Spent),
			Percentage: p.Percentage,
			BarWidth:   width,
		})
	}

	c.HTML(http.StatusOK, "index.html", pageData(c, gin.H{
		"TotalIncome":  util.FormatCurrency(lang, dash.TotalIncome),
		"TotalExpense": util.FormatCurrency(lang, dash.TotalExpense),
		"Balance":      util.FormatCurrency(lang, dash.Balance),
		"Recent":       transactionRows(lang, dash.Recent),
		"Progress":     progress,
	}))
}
