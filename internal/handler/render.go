// Package handler contains the page handlers. Each concern gets its own
// handler struct around *gorm.DB, mirroring one route group per file.
package handler

import (
	"net/http"

	"github.com/Da20-Costa/mybudget/internal/i18n"
	"github.com/Da20-Costa/mybudget/internal/middleware"
	"github.com/Da20-Costa/mybudget/internal/models"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
)

// pageData decorates a template payload with the common fields every
// page needs: resolved language, translation table, the logged-in
// username and a pending flash message, if any.
func pageData(c *gin.Context, data gin.H) gin.H {
	lang := middleware.Lang(c)
	data["Lang"] = lang
	data["T"] = i18n.Table(lang)
	if user, ok := middleware.CurrentUser(c); ok {
		data["Username"] = user.Username
	}
	if msg := popFlash(c, lang); msg != "" {
		data["Flash"] = msg
	}
	return data
}

// apology renders the localized error page with the given status code.
// Validation failures are pages, never panics or JSON errors.
func apology(c *gin.Context, code int, key string) {
	lang := middleware.Lang(c)
	c.HTML(code, "apology.html", gin.H{
		"Lang":   lang,
		"T":      i18n.Table(lang),
		"Top":    code,
		"Bottom": i18n.T(lang, key),
	})
}

// setFlash stores a one-shot message key, shown by the next page render.
func setFlash(c *gin.Context, key string) {
	c.SetCookie(middleware.FlashCookie, key, 60, "/", "", false, true)
}

// popFlash reads and clears the flash cookie, resolving the stored key
// against the current language.
func popFlash(c *gin.Context, lang string) string {
	key, err := c.Cookie(middleware.FlashCookie)
	if err != nil || key == "" {
		return ""
	}
	c.SetCookie(middleware.FlashCookie, "", -1, "/", "", false, true)
	return i18n.T(lang, key)
}

// redirectBack sends the browser back to the referring page, or to
// fallback when the Referer header is absent.
func redirectBack(c *gin.Context, fallback string) {
	target := c.Request.Referer()
	if target == "" {
		target = fallback
	}
	c.Redirect(http.StatusFound, target)
}

// transactionRow is a display-ready transaction for templates: amounts
// and dates are pre-formatted for the request language.
type transactionRow struct {
	ID          uint
	Description string
	Amount      string
	Type        string
	Category    string
	Date        string
}

func transactionRows(lang string, transactions []models.Transaction) []transactionRow {
	rows := make([]transactionRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, transactionRow{
			ID:          t.ID,
			Description: t.Description,
			Amount:      util.FormatCurrency(lang, t.Amount),
			Type:        t.Type,
			Category:    t.Category,
			Date:        util.FormatDate(lang, t.Timestamp),
		})
	}
	return rows
}
