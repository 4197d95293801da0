package handler

import (
	"github.com/Da20-Costa/mybudget/internal/i18n"
	"github.com/Da20-Costa/mybudget/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetLanguage switches the UI language (en/pt) via cookie and sends the
// browser back where it came from. Unknown languages are ignored.
func SetLanguage(c *gin.Context) {
	lang := c.Param("lang")
	if i18n.Supported(lang) {
		// a year; language choice should survive the session
		c.SetCookie(middleware.LangCookie, lang, 365*24*3600, "/", "", false, false)
	}
	redirectBack(c, "/")
}
