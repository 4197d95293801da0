package middleware

import (
	"github.com/Da20-Costa/mybudget/internal/i18n"

	"github.com/gin-gonic/gin"
)

// LangKey is the gin context key holding the resolved UI language.
const LangKey = "lang"

// LocaleMiddleware resolves the language cookie into the request
// context. Handlers and formatters never look at the cookie directly;
// language is always passed on explicitly from here.
func LocaleMiddleware(defaultLang string) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := defaultLang
		if v, err := c.Cookie(LangCookie); err == nil && i18n.Supported(v) {
			lang = v
		}
		c.Set(LangKey, lang)
		c.Next()
	}
}

// Lang returns the request language resolved by LocaleMiddleware.
func Lang(c *gin.Context) string {
	if v, ok := c.Get(LangKey); ok {
		if lang, ok := v.(string); ok {
			return lang
		}
	}
	return i18n.LangEN
}
