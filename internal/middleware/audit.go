package middleware

import (
	"net/http"
	"strings"

	"github.com/Da20-Costa/mybudget/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Form fields that must never end up in the audit log.
var sensitiveFields = map[string]bool{
	"password":     true,
	"confirmation": true,
}

// AuditMiddleware records mutating requests of logged-in users. Runs
// after the handler so the form is already parsed; a failed write is
// ignored, auditing never breaks a page.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method != http.MethodPost {
			return
		}

		user, ok := CurrentUser(c)
		if !ok {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if summary := formSummary(c); summary != "" {
			action += " " + summary
		}

		userID := user.ID
		log := models.AuditLog{
			UserID:    &userID,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&log).Error
	}
}

func formSummary(c *gin.Context) string {
	if c.Request.PostForm == nil {
		return ""
	}
	var parts []string
	for key, values := range c.Request.PostForm {
		if sensitiveFields[key] || len(values) == 0 {
			continue
		}
		parts = append(parts, key+"="+values[0])
	}
	summary := strings.Join(parts, " ")
	if len(summary) > 1000 {
		summary = summary[:1000]
	}
	return summary
}
