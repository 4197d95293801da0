package middleware

import (
	"net/http"
	"time"

	"github.com/Da20-Costa/mybudget/internal/models"
	"github.com/Da20-Costa/mybudget/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Cookie names shared between the middleware and the auth handlers.
const (
	SessionCookie = "mb_session"
	LangCookie    = "mb_lang"
	FlashCookie   = "mb_flash"
)

// CurrentUserKey is the gin context key holding the *models.User set by
// AuthMiddleware.
const CurrentUserKey = "currentUser"

// AuthMiddleware validates the session cookie and puts the current user
// into the context. Anything wrong with the cookie, the token, the
// session row or the user redirects to /login; pages are HTML, so there
// is no JSON error surface here.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			redirectToLogin(c)
			return
		}

		claims, err := util.ParseToken(jwtSecret, tokenStr)
		if err != nil || claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
			redirectToLogin(c)
			return
		}

		var session models.Session
		if err := db.First(&session, "id = ?", claims.SessionID).Error; err != nil {
			redirectToLogin(c)
			return
		}
		if session.Revoked || session.ExpiresAt.Before(time.Now()) {
			redirectToLogin(c)
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			redirectToLogin(c)
			return
		}

		c.Set(CurrentUserKey, &user)
		c.Next()
	}
}

func redirectToLogin(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}

// CurrentUser fetches the user placed in the context by AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}
