package middleware

import "github.com/gin-gonic/gin"

// NoCache disables response caching on every page; the app shows live
// account data and the back button must not serve stale pages.
func NoCache() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.Next()
	}
}
