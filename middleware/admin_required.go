// Package middleware description is Middleware that checks if the user is an admin.
// file: middleware/admin_required.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go-league-table/logger"
)

// AdminRequired is a middleware that checks if the user is an admin.
// It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth, ok := CurrentAuth(c)

		logger.Debug.Printf("AdminRequired Middleware - user=%q role=%q ok=%v", auth.Username, auth.Role, ok)

		if !ok || !auth.IsAdmin() {
			logger.Warn.Printf("AdminRequired Middleware - blocked %q on %s", auth.Username, c.Request.URL.Path)
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		logger.Debug.Println("AdminRequired Middleware - Passed, continuing request")
		c.Next()
	}
}
