// Package middleware provides request filters and security checks for the application.
// File: middleware/auth.go
package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go-league-table/logger"
	"go-league-table/models"
)

// Session keys written at login.
const (
	SessionUser = "user"
	SessionRole = "role"
)

const authContextKey = "auth"

// AuthContext is the logged-in identity for the current request.
type AuthContext struct {
	Username string
	Role     models.Role
}

// IsAdmin reports whether the request may change league data.
func (a AuthContext) IsAdmin() bool { return a.Role == models.RoleAdmin }

// -------------- authentication middleware --------------

// AuthRequired is a middleware that ensures the user is logged in.
// How it works:
// - Reads "user" and "role" from the session.
// - If no user is found, redirects to "/login" and aborts execution.
// - Otherwise stores an AuthContext on the request for handlers and
//   templates, and the request proceeds.
// Usage:
//
//	router.Use(AuthRequired)
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	user, _ := session.Get(SessionUser).(string)

	// block request if user session is missing
	if user == "" {
		logger.Warn.Printf("AuthRequired: No user in session for %s", c.Request.URL.Path)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	role, _ := session.Get(SessionRole).(string)
	c.Set(authContextKey, AuthContext{Username: user, Role: models.Role(role)})

	logger.Debug.Printf("[AuthRequired] %s (%s) authenticated - proceeding with request", user, role)
	c.Next()
}

// CurrentAuth returns the identity set by AuthRequired.
func CurrentAuth(c *gin.Context) (AuthContext, bool) {
	v, ok := c.Get(authContextKey)
	if !ok {
		return AuthContext{}, false
	}
	auth, ok := v.(AuthContext)
	return auth, ok
}
