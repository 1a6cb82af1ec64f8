// Package controllers handles user authentication and session management.
// File: controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go-league-table/logger"
	"go-league-table/middleware"
	"go-league-table/services"
)

// AuthController logs users in and out.
type AuthController struct {
	LeagueService services.LeagueServiceInterface
}

func NewAuthController(service services.LeagueServiceInterface) *AuthController {
	return &AuthController{LeagueService: service}
}

// ShowLoginPage renders the login form.
func (ac *AuthController) ShowLoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", nil)
}

// ------------------ login handling ------------------

// LoginHandler checks the submitted credentials. On success the username
// and role go into the session and the user lands on the home page; on
// failure a flash message is queued and the form is shown again.
func (ac *AuthController) LoginHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := ac.LeagueService.Authenticate(c.Request.Context(), username, password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		logger.Warn.Printf("LoginHandler: failed login for %q", username)
		flash(c, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	if err != nil {
		serverError(c, "LoginHandler", err)
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUser, user.Username)
	session.Set(middleware.SessionRole, string(user.Role))
	if err := session.Save(); err != nil {
		serverError(c, "LoginHandler: saving session", err)
		return
	}

	logger.Info.Printf("LoginHandler: %s logged in as %s", user.Username, user.Role)
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the session.
func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	user := session.Get(middleware.SessionUser)

	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: Error saving session during logout: %v", err)
	} else {
		logger.Info.Printf("Logout: %v logged out", user)
	}

	c.Redirect(http.StatusFound, "/login")
}
