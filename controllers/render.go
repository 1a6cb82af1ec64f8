// Package controllers holds the gin handlers for the league pages.
// File: controllers/render.go
package controllers

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go-league-table/logger"
	"go-league-table/middleware"
	"go-league-table/services"
	"go-league-table/store"
)

const conflictMessage = "The league data was changed by someone else. Reload the page and try again."

// TemplateFuncs are the helpers available to every page template.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		// inc turns a zero-based range index into a table position
		"inc": func(i int) int { return i + 1 },
	}
}

// render adds the current identity and any pending flash messages to data
// before executing the template.
func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if auth, ok := middleware.CurrentAuth(c); ok {
		data["Auth"] = auth
	}

	session := sessions.Default(c)
	if flashes := session.Flashes(); len(flashes) > 0 {
		data["Flashes"] = flashes
		if err := session.Save(); err != nil {
			logger.Error.Printf("render: failed to clear flashes: %v", err)
		}
	}

	c.HTML(status, name, data)
}

// flash queues a message for the next rendered page.
func flash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.AddFlash(message)
	if err := session.Save(); err != nil {
		logger.Error.Printf("flash: failed to save session: %v", err)
	}
}

// errorStatus maps a service error to the HTTP status sent back.
func errorStatus(err error) int {
	switch {
	case services.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrMatchNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrVersionConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage is the text shown to the user for err.
func errorMessage(err error) string {
	switch errorStatus(err) {
	case http.StatusConflict:
		return conflictMessage
	case http.StatusInternalServerError:
		return "Internal error, please try again."
	default:
		return err.Error()
	}
}

// serverError logs err and answers with a plain 500.
func serverError(c *gin.Context, where string, err error) {
	logger.Error.Printf("%s: %v", where, err)
	c.String(http.StatusInternalServerError, "Internal error, please try again.")
}
