// file: controllers/test_helpers_test.go
package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go-league-table/middleware"
)

// setupTestRouter creates a new Gin engine with session middleware and fake HTML templates.
func setupTestRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	// Set up sessions with cookie store.
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	// Create minimal templates to avoid panics during testing.
	tmpDir := t.TempDir()
	if err := createDummyTemplates(tmpDir); err != nil {
		t.Fatalf("Failed to create dummy templates: %v", err)
	}

	router.LoadHTMLGlob(filepath.Join(tmpDir, "*.html"))
	return router
}

// createDummyTemplates writes a set of minimal HTML templates to the provided directory.
func createDummyTemplates(dir string) error {
	flashes := `{{range .Flashes}}[flash:{{.}}]{{end}}`
	templates := map[string]string{
		"login.html":      `<html><body>login ` + flashes + `</body></html>`,
		"home.html":       `<html><body>home {{.Auth.Username}} {{.ShareURL}}</body></html>`,
		"teams.html":      `<html><body>` + flashes + `{{range .Teams}}<li>{{.Name}}</li>{{end}}</body></html>`,
		"team_form.html":  `<html><body>team form {{.Name}} [error:{{.Error}}]</body></html>`,
		"matches.html":    `<html><body>` + flashes + `{{range .Matches}}<li>{{.ID}} {{.ScoreLine}}</li>{{end}}{{if .Auth.IsAdmin}}admin{{end}}</body></html>`,
		"match_form.html": `<html><body>{{.Form.Title}} {{.Form.Action}} {{.Form.Input.Home}} [error:{{.Form.Error}}]{{range .Teams}}<option>{{.Name}}</option>{{end}}</body></html>`,
		"standings.html":  `<html><body>{{range .Rows}}<tr>{{.Team}} {{.Points}} {{.GoalDifference}}</tr>{{end}}</body></html>`,
		"schedule.html":   `<html><body>up:{{range .Upcoming}}{{.ID}},{{end}} over:{{range .Overdue}}{{.ID}},{{end}}</body></html>`,
		"statistics.html": `<html><body>matches={{.Summary.TotalMatches}} goals={{.Summary.TotalGoals}} best={{.Summary.MostGoalsFor}}</body></html>`,
		"charts.html":     `<html><body>{{range .Chart.Labels}}{{.}};{{end}}</body></html>`,
	}

	for name, content := range templates {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}

// SetSession sets the given key/value pairs in the session using a helper route
// and returns the session cookie that can be attached to subsequent test requests.
func SetSession(router *gin.Engine, route string, data map[string]interface{}) *http.Cookie {
	// Create a helper route for setting session values.
	router.GET(route, func(c *gin.Context) {
		session := sessions.Default(c)
		for key, value := range data {
			session.Set(key, value)
		}
		if err := session.Save(); err != nil {
			c.String(http.StatusInternalServerError, "session save failed")
			return
		}
		c.String(http.StatusOK, "session set")
	})

	// Call the helper route.
	req, _ := http.NewRequest("GET", route, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return sessionCookie(w)
}

// loginAs returns a session cookie for the given role.
func loginAs(t *testing.T, router *gin.Engine, role string) *http.Cookie {
	t.Helper()
	cookie := SetSession(router, "/set-session-"+role, map[string]interface{}{
		middleware.SessionUser: role + "-user",
		middleware.SessionRole: role,
	})
	require.NotNil(t, cookie, "Session cookie not found")
	return cookie
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "testsession" {
			return cookie
		}
	}
	return nil
}

func doGet(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func doPost(router *gin.Engine, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
