// file: middleware/test_helpers_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// setupTestRouter returns a router with a cookie session and a helper route
// that logs a user in.
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("testsession", store))

	router.GET("/set-session", func(c *gin.Context) {
		session := sessions.Default(c)
		session.Set(SessionUser, c.Query("user"))
		session.Set(SessionRole, c.Query("role"))
		_ = session.Save()
		c.String(http.StatusOK, "session set")
	})
	return router
}

// loginCookie returns the session cookie for the given user and role.
func loginCookie(router *gin.Engine, user, role string) *http.Cookie {
	req, _ := http.NewRequest("GET", "/set-session?user="+user+"&role="+role, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	for _, c := range w.Result().Cookies() {
		if c.Name == "testsession" {
			return c
		}
	}
	return nil
}

func get(router *gin.Engine, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
