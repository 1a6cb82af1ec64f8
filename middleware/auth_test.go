// file: middleware/auth_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-league-table/models"
)

// Helper function to create a test router with a protected route
func setupAuthTestRouter() *gin.Engine {
	router := setupTestRouter()

	// Protected route using AuthRequired middleware
	router.GET("/protected", AuthRequired, func(c *gin.Context) {
		auth, _ := CurrentAuth(c)
		c.String(http.StatusOK, "Welcome "+auth.Username+" ("+string(auth.Role)+")")
	})

	return router
}

// Test: Unauthenticated users should be redirected to `/login`
func TestAuthRequired_Unauthenticated(t *testing.T) {
	router := setupAuthTestRouter()

	w := get(router, "/protected", nil)

	assert.Equal(t, http.StatusFound, w.Code, "Expected 302 Redirect")
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

// Test: Authenticated users reach the route with their identity attached
func TestAuthRequired_Authenticated(t *testing.T) {
	router := setupAuthTestRouter()
	cookie := loginCookie(router, "fan", "user")
	require.NotNil(t, cookie, "session cookie not found")

	w := get(router, "/protected", cookie)

	assert.Equal(t, http.StatusOK, w.Code, "Expected 200 OK for authenticated user")
	assert.Equal(t, "Welcome fan (user)", w.Body.String())
}

func TestCurrentAuth_Missing(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := CurrentAuth(c)
	assert.False(t, ok)
}

func TestAuthContext_IsAdmin(t *testing.T) {
	assert.True(t, AuthContext{Role: models.RoleAdmin}.IsAdmin())
	assert.False(t, AuthContext{Role: models.RoleUser}.IsAdmin())
	assert.False(t, AuthContext{}.IsAdmin())
}
