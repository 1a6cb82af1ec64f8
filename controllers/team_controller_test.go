// file: controllers/team_controller_test.go
package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go-league-table/metrics"
	"go-league-table/middleware"
	"go-league-table/models"
	"go-league-table/services"
	"go-league-table/store"
)

func setupTeamRouter(t *testing.T, svc *MockLeagueService, pub *MockPublisher) *gin.Engine {
	router := setupTestRouter(t)
	tc := NewTeamController(svc, pub)
	authed := router.Group("/", middleware.AuthRequired)
	authed.GET("/teams", tc.ListTeams)
	admin := authed.Group("/", middleware.AdminRequired())
	admin.GET("/teams/new", tc.NewTeamForm)
	admin.POST("/teams", tc.CreateTeam)
	return router
}

func TestListTeams(t *testing.T) {
	svc := new(MockLeagueService)
	svc.On("ListTeams", mock.Anything).Return([]models.Team{{Name: "Porto"}, {Name: "Braga"}}, nil)
	router := setupTeamRouter(t, svc, new(MockPublisher))

	w := doGet(router, "/teams", loginAs(t, router, "user"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<li>Porto</li><li>Braga</li>")
}

func TestListTeams_RequiresLogin(t *testing.T) {
	router := setupTeamRouter(t, new(MockLeagueService), new(MockPublisher))

	w := doGet(router, "/teams", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestNewTeamForm_AdminOnly(t *testing.T) {
	router := setupTeamRouter(t, new(MockLeagueService), new(MockPublisher))

	w := doGet(router, "/teams/new", loginAs(t, router, "user"))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = doGet(router, "/teams/new", loginAs(t, router, "admin"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "team form")
}

func TestCreateTeam_Success(t *testing.T) {
	svc := new(MockLeagueService)
	svc.On("AddTeam", mock.Anything, "Sporting").Return(models.Team{Name: "Sporting"}, nil).Once()
	svc.On("ListTeams", mock.Anything).Return([]models.Team{{Name: "Sporting"}}, nil)
	pub := new(MockPublisher)
	pub.On("Count", metrics.TeamsCreated, map[string]string(nil)).Once()
	router := setupTeamRouter(t, svc, pub)
	cookie := loginAs(t, router, "admin")

	w := doPost(router, "/teams", url.Values{"name": {"Sporting"}}, cookie)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/teams", w.Header().Get("Location"))
	list := doGet(router, "/teams", sessionCookie(w))
	assert.Contains(t, list.Body.String(), "[flash:Team Sporting added.]")
	svc.AssertExpectations(t)
	pub.AssertExpectations(t)
}

func TestCreateTeam_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"duplicate", services.ErrDuplicateTeam, http.StatusBadRequest, services.ErrDuplicateTeam.Error()},
		{"empty", services.ErrTeamNameRequired, http.StatusBadRequest, services.ErrTeamNameRequired.Error()},
		{"conflict", store.ErrVersionConflict, http.StatusConflict, conflictMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockLeagueService)
			svc.On("AddTeam", mock.Anything, "Porto").Return(models.Team{}, tt.err).Once()
			pub := new(MockPublisher)
			router := setupTeamRouter(t, svc, pub)

			w := doPost(router, "/teams", url.Values{"name": {"Porto"}}, loginAs(t, router, "admin"))

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), "team form Porto [error:"+tt.msg+"]")
			pub.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateTeam_StorageError(t *testing.T) {
	svc := new(MockLeagueService)
	svc.On("AddTeam", mock.Anything, "Porto").Return(models.Team{}, errors.New("read-only filesystem")).Once()
	router := setupTeamRouter(t, svc, new(MockPublisher))

	w := doPost(router, "/teams", url.Values{"name": {"Porto"}}, loginAs(t, router, "admin"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
