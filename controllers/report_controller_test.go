// file: controllers/report_controller_test.go
package controllers

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go-league-table/metrics"
	"go-league-table/middleware"
	"go-league-table/models"
)

func setupReportRouter(t *testing.T, rc *ReportController) *gin.Engine {
	router := setupTestRouter(t)
	authed := router.Group("/", middleware.AuthRequired)
	authed.GET("/export/matches.pdf", rc.ExportMatches)
	authed.GET("/export/standings.pdf", rc.ExportStandings)
	return router
}

func TestExportMatches(t *testing.T) {
	svc := new(MockLeagueService)
	svc.On("ListMatches", mock.Anything).Return([]models.Match{recorded}, nil)
	pub := new(MockPublisher)
	pub.On("Count", metrics.ReportsExported, map[string]string{"Report": "matches"}).Once()
	router := setupReportRouter(t, NewReportController(svc, pub))

	w := doGet(router, "/export/matches.pdf", loginAs(t, router, "user"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="match_list.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
	pub.AssertExpectations(t)
}

func TestExportStandings(t *testing.T) {
	svc := new(MockLeagueService)
	svc.On("Standings", mock.Anything).Return([]models.StandingsRow{{Team: "Porto", Points: 3, Played: 1, Wins: 1}}, nil)
	pub := new(MockPublisher)
	pub.On("Count", metrics.ReportsExported, map[string]string{"Report": "standings"}).Once()
	router := setupReportRouter(t, NewReportController(svc, pub))

	w := doGet(router, "/export/standings.pdf", loginAs(t, router, "user"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="standings.pdf"`, w.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
	pub.AssertExpectations(t)
}

func TestExportStandings_RenderFailure(t *testing.T) {
	svc := new(MockLeagueService)
	svc.On("Standings", mock.Anything).Return([]models.StandingsRow{}, nil)
	pub := new(MockPublisher)
	rc := NewReportController(svc, pub)
	rc.WriteStandings = func(io.Writer, []models.StandingsRow) error { return errors.New("font missing") }
	router := setupReportRouter(t, rc)

	w := doGet(router, "/export/standings.pdf", loginAs(t, router, "user"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "failed to generate PDF: font missing", w.Body.String())
	pub.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestExports_RequireLogin(t *testing.T) {
	router := setupReportRouter(t, NewReportController(new(MockLeagueService), new(MockPublisher)))

	for _, path := range []string{"/export/matches.pdf", "/export/standings.pdf"} {
		w := doGet(router, path, nil)
		assert.Equal(t, http.StatusFound, w.Code, path)
		assert.Equal(t, "/login", w.Header().Get("Location"), path)
	}
}
