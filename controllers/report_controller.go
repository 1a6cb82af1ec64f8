// File: controllers/report_controller.go
package controllers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go-league-table/logger"
	"go-league-table/metrics"
	"go-league-table/models"
	"go-league-table/services"
)

// ReportController streams the PDF exports.
type ReportController struct {
	LeagueService services.LeagueServiceInterface
	Metrics       metrics.Publisher

	WriteMatchList func(io.Writer, []models.Match) error
	WriteStandings func(io.Writer, []models.StandingsRow) error
}

func NewReportController(service services.LeagueServiceInterface, publisher metrics.Publisher) *ReportController {
	return &ReportController{
		LeagueService:  service,
		Metrics:        publisher,
		WriteMatchList: services.WriteMatchListPDF,
		WriteStandings: services.WriteStandingsPDF,
	}
}

// ExportMatches downloads the match list as a PDF.
func (rc *ReportController) ExportMatches(c *gin.Context) {
	matches, err := rc.LeagueService.ListMatches(c.Request.Context())
	if err != nil {
		serverError(c, "ExportMatches", err)
		return
	}

	var buf bytes.Buffer
	if err := rc.WriteMatchList(&buf, matches); err != nil {
		rc.renderFailed(c, "ExportMatches", err)
		return
	}
	rc.send(c, "matches", "match_list.pdf", buf.Bytes())
}

// ExportStandings downloads the standings table as a PDF.
func (rc *ReportController) ExportStandings(c *gin.Context) {
	rows, err := rc.LeagueService.Standings(c.Request.Context())
	if err != nil {
		serverError(c, "ExportStandings", err)
		return
	}

	var buf bytes.Buffer
	if err := rc.WriteStandings(&buf, rows); err != nil {
		rc.renderFailed(c, "ExportStandings", err)
		return
	}
	rc.send(c, "standings", "standings.pdf", buf.Bytes())
}

func (rc *ReportController) renderFailed(c *gin.Context, where string, err error) {
	logger.Error.Printf("%s: %v", where, err)
	c.String(http.StatusInternalServerError, "failed to generate PDF: %s", err.Error())
}

func (rc *ReportController) send(c *gin.Context, report, filename string, body []byte) {
	rc.Metrics.Count(metrics.ReportsExported, map[string]string{"Report": report})
	logger.Info.Printf("send: exported %s report (%d bytes)", report, len(body))
	c.Header("Content-Disposition", "attachment; filename=\""+filename+"\"")
	c.Data(http.StatusOK, "application/pdf", body)
}
