// File: controllers/table_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go-league-table/services"
)

// TableController serves the read-only league views.
type TableController struct {
	LeagueService services.LeagueServiceInterface
}

func NewTableController(service services.LeagueServiceInterface) *TableController {
	return &TableController{LeagueService: service}
}

// Standings renders the ranked table.
func (tc *TableController) Standings(c *gin.Context) {
	rows, err := tc.LeagueService.Standings(c.Request.Context())
	if err != nil {
		serverError(c, "Standings", err)
		return
	}
	render(c, http.StatusOK, "standings.html", gin.H{"Rows": rows})
}

// Schedule renders upcoming and overdue fixtures.
func (tc *TableController) Schedule(c *gin.Context) {
	schedule, err := tc.LeagueService.Schedule(c.Request.Context())
	if err != nil {
		serverError(c, "Schedule", err)
		return
	}
	render(c, http.StatusOK, "schedule.html", gin.H{
		"Upcoming": schedule.Upcoming,
		"Overdue":  schedule.Overdue,
	})
}

// Statistics renders the season summary.
func (tc *TableController) Statistics(c *gin.Context) {
	summary, err := tc.LeagueService.Summary(c.Request.Context())
	if err != nil {
		serverError(c, "Statistics", err)
		return
	}
	render(c, http.StatusOK, "statistics.html", gin.H{"Summary": summary})
}

// Charts renders the goals-by-team bar chart.
func (tc *TableController) Charts(c *gin.Context) {
	chart, err := tc.LeagueService.GoalsByTeam(c.Request.Context())
	if err != nil {
		serverError(c, "Charts", err)
		return
	}
	render(c, http.StatusOK, "charts.html", gin.H{"Chart": chart})
}
