// File: controllers/team_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go-league-table/logger"
	"go-league-table/metrics"
	"go-league-table/services"
)

// TeamController lists and registers teams.
type TeamController struct {
	LeagueService services.LeagueServiceInterface
	Metrics       metrics.Publisher
}

func NewTeamController(service services.LeagueServiceInterface, publisher metrics.Publisher) *TeamController {
	return &TeamController{LeagueService: service, Metrics: publisher}
}

// ListTeams renders every registered team.
func (tc *TeamController) ListTeams(c *gin.Context) {
	teams, err := tc.LeagueService.ListTeams(c.Request.Context())
	if err != nil {
		serverError(c, "ListTeams", err)
		return
	}
	render(c, http.StatusOK, "teams.html", gin.H{"Teams": teams})
}

// NewTeamForm renders the empty team form.
func (tc *TeamController) NewTeamForm(c *gin.Context) {
	render(c, http.StatusOK, "team_form.html", nil)
}

// CreateTeam adds the submitted team. Validation problems and conflicts
// re-render the form with the message inline.
func (tc *TeamController) CreateTeam(c *gin.Context) {
	name := c.PostForm("name")

	team, err := tc.LeagueService.AddTeam(c.Request.Context(), name)
	if err != nil {
		status := errorStatus(err)
		if status == http.StatusInternalServerError {
			serverError(c, "CreateTeam", err)
			return
		}
		logger.Warn.Printf("CreateTeam: rejected %q: %v", name, err)
		render(c, status, "team_form.html", gin.H{"Name": name, "Error": errorMessage(err)})
		return
	}

	tc.Metrics.Count(metrics.TeamsCreated, nil)
	flash(c, "Team "+team.Name+" added.")
	c.Redirect(http.StatusFound, "/teams")
}
