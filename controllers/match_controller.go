// File: controllers/match_controller.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go-league-table/logger"
	"go-league-table/metrics"
	"go-league-table/models"
	"go-league-table/services"
)

// MatchController records, edits and deletes matches.
type MatchController struct {
	LeagueService services.LeagueServiceInterface
	Metrics       metrics.Publisher
}

func NewMatchController(service services.LeagueServiceInterface, publisher metrics.Publisher) *MatchController {
	return &MatchController{LeagueService: service, Metrics: publisher}
}

// matchForm carries what the form template needs on every render.
type matchForm struct {
	Title  string
	Action string
	Input  services.MatchInput
	Error  string
}

func inputFromMatch(m models.Match) services.MatchInput {
	in := services.MatchInput{Date: m.Date, Home: m.Home, Away: m.Away, Played: m.Played}
	if m.HomeGoals != nil {
		in.HomeGoals = strconv.Itoa(*m.HomeGoals)
	}
	if m.AwayGoals != nil {
		in.AwayGoals = strconv.Itoa(*m.AwayGoals)
	}
	return in
}

func inputFromForm(c *gin.Context) services.MatchInput {
	return services.MatchInput{
		Date:      c.PostForm("date"),
		Home:      c.PostForm("home"),
		Away:      c.PostForm("away"),
		Played:    c.PostForm("played") != "",
		HomeGoals: c.PostForm("home_goals"),
		AwayGoals: c.PostForm("away_goals"),
	}
}

// renderForm shows the match form with the team picker filled in.
func (mc *MatchController) renderForm(c *gin.Context, status int, form matchForm) {
	teams, err := mc.LeagueService.ListTeams(c.Request.Context())
	if err != nil {
		serverError(c, "renderForm", err)
		return
	}
	render(c, status, "match_form.html", gin.H{"Form": form, "Teams": teams})
}

// formFailed handles an error from a create or edit. It returns false when
// err is nil.
func (mc *MatchController) formFailed(c *gin.Context, where string, form matchForm, err error) bool {
	if err == nil {
		return false
	}
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		serverError(c, where, err)
		return true
	}
	logger.Warn.Printf("%s: rejected: %v", where, err)
	form.Error = errorMessage(err)
	mc.renderForm(c, status, form)
	return true
}

// ListMatches renders every match in recorded order.
func (mc *MatchController) ListMatches(c *gin.Context) {
	matches, err := mc.LeagueService.ListMatches(c.Request.Context())
	if err != nil {
		serverError(c, "ListMatches", err)
		return
	}
	render(c, http.StatusOK, "matches.html", gin.H{"Matches": matches})
}

// NewMatchForm renders an empty match form.
func (mc *MatchController) NewMatchForm(c *gin.Context) {
	mc.renderForm(c, http.StatusOK, matchForm{Title: "New match", Action: "/matches"})
}

// CreateMatch records the submitted match.
func (mc *MatchController) CreateMatch(c *gin.Context) {
	in := inputFromForm(c)
	form := matchForm{Title: "New match", Action: "/matches", Input: in}

	m, err := mc.LeagueService.AddMatch(c.Request.Context(), in)
	if mc.formFailed(c, "CreateMatch", form, err) {
		return
	}

	mc.Metrics.Count(metrics.MatchesRecorded, nil)
	flash(c, "Match "+m.ScoreLine()+" recorded.")
	c.Redirect(http.StatusFound, "/matches")
}

// EditMatchForm renders the form filled with the stored match.
func (mc *MatchController) EditMatchForm(c *gin.Context) {
	id := c.Param("id")
	m, err := mc.LeagueService.GetMatch(c.Request.Context(), id)
	if err != nil {
		mc.notFoundOrError(c, "EditMatchForm", err)
		return
	}
	mc.renderForm(c, http.StatusOK, matchForm{
		Title:  "Edit match",
		Action: "/matches/" + id,
		Input:  inputFromMatch(m),
	})
}

// UpdateMatch replaces the stored match with the submitted values.
func (mc *MatchController) UpdateMatch(c *gin.Context) {
	id := c.Param("id")
	in := inputFromForm(c)
	form := matchForm{Title: "Edit match", Action: "/matches/" + id, Input: in}

	m, err := mc.LeagueService.UpdateMatch(c.Request.Context(), id, in)
	if err != nil && errorStatus(err) == http.StatusNotFound {
		mc.notFoundOrError(c, "UpdateMatch", err)
		return
	}
	if mc.formFailed(c, "UpdateMatch", form, err) {
		return
	}

	flash(c, "Match "+m.ScoreLine()+" updated.")
	c.Redirect(http.StatusFound, "/matches")
}

// DeleteMatch removes a match. Deleting an unknown id changes nothing.
func (mc *MatchController) DeleteMatch(c *gin.Context) {
	id := c.Param("id")
	removed, err := mc.LeagueService.RemoveMatch(c.Request.Context(), id)
	switch {
	case err != nil && errorStatus(err) == http.StatusConflict:
		flash(c, conflictMessage)
	case err != nil:
		serverError(c, "DeleteMatch", err)
		return
	case removed:
		mc.Metrics.Count(metrics.MatchesDeleted, nil)
		flash(c, "Match deleted.")
	}
	c.Redirect(http.StatusFound, "/matches")
}

func (mc *MatchController) notFoundOrError(c *gin.Context, where string, err error) {
	if errorStatus(err) == http.StatusNotFound {
		logger.Warn.Printf("%s: %v", where, err)
		c.String(http.StatusNotFound, "Match not found")
		return
	}
	serverError(c, where, err)
}
