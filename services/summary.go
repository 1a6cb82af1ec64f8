// File: services/summary.go
package services

import "go-league-table/models"

// TeamGoals is a team's cumulative goals over scored matches.
type TeamGoals struct {
	Team         string
	GoalsFor     int
	GoalsAgainst int
}

// Summary holds the league-wide statistics page.
type Summary struct {
	TotalMatches       int
	TotalGoals         int
	BiggestWin         *models.Match
	MostGoalsFor       string
	FewestGoalsAgainst string
	Teams              []TeamGoals
}

// teamGoals lists per-team totals in first-appearance order, home side first.
func teamGoals(matches []models.Match) []TeamGoals {
	var totals []TeamGoals
	index := make(map[string]int)
	add := func(team string, scored, conceded int) {
		i, ok := index[team]
		if !ok {
			i = len(totals)
			index[team] = i
			totals = append(totals, TeamGoals{Team: team})
		}
		totals[i].GoalsFor += scored
		totals[i].GoalsAgainst += conceded
	}

	for _, m := range matches {
		if !m.Scored() {
			continue
		}
		add(m.Home, *m.HomeGoals, *m.AwayGoals)
		add(m.Away, *m.AwayGoals, *m.HomeGoals)
	}
	if totals == nil {
		totals = []TeamGoals{}
	}
	return totals
}

// Summarize computes statistics over scored matches. Ties in every
// max/min selection go to the first candidate encountered.
func Summarize(matches []models.Match) Summary {
	var s Summary

	for i := range matches {
		m := matches[i]
		if !m.Scored() {
			continue
		}
		s.TotalMatches++
		s.TotalGoals += *m.HomeGoals + *m.AwayGoals
		if s.BiggestWin == nil || m.GoalDifference() > s.BiggestWin.GoalDifference() {
			s.BiggestWin = &m
		}
	}

	s.Teams = teamGoals(matches)
	if len(s.Teams) == 0 {
		return s
	}
	most, fewest := 0, 0
	for i, t := range s.Teams {
		if t.GoalsFor > s.Teams[most].GoalsFor {
			most = i
		}
		if t.GoalsAgainst < s.Teams[fewest].GoalsAgainst {
			fewest = i
		}
	}
	s.MostGoalsFor = s.Teams[most].Team
	s.FewestGoalsAgainst = s.Teams[fewest].Team
	return s
}

// ChartData is the goals-by-team series for the chart page.
type ChartData struct {
	Labels []string `json:"labels"`
	Goals  []int    `json:"goals"`
}

// GoalsByTeam returns goals scored per team in first-appearance order.
func GoalsByTeam(matches []models.Match) ChartData {
	data := ChartData{Labels: []string{}, Goals: []int{}}
	for _, t := range teamGoals(matches) {
		data.Labels = append(data.Labels, t.Team)
		data.Goals = append(data.Goals, t.GoalsFor)
	}
	return data
}
