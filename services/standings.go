// Package services holds the league logic used by the controllers.
// File: services/standings.go
package services

import (
	"sort"

	"go-league-table/models"
)

// standingsTable accumulates rows in the order teams are first seen.
type standingsTable struct {
	rows  []models.StandingsRow
	index map[string]int
}

func newStandingsTable() *standingsTable {
	return &standingsTable{index: make(map[string]int)}
}

// upsert returns the row for team, creating a zeroed one on first sight.
func (t *standingsTable) upsert(team string) *models.StandingsRow {
	i, ok := t.index[team]
	if !ok {
		i = len(t.rows)
		t.index[team] = i
		t.rows = append(t.rows, models.StandingsRow{Team: team})
	}
	return &t.rows[i]
}

// BuildStandings ranks every team that appears in at least one scored match.
// Rows are ordered by points only; teams level on points keep the order in
// which they first appeared.
func BuildStandings(matches []models.Match) []models.StandingsRow {
	table := newStandingsTable()

	for _, m := range matches {
		if !m.Scored() {
			continue
		}
		homeGoals, awayGoals := *m.HomeGoals, *m.AwayGoals

		// Both rows must exist before taking pointers: upsert may grow the slice.
		table.upsert(m.Home)
		table.upsert(m.Away)
		home := table.upsert(m.Home)
		away := table.upsert(m.Away)

		home.Played++
		away.Played++
		home.GoalsFor += homeGoals
		home.GoalsAgainst += awayGoals
		away.GoalsFor += awayGoals
		away.GoalsAgainst += homeGoals

		switch {
		case homeGoals > awayGoals:
			home.Points += 3
			home.Wins++
			away.Losses++
		case awayGoals > homeGoals:
			away.Points += 3
			away.Wins++
			home.Losses++
		default:
			home.Points++
			away.Points++
			home.Draws++
			away.Draws++
		}
	}

	rows := table.rows
	if rows == nil {
		rows = []models.StandingsRow{}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Points > rows[j].Points
	})
	return rows
}
