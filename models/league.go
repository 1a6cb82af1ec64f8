// Package models defines data structures used across the application.
// File: models/league.go
package models

import (
	"strconv"
	"strings"
)

// ----------------------- user model -----------------------

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// User is an account allowed to sign in. Password holds either a bcrypt hash
// or, for hand-provisioned documents, the plaintext value.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ----------------------- team model -----------------------

type Team struct {
	Name string `json:"nome"`
}

// ----------------------- match model -----------------------

// Match is a fixture between two teams, optionally carrying a result.
type Match struct {
	ID        string `json:"id"`
	Date      string `json:"data,omitempty"`
	Home      string `json:"time_a"`
	HomeGoals *int   `json:"golos_a"`
	Away      string `json:"time_b"`
	AwayGoals *int   `json:"golos_b"`
	Played    bool   `json:"realizado"`
}

// Scored reports whether both goal counts are present.
func (m Match) Scored() bool {
	return m.HomeGoals != nil && m.AwayGoals != nil
}

// GoalDifference is the absolute margin of a scored match.
func (m Match) GoalDifference() int {
	if !m.Scored() {
		return 0
	}
	d := *m.HomeGoals - *m.AwayGoals
	if d < 0 {
		return -d
	}
	return d
}

// HomeGoalsText renders the home score, or "-" when absent.
func (m Match) HomeGoalsText() string {
	return goalsText(m.HomeGoals)
}

// AwayGoalsText renders the away score, or "-" when absent.
func (m Match) AwayGoalsText() string {
	return goalsText(m.AwayGoals)
}

// ScoreLine formats the match as "Home 2 - 1 Away".
func (m Match) ScoreLine() string {
	return m.Home + " " + m.HomeGoalsText() + " - " + m.AwayGoalsText() + " " + m.Away
}

func goalsText(g *int) string {
	if g == nil {
		return "-"
	}
	return strconv.Itoa(*g)
}

// IntPtr is a convenience for building optional goal counts.
func IntPtr(v int) *int {
	return &v
}

// ---------------------- standings model ----------------------

// StandingsRow is the derived per-team summary. It is never persisted.
type StandingsRow struct {
	Team         string
	Points       int
	Played       int
	Wins         int
	Draws        int
	Losses       int
	GoalsFor     int
	GoalsAgainst int
}

func (r StandingsRow) GoalDifference() int {
	return r.GoalsFor - r.GoalsAgainst
}

// ---------------------- document model ----------------------

// Document is the whole persisted state. Version is bumped on every save.
type Document struct {
	Users   []User  `json:"usuarios"`
	Teams   []Team  `json:"equipas"`
	Matches []Match `json:"jogos"`
	Version int64   `json:"versao"`
}

// FindUser returns the user with the given username.
func (d *Document) FindUser(username string) (User, bool) {
	for _, u := range d.Users {
		if u.Username == username {
			return u, true
		}
	}
	return User{}, false
}

// HasTeam reports whether a team with the same name exists, ignoring case.
func (d *Document) HasTeam(name string) bool {
	for _, t := range d.Teams {
		if strings.EqualFold(t.Name, name) {
			return true
		}
	}
	return false
}

// MatchIndex returns the position of the match with the given id, or -1.
func (d *Document) MatchIndex(id string) int {
	for i, m := range d.Matches {
		if m.ID == id {
			return i
		}
	}
	return -1
}
