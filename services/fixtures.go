// File: services/fixtures.go
package services

import (
	"errors"
	"time"

	"go-league-table/logger"
	"go-league-table/models"
)

// Accepted match date layouts, tried in order.
const (
	DateTimeLayout = "2006-01-02T15:04"
	DateLayout     = "2006-01-02"
)

var errUnparsableDate = errors.New("date matches neither accepted layout")

// Schedule splits unplayed fixtures around the current day.
type Schedule struct {
	Upcoming []models.Match
	Overdue  []models.Match
}

// ParseMatchDate accepts a date with or without a time of day.
func ParseMatchDate(value string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(DateTimeLayout, value, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(DateLayout, value, loc); err == nil {
		return t, nil
	}
	return time.Time{}, errUnparsableDate
}

// ClassifyFixtures puts each dated, unplayed match into exactly one bucket:
// upcoming when its calendar date is today or later, overdue otherwise.
// Played or undated matches are ignored. A match whose date cannot be parsed
// is skipped with a warning.
func ClassifyFixtures(matches []models.Match, now time.Time) Schedule {
	schedule := Schedule{Upcoming: []models.Match{}, Overdue: []models.Match{}}
	today := calendarDay(now)

	for i, m := range matches {
		if m.Played || m.Date == "" {
			continue
		}
		date, err := ParseMatchDate(m.Date, now.Location())
		if err != nil {
			logger.Warn.Printf("ClassifyFixtures: skipping match %d (%s): %q: %v", i, m.ID, m.Date, err)
			continue
		}
		if !calendarDay(date).Before(today) {
			schedule.Upcoming = append(schedule.Upcoming, m)
		} else {
			schedule.Overdue = append(schedule.Overdue, m)
		}
	}
	return schedule
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
