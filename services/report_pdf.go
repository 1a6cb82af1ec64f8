// File: services/report_pdf.go
package services

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-pdf/fpdf"
	"go-league-table/models"
)

// Layout in points from the top of an A4 page.
const (
	lineHeight     = 20.0
	bottomMargin   = 50.0 // a new page starts once the cursor passes this
	continuedTop   = 50.0 // cursor position on every page after the first
	teamNameLength = 18
)

// standings table columns: header and x offset
var standingsColumns = []struct {
	title string
	x     float64
}{
	{"Pos", 30}, {"Team", 60}, {"Pts", 200}, {"P", 230}, {"W", 260},
	{"D", 290}, {"L", 320}, {"GF", 350}, {"GA", 390}, {"GD", 430},
}

// pageCursor tracks the vertical write position and breaks pages.
type pageCursor struct {
	pdf    *fpdf.Fpdf
	y      float64
	bottom float64
}

func newPageCursor(pdf *fpdf.Fpdf, start float64) *pageCursor {
	_, height := pdf.GetPageSize()
	return &pageCursor{pdf: pdf, y: start, bottom: height - bottomMargin}
}

func (c *pageCursor) advance() {
	c.y += lineHeight
	if c.y > c.bottom {
		c.pdf.AddPage()
		c.y = continuedTop
	}
}

func newReport() (*fpdf.Fpdf, func(string) string) {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetTitle("League report", true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf, pdf.UnicodeTranslatorFromDescriptor("")
}

func buildMatchListPDF(matches []models.Match) *fpdf.Fpdf {
	pdf, tr := newReport()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(200, 50, tr("Match list"))

	pdf.SetFont("Helvetica", "", 12)
	cursor := newPageCursor(pdf, 100)
	for i, m := range matches {
		pdf.Text(50, cursor.y, tr(fmt.Sprintf("%d. %s", i+1, m.ScoreLine())))
		cursor.advance()
	}
	return pdf
}

func buildStandingsPDF(rows []models.StandingsRow) *fpdf.Fpdf {
	pdf, tr := newReport()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(150, 40, tr("Standings"))

	pdf.SetFont("Helvetica", "B", 12)
	for _, col := range standingsColumns {
		pdf.Text(col.x, 80, col.title)
	}

	pdf.SetFont("Helvetica", "", 11)
	cursor := newPageCursor(pdf, 100)
	for pos, row := range rows {
		cells := []string{
			strconv.Itoa(pos + 1),
			tr(truncateName(row.Team, teamNameLength)),
			strconv.Itoa(row.Points),
			strconv.Itoa(row.Played),
			strconv.Itoa(row.Wins),
			strconv.Itoa(row.Draws),
			strconv.Itoa(row.Losses),
			strconv.Itoa(row.GoalsFor),
			strconv.Itoa(row.GoalsAgainst),
			strconv.Itoa(row.GoalDifference()),
		}
		for i, cell := range cells {
			pdf.Text(standingsColumns[i].x, cursor.y, cell)
		}
		cursor.advance()
	}
	return pdf
}

// WriteMatchListPDF renders a numbered list of matches with their scores.
func WriteMatchListPDF(w io.Writer, matches []models.Match) error {
	return output(w, buildMatchListPDF(matches))
}

// WriteStandingsPDF renders the standings table in the given order.
func WriteStandingsPDF(w io.Writer, rows []models.StandingsRow) error {
	return output(w, buildStandingsPDF(rows))
}

func output(w io.Writer, pdf *fpdf.Fpdf) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func truncateName(name string, limit int) string {
	r := []rune(name)
	if len(r) <= limit {
		return name
	}
	return string(r[:limit])
}
