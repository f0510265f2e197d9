package report

import (
	"fmt"
	"strings"

	"taxi-timesheet/internal/locale"
	"taxi-timesheet/internal/timesheet"
)

// Document is a printable timesheet. It is built once from a grid and then
// written in one of the output formats.
type Document struct {
	Title          string
	DriverLabel    string
	MonthLine      string
	SignatureLabel string

	Month string
	Year  int

	Columns []string
	Rows    [][]string
	Totals  []string

	BreakTotal timesheet.Sum
	WorkTotal  timesheet.Sum
}

// Build lays out grid for printing. Rows without a tour label show the
// locale's default tour, and a totals row with the break and work hour sums
// follows the body.
func Build(grid timesheet.Grid, month string, year int, loc locale.Locale) Document {
	doc := Document{
		Title:          loc.PrintTitle,
		DriverLabel:    loc.DriverLabel,
		MonthLine:      fmt.Sprintf("%s %s %d", loc.MonthLabel, month, year),
		SignatureLabel: loc.SignatureLabel,
		Month:          month,
		Year:           year,
		Columns:        loc.Columns[:],
		Rows:           make([][]string, 0, len(grid)),
		BreakTotal:     timesheet.Aggregate(grid, timesheet.ColBreak),
		WorkTotal:      timesheet.Aggregate(grid, timesheet.ColWorkHours),
	}

	for _, r := range grid {
		cells := make([]string, timesheet.RowWidth)
		copy(cells, r[:])
		if strings.TrimSpace(cells[timesheet.ColTour]) == "" {
			cells[timesheet.ColTour] = loc.DefaultTour
		}
		doc.Rows = append(doc.Rows, cells)
	}

	doc.Totals = make([]string, timesheet.RowWidth)
	doc.Totals[timesheet.ColTour] = loc.TotalsLabel
	doc.Totals[timesheet.ColBreak] = doc.BreakTotal.String()
	doc.Totals[timesheet.ColWorkHours] = doc.WorkTotal.String()
	return doc
}
