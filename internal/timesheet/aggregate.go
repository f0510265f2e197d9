package timesheet

import (
	"math"
	"strconv"
	"strings"
)

// Sum is a column total together with the rows whose cell held text that
// could not be read as a number and therefore counted as zero.
type Sum struct {
	Total   float64
	Skipped []int
}

func (s Sum) String() string {
	return formatHours(s.Total)
}

// Aggregate adds up the numeric cells of one column. Empty and unparsable
// cells contribute zero. A column outside the row sums to zero.
func Aggregate(grid Grid, col int) Sum {
	var sum Sum
	if col < 0 || col >= RowWidth {
		return sum
	}
	for i, row := range grid {
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		v, ok := parseNumber(cell)
		if !ok {
			sum.Skipped = append(sum.Skipped, i)
			continue
		}
		sum.Total += v
	}
	return sum
}

// SumColumn returns Aggregate's total formatted with two fraction digits.
func SumColumn(grid Grid, col int) string {
	return Aggregate(grid, col).String()
}

func parseNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
