package timesheet

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrOutOfRange        = errors.New("cell index out of range")
)

// Column positions inside a Row.
const (
	ColTour = iota
	ColStart
	ColEnd
	ColBreak
	ColWorkHours
	ColOvertime
	ColNotes

	RowWidth
)

// InitialRows is the number of blank rows a new grid starts with.
const InitialRows = 10

// A Row is one work entry. The array type keeps every row at exactly
// RowWidth fields.
type Row [RowWidth]string

// A Grid is the ordered list of rows of one timesheet. Grids are treated as
// values: SetCell and AppendRow return a new grid and leave the receiver as
// it was.
type Grid []Row

func NewGrid() Grid {
	return make(Grid, InitialRows)
}

// AppendRow returns a copy of g with one blank row at the end.
func (g Grid) AppendRow() Grid {
	out := make(Grid, len(g), len(g)+1)
	copy(out, g)
	return append(out, Row{})
}

// SetCell returns a copy of g with one field replaced and every field derived
// from it recomputed. The mutation is rejected as a whole when a derived value
// cannot be computed.
func (g Grid) SetCell(row, col int, value string) (Grid, error) {
	if row < 0 || row >= len(g) {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfRange, row, len(g))
	}
	if col < 0 || col >= RowWidth {
		return nil, fmt.Errorf("%w: column %d of %d", ErrOutOfRange, col, RowWidth)
	}

	r := g[row]
	r[col] = value
	for _, d := range derivations {
		if !d.triggeredBy(col) {
			continue
		}
		v, err := d.compute(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		r[d.target] = v
	}

	out := make(Grid, len(g))
	copy(out, g)
	out[row] = r
	return out, nil
}

// Clone returns a copy that shares no backing array with g.
func (g Grid) Clone() Grid {
	if g == nil {
		return nil
	}
	out := make(Grid, len(g))
	copy(out, g)
	return out
}

// A derivation recomputes the target column of a row whenever one of its
// trigger columns is written.
type derivation struct {
	triggers []int
	target   int
	compute  func(Row) (string, error)
}

func (d derivation) triggeredBy(col int) bool {
	for _, t := range d.triggers {
		if t == col {
			return true
		}
	}
	return false
}

var derivations = []derivation{
	{
		triggers: []int{ColStart, ColEnd},
		target:   ColWorkHours,
		compute: func(r Row) (string, error) {
			return ComputeDuration(r[ColStart], r[ColEnd])
		},
	},
}
