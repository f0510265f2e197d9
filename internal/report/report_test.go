package report

import (
	"bytes"
	"strings"
	"testing"

	"taxi-timesheet/internal/locale"
	"taxi-timesheet/internal/timesheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleGrid(t *testing.T) timesheet.Grid {
	t.Helper()
	g := timesheet.Grid{{}, {}, {}}
	var err error
	edits := []struct {
		row, col int
		value    string
	}{
		{0, timesheet.ColStart, "09:00"},
		{0, timesheet.ColEnd, "17:30"},
		{0, timesheet.ColBreak, "0.5"},
		{1, timesheet.ColTour, "Flughafen <BER>"},
		{1, timesheet.ColStart, "22:00"},
		{1, timesheet.ColEnd, "06:00"},
		{1, timesheet.ColBreak, "1,25"},
		{2, timesheet.ColBreak, "keine"},
		{2, timesheet.ColNotes, "Ersatzwagen"},
	}
	for _, e := range edits {
		g, err = g.SetCell(e.row, e.col, e.value)
		require.NoError(t, err)
	}
	return g
}

func TestBuild(t *testing.T) {
	g := sampleGrid(t)

	doc := Build(g, "März", 2024, locale.German)

	assert.Equal(t, "Druckansicht", doc.Title)
	assert.Equal(t, "Monat: März 2024", doc.MonthLine)
	assert.Equal(t, locale.German.Columns[:], doc.Columns)
	require.Len(t, doc.Rows, 3)
	assert.Equal(t, "Stadtrundfahrt", doc.Rows[0][timesheet.ColTour])
	assert.Equal(t, "Flughafen <BER>", doc.Rows[1][timesheet.ColTour])
	assert.Equal(t, "Stadtrundfahrt", doc.Rows[2][timesheet.ColTour])
	assert.Equal(t, "8.50", doc.Rows[0][timesheet.ColWorkHours])
	assert.Equal(t, "8.00", doc.Rows[1][timesheet.ColWorkHours])

	assert.Equal(t, []string{"Gesamtsumme", "", "", "1.75", "16.50", "", ""}, doc.Totals)
	assert.Equal(t, []int{2}, doc.BreakTotal.Skipped)

	// the grid itself keeps its empty labels
	assert.Empty(t, g[0][timesheet.ColTour])
}

func TestBuildEmptyGrid(t *testing.T) {
	doc := Build(nil, "August", 2024, locale.German)
	assert.Empty(t, doc.Rows)
	assert.Equal(t, []string{"Gesamtsumme", "", "", "0.00", "0.00", "", ""}, doc.Totals)
}

func TestWriteHTML(t *testing.T) {
	doc := Build(sampleGrid(t), "August", 2024, locale.German)

	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "<title>Druckansicht</title>")
	assert.Contains(t, out, "<p>Monat: August 2024</p>")
	assert.Contains(t, out, "<p>Unterschrift Fahrer</p>")
	assert.Contains(t, out, "<th>Überstunden</th>")
	assert.Contains(t, out, "<td>Stadtrundfahrt</td>")
	assert.Contains(t, out, "<td>Flughafen &lt;BER&gt;</td>")
	assert.NotContains(t, out, "<BER>")
	assert.Contains(t, out, `<tr class="totals"><td>Gesamtsumme</td><td></td><td></td><td>1.75</td><td>16.50</td><td></td><td></td></tr>`)
	assert.Equal(t, 7, strings.Count(out, "<th>"))
	// header row, three body rows, totals
	assert.Equal(t, 5, strings.Count(out, "<tr"))
}

func TestWriteText(t *testing.T) {
	doc := Build(sampleGrid(t), "August", 2024, locale.German)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, doc))
	out := buf.String()

	assert.Contains(t, out, "Monat: August 2024")
	assert.Contains(t, out, "Tour bzw. Fahrten")
	assert.Contains(t, out, "Gesamtsumme")
	assert.Contains(t, out, "16.50")
	assert.Contains(t, out, "Ersatzwagen")
}

func TestWriteXLSX(t *testing.T) {
	doc := Build(sampleGrid(t), "März", 2024, locale.German)

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, doc))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"März"}, f.GetSheetList())

	v, err := f.GetCellValue("März", "C1")
	require.NoError(t, err)
	assert.Equal(t, "Monat: März 2024", v)

	v, err = f.GetCellValue("März", "E3")
	require.NoError(t, err)
	assert.Equal(t, "Arbeitszeit in Std", v)

	v, err = f.GetCellValue("März", "A4")
	require.NoError(t, err)
	assert.Equal(t, "Stadtrundfahrt", v)

	v, err = f.GetCellValue("März", "A7")
	require.NoError(t, err)
	assert.Equal(t, "Gesamtsumme", v)

	v, err = f.GetCellValue("März", "E7", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "16.5", v)
}
