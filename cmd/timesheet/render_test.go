package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"taxi-timesheet/internal/locale"
	"taxi-timesheet/internal/timesheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const gridJSON = `[
  ["Hafen", "09:00", "17:30", "0.5", "8.50", "", ""],
  ["", "22:00", "06:00", "1,25", "8.00"],
  ["", "", "", "keine", "", "", "Ersatzwagen"]
]`

func TestDecodeGrid(t *testing.T) {
	grid, err := decodeGrid(strings.NewReader(gridJSON))
	require.NoError(t, err)
	require.Len(t, grid, 3)
	assert.Equal(t, timesheet.Row{"", "22:00", "06:00", "1,25", "8.00", "", ""}, grid[1])

	_, err = decodeGrid(strings.NewReader(`[["a","b","c","d","e","f","g","h"]]`))
	assert.ErrorIs(t, err, errRowWidth)

	_, err = decodeGrid(strings.NewReader(`{"grid": []}`))
	assert.ErrorContains(t, err, "decode grid")
}

func TestRunRenderFromFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "grid.json")
	require.NoError(t, os.WriteFile(in, []byte(gridJSON), 0o600))

	var out bytes.Buffer
	err := runRender(context.Background(), renderOptions{in: in, month: "Mai", year: 2025, format: "text"}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Monat: Mai 2025")
	assert.Contains(t, out.String(), "Gesamtsumme")
	assert.Contains(t, out.String(), "16.50")
	assert.Contains(t, out.String(), "1.75")

	xlsxPath := filepath.Join(dir, "out.xlsx")
	err = runRender(context.Background(), renderOptions{in: in, year: 2025, format: "xlsx", out: xlsxPath}, &out)
	require.NoError(t, err)

	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{locale.German.DefaultMonth}, f.GetSheetList())
}

func TestRunRenderErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "grid.json")
	require.NoError(t, os.WriteFile(in, []byte(gridJSON), 0o600))

	var out bytes.Buffer
	err := runRender(context.Background(), renderOptions{in: in, format: "pdf"}, &out)
	assert.ErrorContains(t, err, "unknown format")

	err = runRender(context.Background(), renderOptions{in: in, month: "May", format: "html"}, &out)
	assert.ErrorIs(t, err, locale.ErrUnknownMonth)

	err = runRender(context.Background(), renderOptions{in: filepath.Join(dir, "missing.json"), format: "html"}, &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunRenderFromServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/sheets/abc", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"abc","month":"Oktober","year":2023,"grid":[["", "08:00", "12:00", "", "4.00", "", ""]]}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := runRender(context.Background(), renderOptions{server: srv.URL, sheet: "abc", year: 2024, format: "html", timeout: time.Second}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Monat: Oktober 2023")
	assert.Contains(t, out.String(), "<td>Stadtrundfahrt</td>")
	assert.Contains(t, out.String(), "<td>4.00</td>")
}

func TestRootCommandFlags(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "--format", "text"})
	assert.Error(t, root.Execute())

	root = newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"render", "--in", "a.json", "--server", "http://x", "--sheet", "1"})
	assert.Error(t, root.Execute())
}
