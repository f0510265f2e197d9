package report

import (
	"fmt"
	"io"
	"log/slog"

	"taxi-timesheet/internal/timesheet"

	"github.com/xuri/excelize/v2"
)

const (
	xlsxHeaderRow = 1
	xlsxTableRow  = 3
)

// WriteXLSX writes doc as a workbook with a single sheet named after the
// month. Totals are stored as numbers so they stay usable in a spreadsheet.
func WriteXLSX(w io.Writer, doc Document) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close workbook", "err", err)
		}
	}()

	sheet := doc.Month
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	}

	header := []interface{}{doc.DriverLabel, "", doc.MonthLine, "", "", doc.SignatureLabel}
	if err := setRow(f, sheet, xlsxHeaderRow, header); err != nil {
		return err
	}

	columns := make([]interface{}, len(doc.Columns))
	for i, c := range doc.Columns {
		columns[i] = c
	}
	if err := setRow(f, sheet, xlsxTableRow, columns); err != nil {
		return err
	}

	row := xlsxTableRow + 1
	for _, r := range doc.Rows {
		cells := make([]interface{}, len(r))
		for i, c := range r {
			cells[i] = c
		}
		if err := setRow(f, sheet, row, cells); err != nil {
			return err
		}
		row++
	}

	totals := make([]interface{}, len(doc.Totals))
	for i, c := range doc.Totals {
		totals[i] = c
	}
	totals[timesheet.ColBreak] = doc.BreakTotal.Total
	totals[timesheet.ColWorkHours] = doc.WorkTotal.Total
	if err := setRow(f, sheet, row, totals); err != nil {
		return err
	}

	if err := styleSheet(f, sheet, row); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("set row %d: %w", row, err)
	}
	return nil
}

func styleSheet(f *excelize.File, sheet string, totalsRow int) error {
	bold, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: borders(),
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"F2F2F2"}},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	body, err := f.NewStyle(&excelize.Style{Border: borders()})
	if err != nil {
		return fmt.Errorf("create body style: %w", err)
	}
	totals, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Border: borders(),
		NumFmt: 2,
	})
	if err != nil {
		return fmt.Errorf("create totals style: %w", err)
	}

	last := func(row int) string {
		name, _ := excelize.CoordinatesToCellName(timesheet.RowWidth, row)
		return name
	}
	first := func(row int) string {
		name, _ := excelize.CoordinatesToCellName(1, row)
		return name
	}

	if err := f.SetCellStyle(sheet, first(xlsxTableRow), last(xlsxTableRow), bold); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	if totalsRow > xlsxTableRow+1 {
		if err := f.SetCellStyle(sheet, first(xlsxTableRow+1), last(totalsRow-1), body); err != nil {
			return fmt.Errorf("style body: %w", err)
		}
	}
	if err := f.SetCellStyle(sheet, first(totalsRow), last(totalsRow), totals); err != nil {
		return fmt.Errorf("style totals: %w", err)
	}
	if err := f.SetColWidth(sheet, "A", "G", 20); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	orientation := "landscape"
	size := 9 // A4
	if err := f.SetPageLayout(sheet, &excelize.PageLayoutOptions{
		Orientation: &orientation,
		Size:        &size,
	}); err != nil {
		return fmt.Errorf("set page layout: %w", err)
	}
	return nil
}

func borders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}
