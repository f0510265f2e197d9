package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	textHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	textCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	textTotalsStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
)

// WriteText writes doc as a bordered table for the terminal.
func WriteText(w io.Writer, doc Document) error {
	totalsRow := len(doc.Rows)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(doc.Columns...).
		Rows(doc.Rows...).
		Row(doc.Totals...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch row {
			case table.HeaderRow:
				return textHeaderStyle
			case totalsRow:
				return textTotalsStyle
			default:
				return textCellStyle
			}
		})

	header := strings.Join([]string{doc.DriverLabel, doc.MonthLine, doc.SignatureLabel}, "    ")
	if _, err := fmt.Fprintf(w, "%s\n%s\n", header, t.Render()); err != nil {
		return fmt.Errorf("write text report: %w", err)
	}
	return nil
}
