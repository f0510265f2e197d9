package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"taxi-timesheet/internal/gateway"
	"taxi-timesheet/internal/locale"
	"taxi-timesheet/internal/report"
	"taxi-timesheet/internal/timesheet"

	"github.com/spf13/cobra"
)

type renderOptions struct {
	in      string
	server  string
	sheet   string
	month   string
	year    int
	format  string
	out     string
	timeout time.Duration
}

func newRenderCmd() *cobra.Command {
	var opts renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the print document of a grid as html, xlsx or text",
		Example: "  timesheet render --in grid.json --month Mai --format xlsx --out mai.xlsx\n" +
			"  timesheet render --server http://localhost:8080 --sheet 3f1c... --format text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.in, "in", "", "JSON file with the grid, one array of 7 strings per row (- for stdin)")
	f.StringVar(&opts.server, "server", "", "base URL of a running timesheet service")
	f.StringVar(&opts.sheet, "sheet", "", "sheet id to fetch from --server")
	f.StringVar(&opts.month, "month", "", "month name (defaults to the sheet month or "+locale.German.DefaultMonth+")")
	f.IntVar(&opts.year, "year", 2024, "year shown in the header")
	f.StringVar(&opts.format, "format", "html", "output format: html, xlsx or text")
	f.StringVarP(&opts.out, "out", "o", "", "output file (defaults to stdout)")
	f.DurationVar(&opts.timeout, "timeout", 5*time.Second, "request timeout for --server")
	cmd.MarkFlagsMutuallyExclusive("in", "server")
	cmd.MarkFlagsOneRequired("in", "server")
	cmd.MarkFlagsRequiredTogether("server", "sheet")
	return cmd
}

func runRender(ctx context.Context, opts renderOptions, stdout io.Writer) error {
	write, err := writerFor(opts.format)
	if err != nil {
		return err
	}

	var (
		grid  timesheet.Grid
		month = opts.month
		year  = opts.year
	)
	if opts.server != "" {
		if ctx == nil {
			ctx = context.Background()
		}
		client := gateway.NewClient(opts.server, opts.timeout)
		sheet, err := client.GetSheet(ctx, opts.sheet)
		if err != nil {
			return err
		}
		if grid, err = gridFromRows(sheet.Grid); err != nil {
			return err
		}
		if month == "" {
			month = sheet.Month
		}
		if sheet.Year != 0 {
			year = sheet.Year
		}
	} else {
		if grid, err = readGridFile(opts.in); err != nil {
			return err
		}
	}

	if month, err = locale.German.MonthOrDefault(month); err != nil {
		return err
	}
	doc := report.Build(grid, month, year, locale.German)

	if opts.out == "" {
		return write(stdout, doc)
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	if err := write(f, doc); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writerFor(format string) (func(io.Writer, report.Document) error, error) {
	switch format {
	case "html":
		return report.WriteHTML, nil
	case "xlsx":
		return report.WriteXLSX, nil
	case "text":
		return report.WriteText, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

func readGridFile(path string) (timesheet.Grid, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return decodeGrid(r)
}

func decodeGrid(r io.Reader) (timesheet.Grid, error) {
	var rows [][]string
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode grid: %w", err)
	}
	return gridFromRows(rows)
}

var errRowWidth = errors.New("row has more cells than columns")

// gridFromRows copies loose rows into a grid. Short rows are padded with
// empty cells.
func gridFromRows(rows [][]string) (timesheet.Grid, error) {
	grid := make(timesheet.Grid, len(rows))
	for i, row := range rows {
		if len(row) > timesheet.RowWidth {
			return nil, fmt.Errorf("row %d: %w (%d > %d)", i, errRowWidth, len(row), timesheet.RowWidth)
		}
		copy(grid[i][:], row)
	}
	return grid, nil
}
