package web

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"taxi-timesheet/internal/locale"
	"taxi-timesheet/internal/storage"
	"taxi-timesheet/internal/timesheet"
)

var formTemplate = template.Must(template.New("form").Parse(formHTML))

const (
	actionSave   = "save"
	actionAddRow = "add_row"
	actionPrint  = "print"
)

type formCell struct {
	Name        string
	Value       string
	Type        string
	ReadOnly    bool
	Placeholder string
}

type formRow struct {
	Cells []formCell
}

type formPage struct {
	ID      string
	Month   string
	Year    int
	Loc     locale.Locale
	Rows    []formRow
	Totals  []string
	Skipped []int
	Error   string
}

func cellName(row, col int) string {
	return fmt.Sprintf("c-%d-%d", row, col)
}

func (h *Handler) newFormPage(s *storage.Sheet, formErr string) formPage {
	page := formPage{
		ID:    s.ID.String(),
		Month: s.Month,
		Year:  h.year,
		Loc:   h.loc,
		Rows:  make([]formRow, 0, len(s.Grid)),
		Error: formErr,
	}
	for i, r := range s.Grid {
		row := formRow{Cells: make([]formCell, timesheet.RowWidth)}
		for j, v := range r {
			c := formCell{Name: cellName(i, j), Value: v, Type: "text"}
			switch j {
			case timesheet.ColTour:
				c.Placeholder = h.loc.DefaultTour
			case timesheet.ColStart, timesheet.ColEnd:
				c.Type = "time"
			case timesheet.ColWorkHours:
				c.ReadOnly = true
			}
			row.Cells[j] = c
		}
		page.Rows = append(page.Rows, row)
	}

	breaks := timesheet.Aggregate(s.Grid, timesheet.ColBreak)
	work := timesheet.Aggregate(s.Grid, timesheet.ColWorkHours)
	page.Totals = make([]string, timesheet.RowWidth)
	page.Totals[timesheet.ColTour] = h.loc.TotalsLabel
	page.Totals[timesheet.ColBreak] = breaks.String()
	page.Totals[timesheet.ColWorkHours] = work.String()
	page.Skipped = mergeRows(breaks.Skipped, work.Skipped)
	return page
}

// mergeRows joins two ascending row lists into one ascending list of
// 1-based row numbers without duplicates.
func mergeRows(a, b []int) []int {
	var out []int
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var next int
		switch {
		case j >= len(b) || (i < len(a) && a[i] < b[j]):
			next = a[i]
			i++
		case i >= len(a) || b[j] < a[i]:
			next = b[j]
			j++
		default:
			next = a[i]
			i++
			j++
		}
		out = append(out, next+1)
	}
	return out
}

func (h *Handler) renderForm(w http.ResponseWriter, status int, s *storage.Sheet, formErr string) {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, h.newFormPage(s, formErr)); err != nil {
		slog.Error("failed to render form", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Index opens a new sheet and sends the browser to its form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.repo.CreateSheet(r.Context(), h.defaultMonth)
	if err != nil {
		writeError(w, "failed to create sheet", err)
		return
	}
	slog.Info("sheet created", "sheet_id", sheet.ID, "month", sheet.Month)
	http.Redirect(w, r, "/sheets/"+sheet.ID.String(), http.StatusFound)
}

func (h *Handler) ShowSheet(w http.ResponseWriter, r *http.Request) {
	id, ok := sheetID(w, r)
	if !ok {
		return
	}
	sheet, err := h.repo.GetSheet(r.Context(), id)
	if err != nil {
		writeError(w, "failed to get sheet", err)
		return
	}
	h.renderForm(w, http.StatusOK, sheet, "")
}

// SubmitSheet applies a posted form. Changed cells go through SetCell so that
// work hours follow the times; the requested action runs afterwards.
func (h *Handler) SubmitSheet(w http.ResponseWriter, r *http.Request) {
	id, ok := sheetID(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	action := strings.TrimSpace(r.PostFormValue("action"))
	if action == "" {
		action = actionSave
	}

	_, err := h.repo.UpdateSheet(r.Context(), id, func(s *storage.Sheet) error {
		if month := strings.TrimSpace(r.PostFormValue("month")); month != "" {
			if err := h.loc.ValidMonth(month); err != nil {
				return err
			}
			s.Month = month
		}

		g := s.Grid
		for i := range g {
			for j := 0; j < timesheet.RowWidth; j++ {
				if j == timesheet.ColWorkHours {
					continue
				}
				values, posted := r.PostForm[cellName(i, j)]
				if !posted || values[0] == g[i][j] {
					continue
				}
				next, err := g.SetCell(i, j, values[0])
				if err != nil {
					return err
				}
				g = next
			}
		}
		if action == actionAddRow {
			g = g.AppendRow()
		}
		s.Grid = g
		return nil
	})
	if err != nil {
		if status := statusFor(err); status == http.StatusUnprocessableEntity || status == http.StatusBadRequest {
			current, getErr := h.repo.GetSheet(r.Context(), id)
			if getErr != nil {
				writeError(w, "failed to get sheet", getErr)
				return
			}
			h.renderForm(w, status, current, err.Error())
			return
		}
		writeError(w, "failed to update sheet", err)
		return
	}

	target := "/sheets/" + id.String()
	if action == actionPrint {
		target += "/print"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

const formHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.Loc.DriverLabel}} {{.Month}} {{.Year}}</title>
  <style>
    body { font-family: system-ui, sans-serif; margin: 0; padding: 24px; }
    .page { width: 1122.66px; min-height: 718.2px; border: 1px solid #000; margin: 0 auto; background: #fff; padding: 8px; box-sizing: border-box; }
    .header { display: flex; justify-content: space-between; }
    table { width: 100%; border-collapse: collapse; margin-top: 20px; }
    th, td { border: 1px solid black; padding: 8px; }
    td input { width: 100%; box-sizing: border-box; }
    input[readonly] { background: #f2f2f2; }
    .totals td { font-weight: bold; }
    .err { color: #b00020; margin: 12px 0; padding: 10px; background: #ffebee; border-radius: 6px; }
    .hint { color: #666; font-size: 0.9em; margin-top: 8px; }
    .actions { margin-top: 20px; display: flex; gap: 8px; }
  </style>
</head>
<body>
  <form class="page" method="POST" action="/sheets/{{.ID}}">
    <div class="header">
      <p>{{.Loc.DriverLabel}} </p>
      <div>
        <label for="month-select">{{.Year}} - {{.Loc.MonthLabel}}</label>
        <select id="month-select" name="month" onchange="this.form.requestSubmit()">
          {{- $month := .Month}}
          {{- range .Loc.Months}}
          <option value="{{.}}"{{if eq . $month}} selected{{end}}>{{.}}</option>
          {{- end}}
        </select>
      </div>
      <p>{{.Loc.SignatureLabel}}</p>
    </div>

    {{if .Error}}<div class="err">{{.Error}}</div>{{end}}

    <table>
      <thead>
        <tr>{{range .Loc.Columns}}<th>{{.}}</th>{{end}}</tr>
      </thead>
      <tbody>
        {{- range .Rows}}
        <tr>
          {{- range .Cells}}
          <td><input type="{{.Type}}" name="{{.Name}}" value="{{.Value}}"{{if .Placeholder}} placeholder="{{.Placeholder}}"{{end}}{{if .ReadOnly}} readonly tabindex="-1"{{end}}{{if eq .Type "time"}} onchange="this.form.requestSubmit()"{{end}}></td>
          {{- end}}
        </tr>
        {{- end}}
        <tr class="totals">{{range .Totals}}<td>{{.}}</td>{{end}}</tr>
      </tbody>
    </table>
    {{if .Skipped}}<div class="hint">{{.Loc.UnreadableHint}}{{range .Skipped}} {{.}}{{end}}</div>{{end}}

    <div class="actions">
      <button type="submit" name="action" value="save">{{.Loc.SaveButton}}</button>
      <button type="submit" name="action" value="add_row">{{.Loc.AddRowButton}}</button>
      <button type="submit" name="action" value="print" formtarget="_blank">{{.Loc.PrintButton}}</button>
      <a href="/sheets/{{.ID}}/export.xlsx">XLSX</a>
    </div>
  </form>
</body>
</html>
`
