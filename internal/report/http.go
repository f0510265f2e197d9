package report

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"taxi-timesheet/internal/locale"
	"taxi-timesheet/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/google/uuid"
)

type Handler struct {
	repo *storage.Repository
	loc  locale.Locale
	year int
}

func NewHandler(repo *storage.Repository, loc locale.Locale, year int) *Handler {
	return &Handler{
		repo: repo,
		loc:  loc,
		year: year,
	}
}

type totalsResponse struct {
	BreakHours       string `json:"break_hours"`
	WorkHours        string `json:"work_hours"`
	SkippedBreakRows []int  `json:"skipped_break_rows,omitempty"`
	SkippedWorkRows  []int  `json:"skipped_work_rows,omitempty"`
}

// Print serves the printable page of a sheet.
func (h *Handler) Print(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.document(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		slog.Error("failed to render print page", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// ExportXLSX serves the sheet as a spreadsheet download.
func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.document(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := WriteXLSX(&buf, doc); err != nil {
		slog.Error("failed to render workbook", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	filename := fmt.Sprintf("timesheet-%d-%02d.xlsx", doc.Year, h.loc.MonthNumber(doc.Month))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Totals returns the break and work hour sums of a sheet.
func (h *Handler) Totals(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.document(w, r)
	if !ok {
		return
	}
	response := &totalsResponse{
		BreakHours:       doc.BreakTotal.String(),
		WorkHours:        doc.WorkTotal.String(),
		SkippedBreakRows: doc.BreakTotal.Skipped,
		SkippedWorkRows:  doc.WorkTotal.Skipped,
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) document(w http.ResponseWriter, r *http.Request) (Document, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		http.Error(w, "id parameter is required", http.StatusBadRequest)
		return Document{}, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid id parameter", http.StatusBadRequest)
		return Document{}, false
	}

	sheet, err := h.repo.GetSheet(r.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrSheetNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return Document{}, false
		}
		slog.Error("failed to get sheet", "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return Document{}, false
	}

	doc := Build(sheet.Grid, sheet.Month, h.year, h.loc)
	logSkipped(id, "break", doc.BreakTotal.Skipped)
	logSkipped(id, "work_hours", doc.WorkTotal.Skipped)
	return doc, true
}

func logSkipped(id uuid.UUID, column string, rows []int) {
	if len(rows) == 0 {
		return
	}
	slog.Warn("unreadable cells counted as zero",
		"sheet_id", id,
		"column", column,
		"rows", rows,
	)
}
