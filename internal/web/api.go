package web

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"taxi-timesheet/internal/storage"
	"taxi-timesheet/internal/timesheet"

	"github.com/go-chi/render"
)

type createSheetRequest struct {
	Month string `json:"month"`
}

type setCellRequest struct {
	Row   *int   `json:"row"`
	Col   *int   `json:"col"`
	Value string `json:"value"`
}

type setMonthRequest struct {
	Month string `json:"month"`
}

type durationRequest struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type durationResponse struct {
	Hours string `json:"hours"`
}

type sheetResponse struct {
	ID         string         `json:"id"`
	Month      string         `json:"month"`
	Year       int            `json:"year"`
	Grid       timesheet.Grid `json:"grid"`
	BreakTotal string         `json:"break_total"`
	WorkTotal  string         `json:"work_total"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
}

func (h *Handler) newSheetResponse(s *storage.Sheet) *sheetResponse {
	return &sheetResponse{
		ID:         s.ID.String(),
		Month:      s.Month,
		Year:       h.year,
		Grid:       s.Grid,
		BreakTotal: timesheet.SumColumn(s.Grid, timesheet.ColBreak),
		WorkTotal:  timesheet.SumColumn(s.Grid, timesheet.ColWorkHours),
		CreatedAt:  s.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:  s.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}

func (h *Handler) CreateSheet(w http.ResponseWriter, r *http.Request) {
	var req createSheetRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("failed to decode request", "err", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Month == "" {
		req.Month = h.defaultMonth
	}
	if err := h.loc.ValidMonth(req.Month); err != nil {
		writeError(w, "invalid month", err)
		return
	}

	sheet, err := h.repo.CreateSheet(r.Context(), req.Month)
	if err != nil {
		writeError(w, "failed to create sheet", err)
		return
	}
	slog.Info("sheet created", "sheet_id", sheet.ID, "month", sheet.Month)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, h.newSheetResponse(sheet))
}

func (h *Handler) GetSheet(w http.ResponseWriter, r *http.Request) {
	id, ok := sheetID(w, r)
	if !ok {
		return
	}
	sheet, err := h.repo.GetSheet(r.Context(), id)
	if err != nil {
		writeError(w, "failed to get sheet", err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.newSheetResponse(sheet))
}

func (h *Handler) DeleteSheet(w http.ResponseWriter, r *http.Request) {
	id, ok := sheetID(w, r)
	if !ok {
		return
	}
	if err := h.repo.DeleteSheet(r.Context(), id); err != nil {
		writeError(w, "failed to delete sheet", err)
		return
	}
	render.NoContent(w, r)
}

// SetCell writes one cell; start and end times also update the work hours
// of the row.
func (h *Handler) SetCell(w http.ResponseWriter, r *http.Request) {
	id, ok := sheetID(w, r)
	if !ok {
		return
	}
	var req setCellRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("failed to decode request", "err", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Row == nil || req.Col == nil {
		http.Error(w, "row and col are required", http.StatusBadRequest)
		return
	}

	sheet, err := h.repo.UpdateSheet(r.Context(), id, func(s *storage.Sheet) error {
		g, err := s.Grid.SetCell(*req.Row, *req.Col, req.Value)
		if err != nil {
			return err
		}
		s.Grid = g
		return nil
	})
	if err != nil {
		writeError(w, "failed to set cell", err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.newSheetResponse(sheet))
}

func (h *Handler) AppendRow(w http.ResponseWriter, r *http.Request) {
	id, ok := sheetID(w, r)
	if !ok {
		return
	}
	sheet, err := h.repo.UpdateSheet(r.Context(), id, func(s *storage.Sheet) error {
		s.Grid = s.Grid.AppendRow()
		return nil
	})
	if err != nil {
		writeError(w, "failed to append row", err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.newSheetResponse(sheet))
}

func (h *Handler) SetMonth(w http.ResponseWriter, r *http.Request) {
	id, ok := sheetID(w, r)
	if !ok {
		return
	}
	var req setMonthRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("failed to decode request", "err", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := h.loc.ValidMonth(req.Month); err != nil {
		writeError(w, "invalid month", err)
		return
	}

	sheet, err := h.repo.UpdateSheet(r.Context(), id, func(s *storage.Sheet) error {
		s.Month = req.Month
		return nil
	})
	if err != nil {
		writeError(w, "failed to set month", err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.newSheetResponse(sheet))
}

// Duration computes the hours between two clock times without touching any
// sheet.
func (h *Handler) Duration(w http.ResponseWriter, r *http.Request) {
	var req durationRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		slog.Error("failed to decode request", "err", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	hours, err := timesheet.ComputeDuration(req.Start, req.End)
	if err != nil {
		writeError(w, "invalid duration request", err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, &durationResponse{Hours: hours})
}
