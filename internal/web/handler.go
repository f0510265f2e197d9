package web

import (
	"errors"
	"log/slog"
	"net/http"

	"taxi-timesheet/internal/locale"
	"taxi-timesheet/internal/storage"
	"taxi-timesheet/internal/timesheet"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Handler struct {
	repo         *storage.Repository
	loc          locale.Locale
	defaultMonth string
	year         int
}

func NewHandler(repo *storage.Repository, loc locale.Locale, defaultMonth string, year int) *Handler {
	if loc.ValidMonth(defaultMonth) != nil {
		defaultMonth = loc.DefaultMonth
	}
	return &Handler{
		repo:         repo,
		loc:          loc,
		defaultMonth: defaultMonth,
		year:         year,
	}
}

func sheetID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, storage.ErrSheetNotFound):
		return http.StatusNotFound
	case errors.Is(err, timesheet.ErrInvalidTimeFormat):
		return http.StatusUnprocessableEntity
	case errors.Is(err, timesheet.ErrOutOfRange), errors.Is(err, locale.ErrUnknownMonth):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, msg string, err error) {
	status := statusFor(err)
	switch status {
	case http.StatusNotFound:
		http.Error(w, "Not Found", status)
	case http.StatusInternalServerError:
		slog.Error(msg, "err", err)
		http.Error(w, "internal server error", status)
	default:
		slog.Debug(msg, "err", err)
		http.Error(w, err.Error(), status)
	}
}
