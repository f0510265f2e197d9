package gateway

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/sheets/known", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"known","month":"Mai","year":2024,"grid":[["Hafen","09:00","17:30","0.5","8.50","",""]],"break_total":"0.50","work_total":"8.50"}`))
	})
	mux.HandleFunc("GET /api/sheets/known/totals", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"break_hours":"0.50","work_hours":"8.50","skipped_break_rows":[3]}`))
	})
	mux.HandleFunc("GET /api/sheets/broken", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	})
	mux.HandleFunc("GET /api/sheets/garbage", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGetSheet(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL+"/", time.Second)

	sheet, err := c.GetSheet(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "Mai", sheet.Month)
	assert.Equal(t, 2024, sheet.Year)
	require.Len(t, sheet.Grid, 1)
	assert.Equal(t, "8.50", sheet.Grid[0][4])
	assert.Equal(t, "8.50", sheet.WorkTotal)
}

func TestGetTotals(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL, time.Second)

	totals, err := c.GetTotals(context.Background(), "known")
	require.NoError(t, err)
	assert.Equal(t, "0.50", totals.BreakHours)
	assert.Equal(t, []int{3}, totals.SkippedBreakRows)
	assert.Empty(t, totals.SkippedWorkRows)
}

func TestGetSheetErrors(t *testing.T) {
	srv := newServer(t)
	c := NewClient(srv.URL, time.Second)

	_, err := c.GetSheet(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = c.GetSheet(context.Background(), "broken")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)

	_, err = c.GetSheet(context.Background(), "garbage")
	assert.ErrorContains(t, err, "decode response")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.GetSheet(ctx, "known")
	assert.ErrorIs(t, err, context.Canceled)
}
