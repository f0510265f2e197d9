package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

var ErrNotFound = errors.New("sheet not found")

// StatusError is returned when the service answers with an unexpected status.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

func (c *Client) GetSheet(ctx context.Context, id string) (*Sheet, error) {
	var sheet Sheet
	if err := c.get(ctx, "/api/sheets/"+url.PathEscape(id), &sheet); err != nil {
		return nil, fmt.Errorf("get sheet %s: %w", id, err)
	}
	return &sheet, nil
}

func (c *Client) GetTotals(ctx context.Context, id string) (*Totals, error) {
	var totals Totals
	if err := c.get(ctx, "/api/sheets/"+url.PathEscape(id)+"/totals", &totals); err != nil {
		return nil, fmt.Errorf("get totals %s: %w", id, err)
	}
	return &totals, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		slog.Error("timesheet service returned error", "status", resp.StatusCode, "path", path)
		return &StatusError{Status: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
