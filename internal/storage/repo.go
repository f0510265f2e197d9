package storage

import (
	"context"
	"errors"
	"fmt"

	"taxi-timesheet/internal/timesheet"

	"github.com/google/uuid"
)

var ErrSheetNotFound = errors.New("sheet not found")

type Repository struct {
	store *Memory
}

func NewRepository(store *Memory) *Repository {
	return &Repository{
		store: store,
	}
}

// CreateSheet opens a new sheet with a blank grid.
func (r *Repository) CreateSheet(ctx context.Context, month string) (*Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	now := r.store.now()
	s := &Sheet{
		ID:        uuid.New(),
		Month:     month,
		Grid:      timesheet.NewGrid(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.store.mu.Lock()
	r.store.sheets[s.ID] = s
	r.store.mu.Unlock()
	return s.clone(), nil
}

func (r *Repository) GetSheet(ctx context.Context, id uuid.UUID) (*Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("get sheet: %w", err)
	}
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	s, ok := r.store.sheets[id]
	if !ok || r.store.expired(s) {
		return nil, fmt.Errorf("get sheet %s: %w", id, ErrSheetNotFound)
	}
	return s.clone(), nil
}

// UpdateSheet applies fn to a copy of the sheet and stores the copy when fn
// succeeds. Concurrent updates of the same sheet are serialized.
func (r *Repository) UpdateSheet(ctx context.Context, id uuid.UUID, fn func(*Sheet) error) (*Sheet, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("update sheet: %w", err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	s, ok := r.store.sheets[id]
	if !ok || r.store.expired(s) {
		return nil, fmt.Errorf("update sheet %s: %w", id, ErrSheetNotFound)
	}
	next := s.clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.ID = s.ID
	next.CreatedAt = s.CreatedAt
	next.UpdatedAt = r.store.now()
	r.store.sheets[id] = next
	return next.clone(), nil
}

func (r *Repository) DeleteSheet(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("delete sheet: %w", err)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.sheets[id]; !ok {
		return fmt.Errorf("delete sheet %s: %w", id, ErrSheetNotFound)
	}
	delete(r.store.sheets, id)
	return nil
}
