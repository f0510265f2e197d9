package storage

import (
	"time"

	"taxi-timesheet/internal/timesheet"

	"github.com/google/uuid"
)

// Sheet is one open timesheet view.
type Sheet struct {
	ID        uuid.UUID      `json:"id"`
	Month     string         `json:"month"`
	Grid      timesheet.Grid `json:"grid"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (s *Sheet) clone() *Sheet {
	c := *s
	c.Grid = s.Grid.Clone()
	return &c
}
