package storage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Memory holds the sheets of all open views. Nothing is written to disk; a
// sheet lives until it has been idle for the configured TTL.
type Memory struct {
	mu     sync.RWMutex
	sheets map[uuid.UUID]*Sheet
	ttl    time.Duration
	now    func() time.Time
}

// NewStorage creates the store and, when sweepEvery is positive, starts a
// goroutine evicting idle sheets until ctx is done.
func NewStorage(ctx context.Context, ttl, sweepEvery time.Duration) *Memory {
	m := &Memory{
		sheets: make(map[uuid.UUID]*Sheet),
		ttl:    ttl,
		now:    time.Now,
	}
	if ttl > 0 && sweepEvery > 0 {
		go m.sweepLoop(ctx, sweepEvery)
	}
	slog.Info("sheet storage ready", "ttl", ttl, "sweep_interval", sweepEvery)
	return m
}

func (m *Memory) sweepLoop(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(); n > 0 {
				slog.Debug("expired idle sheets", "count", n)
			}
		}
	}
}

// Sweep removes sheets idle for longer than the TTL and returns how many
// were removed.
func (m *Memory) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.now().Add(-m.ttl)

	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sheets {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.sheets, id)
			n++
		}
	}
	return n
}

func (m *Memory) expired(s *Sheet) bool {
	return m.ttl > 0 && s.UpdatedAt.Before(m.now().Add(-m.ttl))
}
