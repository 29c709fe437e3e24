package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store maps visitor IDs to sessions.
type Store struct {
	generator ReportGenerator
	logger    *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewStore creates an empty in-memory store.
func NewStore(generator ReportGenerator, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		generator: generator,
		logger:    logger,
		sessions:  make(map[string]*Session),
	}
}

// Get returns the session for id, creating a fresh one under a new ID when id
// is unknown or empty.
func (st *Store) Get(id string) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	if s, ok := st.sessions[id]; ok {
		return s
	}
	s := New(uuid.NewString(), st.generator, st.logger)
	st.sessions[s.ID] = s
	return s
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Sweep drops sessions idle for longer than maxIdle and returns how many were
// removed. Sessions still generating a report are kept.
func (st *Store) Sweep(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		if s.expired(cutoff) {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (st *Store) RunSweeper(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.Sweep(maxIdle); n > 0 {
				st.logger.Debug("swept idle sessions", "removed", n, "remaining", st.Len())
			}
		}
	}
}
