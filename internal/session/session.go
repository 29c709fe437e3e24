// Package session keeps the per-visitor form draft and the last report in
// memory. Nothing here outlives the process.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/BerylCAtieno/careerpath-agent/internal/models"
	"golang.org/x/sync/semaphore"
)

// ErrBusy is returned when a generation is already in flight for the session.
var ErrBusy = errors.New("a report is already being generated")

// ReportGenerator is the Report Generator contract the session drives.
type ReportGenerator interface {
	GenerateCareerReport(ctx context.Context, profile models.StudentProfile) (*models.CareerReport, error)
}

// EventKind identifies how a submission resolved.
type EventKind string

const (
	EventCompleted EventKind = "completed"
	EventFailed    EventKind = "failed"
)

// Event is emitted once per resolved submission.
type Event struct {
	Kind   EventKind
	Report *models.CareerReport
	Error  string
}

// State is a snapshot of a session.
type State struct {
	Draft   models.StudentProfile
	Profile *models.StudentProfile
	Report  *models.CareerReport
	Error   string
	Loading bool
}

// Session holds one visitor's form and report state.
type Session struct {
	ID string

	generator ReportGenerator
	inflight  *semaphore.Weighted
	listener  func(Event)
	logger    *slog.Logger

	mu       sync.Mutex
	draft    models.StudentProfile
	profile  *models.StudentProfile
	report   *models.CareerReport
	errMsg   string
	loading  bool
	lastSeen time.Time
}

// New creates a session with a default draft.
func New(id string, generator ReportGenerator, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		ID:        id,
		generator: generator,
		inflight:  semaphore.NewWeighted(1),
		logger:    logger,
		draft:     models.DefaultProfile(),
		lastSeen:  time.Now(),
	}
}

// OnResolve registers fn to receive one Event per resolved submission.
func (s *Session) OnResolve(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = fn
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Draft:   s.draft,
		Profile: s.profile,
		Report:  s.report,
		Error:   s.errMsg,
		Loading: s.loading,
	}
}

// UpdateDraft applies fn to the draft profile and returns the result.
func (s *Session) UpdateDraft(fn func(models.StudentProfile) models.StudentProfile) models.StudentProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = fn(s.draft)
	s.lastSeen = time.Now()
	return s.draft
}

// Submit validates profile and runs one generation. Report and error are
// replaced together when the call resolves. A concurrent Submit fails with
// ErrBusy without touching state.
func (s *Session) Submit(ctx context.Context, profile models.StudentProfile) (*models.CareerReport, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if !s.inflight.TryAcquire(1) {
		return nil, ErrBusy
	}
	defer s.inflight.Release(1)

	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	submitted := profile
	s.profile = &submitted
	s.lastSeen = time.Now()
	s.mu.Unlock()

	report, err := s.generator.GenerateCareerReport(ctx, profile)

	s.mu.Lock()
	s.loading = false
	s.lastSeen = time.Now()
	var ev Event
	if err != nil {
		s.logger.Error("career report generation failed", "session", s.ID, "error", err)
		s.errMsg = models.GenerationFailedMessage
		ev = Event{Kind: EventFailed, Error: s.errMsg}
	} else {
		s.report = report
		ev = Event{Kind: EventCompleted, Report: report}
	}
	listener := s.listener
	s.mu.Unlock()

	if listener != nil {
		listener(ev)
	}
	return report, err
}

// Reset discards the report, the error and the draft.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.report = nil
	s.profile = nil
	s.errMsg = ""
	s.draft = models.DefaultProfile()
	s.lastSeen = time.Now()
}

// expired reports whether the session has been idle since before cutoff.
// A session with a generation in flight never expires.
func (s *Session) expired(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.loading && s.lastSeen.Before(cutoff)
}
