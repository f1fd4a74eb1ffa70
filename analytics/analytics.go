// Package analytics accumulates resolution outcomes for one process
// session and turns them into reports and recommendations. State is the
// single piece of shared mutable memory in the resolution core; every
// access is serialized behind its mutex.
package analytics

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ToolStats are the per-tool counters. Requested == Resolved + Failed
// holds after every recorded event.
type ToolStats struct {
	Requested int             `json:"requested"`
	Resolved  int             `json:"resolved"`
	Failed    int             `json:"failed"`
	Last      *LastResolution `json:"last,omitempty"`
}

// LastResolution remembers the most recent attempt for a tool.
type LastResolution struct {
	Method     string    `json:"method"`
	ResolvedTo string    `json:"resolved_to,omitempty"`
	At         time.Time `json:"at"`
}

// State owns all resolution counters for a session. Create with
// NewState; safe for concurrent use.
type State struct {
	mu           sync.Mutex
	sessionID    string
	sessionStart time.Time
	total        int
	success      int
	fail         int
	missing      map[string]int
	methods      map[string]int
	tools        map[string]*ToolStats
	logger       *zap.Logger
}

// Option configures a State.
type Option func(*State)

// WithLogger sets the structured logger. Defaults to a nop logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState creates an empty analytics session.
func NewState(opts ...Option) *State {
	s := &State{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	s.initLocked()
	return s
}

// initLocked reinitializes all counters and stamps a fresh session.
// Callers hold the mutex (or own the State exclusively, as in NewState).
func (s *State) initLocked() {
	s.sessionID = uuid.NewString()
	s.sessionStart = time.Now()
	s.total = 0
	s.success = 0
	s.fail = 0
	s.missing = make(map[string]int)
	s.methods = make(map[string]int)
	s.tools = make(map[string]*ToolStats)
}

// RecordResolution records one resolution attempt. Failure attempts
// also count toward the missing-tool histogram. Satisfies
// resolve.Recorder.
func (s *State) RecordResolution(tool string, success bool, method string, resolvedTo string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	if success {
		s.success++
	} else {
		s.fail++
		s.missing[tool]++
	}
	s.methods[method]++

	ts := s.tools[tool]
	if ts == nil {
		ts = &ToolStats{}
		s.tools[tool] = ts
	}
	ts.Requested++
	if success {
		ts.Resolved++
	} else {
		ts.Failed++
	}
	ts.Last = &LastResolution{Method: method, ResolvedTo: resolvedTo, At: time.Now()}

	s.logger.Debug("recorded resolution",
		zap.String("tool", tool),
		zap.Bool("success", success),
		zap.String("method", method),
		zap.String("resolved_to", resolvedTo))
}

// Reset drops every counter and starts a new session.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
}

// SessionID returns the identifier of the current session.
func (s *State) SessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}
