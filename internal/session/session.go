// Package session holds the feedback table the dashboard is currently showing.
package session

import (
	"sync"

	"feedback-dashboard/internal/model"
	"feedback-dashboard/internal/pipeline"
)

// Snapshot is an immutable view of the session at one point in time.
type Snapshot struct {
	Dataset model.DatasetInfo
	Table   model.FeedbackTable
	Result  model.AnalysisResult
}

// Session owns the current table and the analysis derived from it. The table
// is only ever replaced wholesale; the tally and report are recomputed on
// every replacement.
type Session struct {
	mu       sync.RWMutex
	fallback Snapshot
	current  Snapshot
}

// New starts a session on the default table.
func New(table model.FeedbackTable, info model.DatasetInfo) *Session {
	info.Default = true
	snap := newSnapshot(table, info)
	return &Session{fallback: snap, current: snap}
}

func newSnapshot(table model.FeedbackTable, info model.DatasetInfo) Snapshot {
	info.Records = table.Len()
	return Snapshot{Dataset: info, Table: table, Result: pipeline.Analyze(table)}
}

// Current returns the snapshot being shown.
func (s *Session) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Replace swaps in a new table and returns the new snapshot.
func (s *Session) Replace(table model.FeedbackTable, info model.DatasetInfo) Snapshot {
	info.Default = false
	snap := newSnapshot(table, info)

	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()
	return snap
}

// Reset restores the table the session started with.
func (s *Session) Reset() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.fallback
	return s.current
}

// IsDefault reports whether the default table is being shown.
func (s *Session) IsDefault() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Dataset.Default
}
