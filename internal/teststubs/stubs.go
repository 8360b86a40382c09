package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/notune/lqo-leaderboard/internal/domain"
)

// StubProvider is a test double for providers.SnapshotProvider. Snapshots
// are served in order; the last one repeats once the list runs out.
type StubProvider struct {
	mu        sync.Mutex
	Snapshots []domain.Snapshot
	Err       error
	Calls     atomic.Int32
	Fetches   chan struct{} // non-blocking notify per call when set
}

// FetchSnapshot returns the configured snapshot and error while tracking calls.
func (s *StubProvider) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	_ = ctx
	call := int(s.Calls.Add(1))

	if s.Fetches != nil {
		select {
		case s.Fetches <- struct{}{}:
		default:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return domain.Snapshot{}, s.Err
	}
	if len(s.Snapshots) == 0 {
		return domain.Snapshot{}, nil
	}
	idx := call - 1
	if idx >= len(s.Snapshots) {
		idx = len(s.Snapshots) - 1
	}
	return s.Snapshots[idx], nil
}

// SetErr swaps the error returned by later calls.
func (s *StubProvider) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// StubSurface is a test double for render.Surface. It records every render
// so tests can assert on rows and timer text.
type StubSurface struct {
	mu     sync.Mutex
	rows   [][]domain.Row
	timers []string

	RowsCh  chan struct{} // non-blocking notify per ReplaceRows when set
	TimerCh chan struct{} // non-blocking notify per SetTimer when set
}

// ReplaceRows records the rendered rows.
func (s *StubSurface) ReplaceRows(rows []domain.Row) {
	s.mu.Lock()
	copied := make([]domain.Row, len(rows))
	copy(copied, rows)
	s.rows = append(s.rows, copied)
	s.mu.Unlock()

	if s.RowsCh != nil {
		select {
		case s.RowsCh <- struct{}{}:
		default:
		}
	}
}

// SetTimer records the timer line text.
func (s *StubSurface) SetTimer(text string) {
	s.mu.Lock()
	s.timers = append(s.timers, text)
	s.mu.Unlock()

	if s.TimerCh != nil {
		select {
		case s.TimerCh <- struct{}{}:
		default:
		}
	}
}

// RenderCount returns how many times ReplaceRows ran.
func (s *StubSurface) RenderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

// LastRows returns the rows of the most recent render, or nil.
func (s *StubSurface) LastRows() []domain.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.rows) == 0 {
		return nil
	}
	return s.rows[len(s.rows)-1]
}

// LastTimer returns the most recent timer text, or the empty string.
func (s *StubSurface) LastTimer() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.timers) == 0 {
		return ""
	}
	return s.timers[len(s.timers)-1]
}

// TimerTexts returns a copy of every timer text set so far.
func (s *StubSurface) TimerTexts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.timers))
	copy(out, s.timers)
	return out
}
