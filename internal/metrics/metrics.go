package metrics

import (
	"sync"
	"time"
)

type fetchStats struct {
	fetches     int
	errors      int
	lastLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about the refresh loop.
// Tests assert against it directly; the optional OTel instruments mirror
// every sample out to Prometheus/OTLP.
type Recorder struct {
	mu             sync.Mutex
	stats          map[string]*fetchStats
	refreshCycles  int
	refreshErrors  int
	halts          map[string]int
	lastRows       int
	countdownTicks int
	otel           *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*fetchStats),
		halts: make(map[string]int),
		otel:  otel,
	}
}

// RecordFetchAttempt increments counters for one provider fetch and stores
// the observed latency.
func (r *Recorder) RecordFetchAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(provider)
	stats.fetches++
	stats.lastLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFetchAttempt(provider, duration, err)
	}
}

// RecordRefreshCycle tracks one full fetch/rank/render cycle.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.refreshCycles++
	if err != nil {
		r.refreshErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRefreshCycle(duration, err)
	}
}

// RecordHalt tracks a terminal stop of the refresh loop by reason.
func (r *Recorder) RecordHalt(reason string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.halts[reason]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordHalt(reason)
	}
}

// RecordRowsRendered tracks how many rows the last render produced.
func (r *Recorder) RecordRowsRendered(count int) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.lastRows = count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRowsRendered(count)
	}
}

// RecordCountdownTick tracks one countdown redraw.
func (r *Recorder) RecordCountdownTick() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.countdownTicks++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCountdownTick()
	}
}

// FetchCalls returns the total fetch attempts recorded for a provider.
func (r *Recorder) FetchCalls(provider string) int {
	return r.FetchSnapshot(provider).Fetches
}

// FetchErrors returns the total failed fetches recorded for a provider.
func (r *Recorder) FetchErrors(provider string) int {
	return r.FetchSnapshot(provider).Errors
}

// LastFetchLatency returns the last recorded latency for a provider fetch.
func (r *Recorder) LastFetchLatency(provider string) time.Duration {
	return r.FetchSnapshot(provider).LastLatency
}

// RefreshCycles returns the number of completed refresh cycles.
func (r *Recorder) RefreshCycles() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshCycles
}

// RefreshErrors returns the number of refresh cycles that ended in error.
func (r *Recorder) RefreshErrors() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshErrors
}

// Halts returns how often the loop halted for the given reason.
func (r *Recorder) Halts(reason string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.halts[reason]
}

// LastRowsRendered returns the row count of the most recent render.
func (r *Recorder) LastRowsRendered() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastRows
}

// CountdownTicks returns the number of countdown redraws recorded.
func (r *Recorder) CountdownTicks() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.countdownTicks
}

// FetchStats is a copy of the per-provider counters.
type FetchStats struct {
	Fetches     int
	Errors      int
	LastLatency time.Duration
}

// FetchSnapshot returns a copy of the current stats for the provider.
func (r *Recorder) FetchSnapshot(provider string) FetchStats {
	if r == nil {
		return FetchStats{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[provider]; ok && stats != nil {
		return FetchStats{Fetches: stats.fetches, Errors: stats.errors, LastLatency: stats.lastLatency}
	}
	return FetchStats{}
}

func (r *Recorder) ensureStatsLocked(provider string) *fetchStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &fetchStats{}
		r.stats[provider] = stats
	}
	return stats
}
