package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/notune/lqo-leaderboard/internal/countdown"
	"github.com/notune/lqo-leaderboard/internal/domain"
	"github.com/notune/lqo-leaderboard/internal/logging"
	"github.com/notune/lqo-leaderboard/internal/metrics"
	"github.com/notune/lqo-leaderboard/internal/providers"
	"github.com/notune/lqo-leaderboard/internal/render"
	"github.com/notune/lqo-leaderboard/internal/timeutil"
)

// Timer-line notices shown when the refresh loop halts. The wording matches
// the public page; tests and operators key off these exact strings.
const (
	FetchFailedText = "Failed to fetch update. Please reload manually."
	StaleText       = "Update delayed or failed. Please reload manually."
)

// refreshBuffer is the safety margin added past the upstream's advertised
// next refresh, giving the generator time to land its write.
const refreshBuffer = 60 * time.Second

var errStaleSnapshot = errors.New("snapshot timestamp unchanged")

// State describes where the refresh loop is in its lifecycle.
type State string

const (
	StateIdle        State = "idle"
	StateRunning     State = "running"
	StateHaltedFetch State = "halted_fetch"
	StateHaltedStale State = "halted_stale"
)

// Halted reports whether the loop has permanently stopped. A halted loop
// never fetches again; recovery is a process restart.
func (s State) Halted() bool {
	return s == StateHaltedFetch || s == StateHaltedStale
}

// Status describes the refresh loop's recent activity.
type Status struct {
	State              State
	LastAttempt        time.Time
	LastSuccess        time.Time
	LastError          string
	LastKnownTimestamp int64 // epoch ms of the last accepted snapshot
	NextUpdateUnix     int64 // epoch second the next fetch is armed for
	RowsRendered       int
}

// Poller drives the refresh cycle: fetch a snapshot, rank it, render it,
// then arm a one-shot timer for the next cycle. At most one scheduled fetch
// is pending at any time. Both failure modes halt the loop for good.
type Poller struct {
	provider  providers.SnapshotProvider
	surface   render.Surface
	countdown *countdown.Countdown
	logger    *slog.Logger
	metrics   *metrics.Recorder
	clock     clockwork.Clock

	startMu sync.Mutex
	started bool

	// runMu serializes refresh cycles with Stop, so a cycle either finishes
	// before Stop cancels its timers or never starts at all.
	runMu   sync.Mutex
	stopped bool

	schedMu   sync.Mutex
	gen       int
	timer     clockwork.Timer
	cancel    chan struct{}
	lastKnown int64

	statusMu sync.RWMutex
	status   Status
}

// New constructs a Poller. A nil clock falls back to the real one.
func New(provider providers.SnapshotProvider, surface render.Surface, cd *countdown.Countdown, logger *slog.Logger, recorder *metrics.Recorder, clock clockwork.Clock) *Poller {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Poller{
		provider:  provider,
		surface:   surface,
		countdown: cd,
		logger:    logger,
		metrics:   recorder,
		clock:     clock,
		status:    Status{State: StateIdle},
	}
}

// Start runs the initial refresh immediately and keeps re-arming until the
// context ends or the loop halts. Calling Start twice is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.statusMu.Lock()
	p.status.State = StateRunning
	p.statusMu.Unlock()

	logging.Info(p.logger, "refresh loop started")
	go p.refresh(ctx)
}

// Stop cancels the pending scheduled fetch and the countdown chain. Any
// in-flight refresh completes first; nothing runs after Stop returns.
func (p *Poller) Stop() {
	p.runMu.Lock()
	defer p.runMu.Unlock()
	if p.stopped {
		return
	}
	p.stopped = true

	p.schedMu.Lock()
	p.gen++
	p.cancelTimerLocked()
	p.schedMu.Unlock()

	p.countdown.Stop()
	logging.Info(p.logger, "refresh loop stopped")
}

// Status returns a snapshot of the loop's recent activity.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// RefreshOnce performs a single fetch/rank/render cycle without arming any
// timers, for one-shot runs.
func (p *Poller) RefreshOnce(ctx context.Context) error {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	start := p.clock.Now()
	p.recordAttempt(start)

	snap, err := p.provider.FetchSnapshot(ctx)
	if err != nil {
		p.metrics.RecordRefreshCycle(p.clock.Since(start), err)
		p.recordFailure(err)
		return err
	}

	now := p.clock.Now()
	ts := snap.Metadata.EffectiveTimestamp(now)
	interval := snap.Metadata.EffectiveInterval()
	p.setLastKnown(ts)

	rows := domain.Rank(snap)
	p.surface.ReplaceRows(rows)
	p.metrics.RecordRowsRendered(len(rows))

	next := nextUpdateUnix(ts, interval)
	p.surface.SetTimer(countdown.Format(next - now.Unix()))

	p.metrics.RecordRefreshCycle(p.clock.Since(start), nil)
	p.recordSuccess(start, ts, next, len(rows))
	return nil
}

// refresh is one full cycle. On success it arms the next cycle; on failure
// it halts the loop and leaves the final notice on the timer line.
func (p *Poller) refresh(ctx context.Context) {
	p.runMu.Lock()
	defer p.runMu.Unlock()

	if ctx.Err() != nil || p.stopped {
		return
	}
	if p.Status().State.Halted() {
		return
	}

	start := p.clock.Now()
	p.recordAttempt(start)

	snap, err := p.provider.FetchSnapshot(ctx)
	if err != nil {
		if ctx.Err() != nil {
			logging.Debug(p.logger, "refresh aborted by shutdown")
			return
		}
		p.haltFetchFailed(err, p.clock.Since(start))
		return
	}

	now := p.clock.Now()
	ts := snap.Metadata.EffectiveTimestamp(now)
	interval := snap.Metadata.EffectiveInterval()

	if p.isStale(ts) {
		p.haltStale(ts, p.clock.Since(start))
		return
	}
	p.setLastKnown(ts)

	rows := domain.Rank(snap)
	p.surface.ReplaceRows(rows)
	p.metrics.RecordRowsRendered(len(rows))

	next := nextUpdateUnix(ts, interval)
	// Countdown first: when next is already past the timer fires at once,
	// and that refresh may halt. Its notice must land after our render.
	p.countdown.Restart(ctx, next)
	p.armNext(ctx, next)

	elapsed := p.clock.Since(start)
	p.metrics.RecordRefreshCycle(elapsed, nil)
	p.recordSuccess(start, ts, next, len(rows))
	logging.Info(p.logger, "leaderboard refreshed",
		slog.Int(logging.FieldCount, len(rows)),
		slog.Int64(logging.FieldTimestamp, ts),
		slog.Int64(logging.FieldNextUpdate, next),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}

// nextUpdateUnix computes the epoch second the next fetch should run: the
// upstream's advertised next refresh plus the landing buffer.
func nextUpdateUnix(ts, interval int64) int64 {
	return (ts+interval)/1000 + int64(refreshBuffer/time.Second)
}

// armNext replaces any pending scheduled fetch with one firing at the given
// epoch second.
func (p *Poller) armNext(ctx context.Context, next int64) {
	p.schedMu.Lock()
	defer p.schedMu.Unlock()

	p.cancelTimerLocked()
	p.gen++
	gen := p.gen
	cancel := make(chan struct{})
	p.cancel = cancel

	delay := timeutil.FromSeconds(next).Sub(p.clock.Now())
	if delay < 0 {
		delay = 0
	}
	timer := p.clock.NewTimer(delay)
	p.timer = timer

	go func() {
		select {
		case <-timer.Chan():
			p.schedMu.Lock()
			live := gen == p.gen
			if live {
				p.timer = nil
				p.cancel = nil
			}
			p.schedMu.Unlock()
			if live {
				p.refresh(ctx)
			}
		case <-cancel:
			timeutil.StopAndDrain(timer)
		case <-ctx.Done():
			timeutil.StopAndDrain(timer)
		}
	}()
}

func (p *Poller) haltFetchFailed(err error, elapsed time.Duration) {
	p.cancelPending()
	p.recordHalt(StateHaltedFetch, err)
	p.countdown.Stop()
	p.surface.SetTimer(FetchFailedText)

	p.metrics.RecordRefreshCycle(elapsed, err)
	p.metrics.RecordHalt(metrics.HaltReasonFetchFailed)
	logging.Error(p.logger, "leaderboard fetch failed, halting", err,
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
}

func (p *Poller) haltStale(ts int64, elapsed time.Duration) {
	p.cancelPending()
	p.recordHalt(StateHaltedStale, errStaleSnapshot)
	p.countdown.Stop()
	p.surface.SetTimer(StaleText)

	p.metrics.RecordRefreshCycle(elapsed, errStaleSnapshot)
	p.metrics.RecordHalt(metrics.HaltReasonStale)
	logging.Warn(p.logger, "snapshot unchanged upstream, halting",
		slog.Int64(logging.FieldTimestamp, ts),
	)
}

func (p *Poller) cancelPending() {
	p.schedMu.Lock()
	defer p.schedMu.Unlock()
	p.gen++
	p.cancelTimerLocked()
}

func (p *Poller) cancelTimerLocked() {
	if p.cancel != nil {
		close(p.cancel)
		p.cancel = nil
	}
	if p.timer != nil {
		timeutil.StopAndDrain(p.timer)
		p.timer = nil
	}
}

func (p *Poller) isStale(ts int64) bool {
	p.schedMu.Lock()
	defer p.schedMu.Unlock()
	return ts == p.lastKnown
}

func (p *Poller) setLastKnown(ts int64) {
	p.schedMu.Lock()
	defer p.schedMu.Unlock()
	p.lastKnown = ts
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, ts, next int64, rows int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastSuccess = at
	p.status.LastError = ""
	p.status.LastKnownTimestamp = ts
	p.status.NextUpdateUnix = next
	p.status.RowsRendered = rows
}

func (p *Poller) recordFailure(err error) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	if err != nil {
		p.status.LastError = err.Error()
	}
}

func (p *Poller) recordHalt(state State, err error) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.State = state
	if err != nil {
		p.status.LastError = err.Error()
	}
}
