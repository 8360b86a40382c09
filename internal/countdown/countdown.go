package countdown

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/notune/lqo-leaderboard/internal/logging"
	"github.com/notune/lqo-leaderboard/internal/metrics"
	"github.com/notune/lqo-leaderboard/internal/timeutil"
)

// UpdatingText is shown once the countdown reaches zero, while the next
// fetch is due or in flight.
const UpdatingText = "Updating..."

// Format renders the remaining seconds as "<m>m <ss>s". Non-positive
// remainders collapse to UpdatingText.
func Format(remaining int64) string {
	if remaining <= 0 {
		return UpdatingText
	}
	return fmt.Sprintf("%dm %02ds", remaining/60, remaining%60)
}

// TimerSink receives countdown line updates.
type TimerSink interface {
	SetTimer(text string)
}

// Countdown drives the timer line at one-second cadence toward a target
// epoch second. At most one tick chain is live; Restart replaces the
// previous chain before it can render again.
type Countdown struct {
	sink    TimerSink
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *metrics.Recorder

	mu     sync.Mutex
	gen    int
	timer  clockwork.Timer
	cancel chan struct{}
	target int64
}

// New constructs a Countdown writing to sink. A nil clock falls back to the
// real one.
func New(sink TimerSink, clock clockwork.Clock, logger *slog.Logger, recorder *metrics.Recorder) *Countdown {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Countdown{
		sink:    sink,
		clock:   clock,
		logger:  logger,
		metrics: recorder,
	}
}

// Restart points the countdown at target, renders the first line
// synchronously, and keeps ticking every second until the remainder hits
// zero, the chain is replaced, or ctx ends.
func (c *Countdown) Restart(ctx context.Context, target int64) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.target = target
	c.cancelChainLocked()
	cancel := make(chan struct{})
	c.cancel = cancel
	c.mu.Unlock()

	logging.Debug(c.logger, "countdown restarted", slog.Int64(logging.FieldNextUpdate, target))
	c.tick(ctx, gen, cancel)
}

// Stop cancels the pending tick without touching the rendered line.
func (c *Countdown) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.cancelChainLocked()
}

// Target returns the epoch second the countdown is ticking toward.
func (c *Countdown) Target() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

func (c *Countdown) tick(ctx context.Context, gen int, cancel chan struct{}) {
	if ctx.Err() != nil {
		return
	}

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return
	}

	remaining := c.target - c.clock.Now().Unix()
	text := Format(remaining)

	// The render happens under the lock so that Stop and Restart act as
	// barriers: once either returns, this chain cannot touch the sink again.
	if remaining <= 0 {
		// Chain ends; the scheduled fetch owns the next visible change.
		c.timer = nil
		c.sink.SetTimer(text)
		c.mu.Unlock()
		c.metrics.RecordCountdownTick()
		return
	}

	timer := c.clock.NewTimer(time.Second)
	c.timer = timer
	c.sink.SetTimer(text)
	c.mu.Unlock()

	c.metrics.RecordCountdownTick()

	go func() {
		select {
		case <-timer.Chan():
			c.tick(ctx, gen, cancel)
		case <-cancel:
			timeutil.StopAndDrain(timer)
		case <-ctx.Done():
			timeutil.StopAndDrain(timer)
		}
	}()
}

func (c *Countdown) cancelChainLocked() {
	if c.cancel != nil {
		close(c.cancel)
		c.cancel = nil
	}
	if c.timer != nil {
		timeutil.StopAndDrain(c.timer)
		c.timer = nil
	}
}
