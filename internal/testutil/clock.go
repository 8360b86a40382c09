package testutil

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ClockAt returns a fake clock pinned to the provided epoch second.
func ClockAt(unixSec int64) *clockwork.FakeClock {
	return clockwork.NewFakeClockAt(time.Unix(unixSec, 0).UTC())
}
