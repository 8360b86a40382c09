package timeutil

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// ClockLayout is the wall-clock format used on render surfaces.
const ClockLayout = "15:04:05"

// FromMillis converts epoch milliseconds to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// Millis converts a time to epoch milliseconds.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromSeconds converts epoch seconds to a UTC time.
func FromSeconds(s int64) time.Time {
	return time.Unix(s, 0).UTC()
}

// FormatClock renders a time as HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// StopAndDrain stops a timer and drains its channel if the timer already
// fired, so a stale tick cannot leak into a later wait.
func StopAndDrain(t clockwork.Timer) {
	if t == nil {
		return
	}
	if !t.Stop() {
		select {
		case <-t.Chan():
		default:
		}
	}
}
