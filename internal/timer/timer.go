// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

// Package timer provides the clock abstraction used by stopwatches,
// an idle-expiry deadline and duration formatting.
package timer

import (
	"strconv"
	"time"
)

// Clock is a source of the current time. Implementations must not
// regress: durations computed from two readings are assumed to be
// non-negative.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System reads the host clock. Returned values carry the monotonic
// clock reading, so differences between them are not affected by wall
// clock adjustments.
var System Clock = systemClock{}

// Expiry tracks when the specific time duration has elapsed.
type Expiry struct {
	clock    Clock
	duration time.Duration
	started  time.Time
}

// Expired returns true if the duration has elapsed since the expiry
// was started. Not started expiry is always expired.
func (e *Expiry) Expired() bool {
	if e.started.IsZero() {
		return true
	}
	return e.clock.Now().Sub(e.started) > e.duration
}

// Start sets the expiry start time to the current time.
func (e *Expiry) Start() {
	e.started = e.clock.Now()
}

// NewExpiry creates and returns an expiry with the specified duration.
// Note that the expiry is not started automatically.
func NewExpiry(clock Clock, duration time.Duration) *Expiry {
	return &Expiry{
		clock:    clock,
		duration: duration,
	}
}

// Seconds formats the duration as seconds with the given number of
// fractional digits, for example 1.00 for one second and two digits.
func Seconds(duration time.Duration, digits int) string {
	return strconv.FormatFloat(duration.Seconds(), 'f', digits, 64)
}

// UnixSeconds formats the time as fractional seconds since the Unix
// epoch, using as many digits as needed to represent it.
func UnixSeconds(t time.Time) string {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return strconv.FormatFloat(secs, 'f', -1, 64)
}
