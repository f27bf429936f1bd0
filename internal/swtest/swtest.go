// Package swtest provides fakes for testing code that uses
// stopwatches: a manually advanced clock, a sink that keeps emitted
// messages and a callback that counts its invocations.
package swtest

import (
	"time"
)

// Epoch is the time at which a new Clock starts.
var Epoch = time.Unix(1557406243, 0)

// Clock is a manually advanced clock.
type Clock struct {
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: Epoch}
}

func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward. A negative duration is ignored,
// stopwatches assume the clock never goes back.
func (c *Clock) Advance(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}

// Sink keeps all emitted messages. If Err is set, Emit returns it
// without storing the message.
type Sink struct {
	Messages []string
	Err      error
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Emit(msg string) error {
	if s.Err != nil {
		return s.Err
	}
	s.Messages = append(s.Messages, msg)
	return nil
}

// Last returns the most recently emitted message, or an empty string
// when nothing was emitted.
func (s *Sink) Last() string {
	if len(s.Messages) == 0 {
		return ""
	}
	return s.Messages[len(s.Messages)-1]
}

// Callback records messages it was invoked with.
type Callback struct {
	Calls []string
}

func (c *Callback) Func() func(string) {
	return func(msg string) {
		c.Calls = append(c.Calls, msg)
	}
}
