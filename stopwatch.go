// Copyright (C) 2025 Jan Wrobel <jan@wwwhisper.io>
// This program is freely distributable under the terms of the
// Simplified BSD License. See COPYING.

// Package stopwatch records timestamps at chosen points of a program
// and reports elapsed, split and lap durations as human readable
// messages.
//
// A Timer starts when it is created:
//
//	t, err := stopwatch.New(stopwatch.WithName("import"))
//	...
//	t.Split("parsed", nil)  // [import] [parsed] split time:  0.20 sec.
//	t.Lap("stored", nil)    // [import] [stored] lap time:    0.10 sec.
//	t.Stop("", nil)         // [import] finish time: 0.30 sec.
//
// A Timer is not safe for concurrent use.
package stopwatch

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wrr/stopwatch/internal/timer"
)

const defaultDigits = 2

var ErrInvalidDigits = errors.New("number of fractional digits must not be negative")

// Clock is a source of the current time, time.Now by default.
type Clock = timer.Clock

// Callback receives every message that an operation emits, after the
// message was passed to the sink.
type Callback func(msg string)

type Timer struct {
	name     string
	sink     Sink
	digits   int
	callback Callback
	clock    Clock
	recorder Recorder

	started   time.Time
	// Points recorded by Stop, Split and Lap, in call order. The epoch
	// (started) is kept separately and is not part of marks.
	marks     []time.Time
	stoppedAt time.Time
	stopped   bool
	elapsed   time.Duration
}

type Option func(*Timer)

// WithName sets the name that tags every emitted message. Defaults to
// timer-<creation time in Unix seconds>.
func WithName(name string) Option {
	return func(t *Timer) {
		t.name = name
	}
}

// WithSink sets where messages are emitted. Defaults to stdout, also
// when sink is nil.
func WithSink(sink Sink) Option {
	return func(t *Timer) {
		t.sink = sink
	}
}

// WithLogger emits messages through the logger at the given level
// instead of stdout.
func WithLogger(log *slog.Logger, level slog.Level) Option {
	return WithSink(SlogSink(log, level))
}

// WithDigits sets the number of fractional digits of reported
// durations. Defaults to 2.
func WithDigits(digits int) Option {
	return func(t *Timer) {
		t.digits = digits
	}
}

// WithCallback sets a callback invoked by Stop and Close when they are
// not given a callback of their own.
func WithCallback(cb Callback) Option {
	return func(t *Timer) {
		t.callback = cb
	}
}

func WithClock(clock Clock) Option {
	return func(t *Timer) {
		t.clock = clock
	}
}

// WithRecorder sets a recorder which is given every mark produced by
// Stop, Split and Lap.
func WithRecorder(r Recorder) Option {
	return func(t *Timer) {
		t.recorder = r
	}
}

// New creates a started timer and emits the "[<name>] started."
// message. The stored callback is not invoked for this message.
func New(opts ...Option) (*Timer, error) {
	t := &Timer{
		digits: defaultDigits,
		clock:  timer.System,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.digits < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDigits, t.digits)
	}
	if t.sink == nil {
		t.sink = Stdout()
	}
	if t.clock == nil {
		t.clock = timer.System
	}

	t.started = t.clock.Now()
	if t.name == "" {
		t.name = "timer-" + timer.UnixSeconds(t.started)
	}
	if err := t.sink.Emit(t.message("", "started.")); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Timer) Name() string {
	return t.name
}

// StartedAt returns the start of the current measurement, set by New
// and reset by Start.
func (t *Timer) StartedAt() time.Time {
	return t.started
}

// StoppedAt returns the time of the most recent Stop. The second value
// is false if the timer was never stopped.
func (t *Timer) StoppedAt() (time.Time, bool) {
	return t.stoppedAt, t.stopped
}

// Elapsed returns the duration computed by the most recent Stop. The
// second value is false if the timer was never stopped.
func (t *Timer) Elapsed() (time.Duration, bool) {
	return t.elapsed, t.stopped
}

// Times returns the start of the current measurement followed by all
// the points recorded by Stop, Split and Lap. The returned slice is
// never empty.
func (t *Timer) Times() []time.Time {
	times := make([]time.Time, 0, len(t.marks)+1)
	times = append(times, t.started)
	return append(times, t.marks...)
}

// Start resets the start of the measurement to now. Points recorded
// before are kept. Only cb is invoked, never the stored callback.
func (t *Timer) Start(title string, cb Callback) error {
	t.started = t.clock.Now()
	return t.emit(t.message(title, "started."), cb)
}

// Stop records now and reports the time elapsed since the start of the
// measurement. cb, or the stored callback if cb is nil, is invoked
// with the message. The timer can still be used after Stop.
func (t *Timer) Stop(title string, cb Callback) error {
	now := t.mark()
	t.stoppedAt = now
	t.stopped = true
	t.elapsed = now.Sub(t.started)

	msg := t.message(title, "finish time: "+t.seconds(t.elapsed)+" sec.")
	if cb == nil {
		cb = t.callback
	}
	if err := t.emit(msg, cb); err != nil {
		return err
	}
	t.record(KindStop, title, t.elapsed, now)
	return nil
}

// Split records now and reports the time since the start of the
// measurement. Consecutive splits are cumulative.
func (t *Timer) Split(title string, cb Callback) error {
	now := t.mark()
	d := now.Sub(t.started)
	if err := t.emit(t.message(title, "split time:  "+t.seconds(d)+" sec."), cb); err != nil {
		return err
	}
	t.record(KindSplit, title, d, now)
	return nil
}

// Lap records now and reports the time since the previously recorded
// point, or since the start of the measurement if no point was
// recorded yet.
func (t *Timer) Lap(title string, cb Callback) error {
	prev := t.started
	if len(t.marks) > 0 {
		prev = t.marks[len(t.marks)-1]
	}
	now := t.mark()
	d := now.Sub(prev)
	if err := t.emit(t.message(title, "lap time:    "+t.seconds(d)+" sec."), cb); err != nil {
		return err
	}
	t.record(KindLap, title, d, now)
	return nil
}

// Close stops the timer without a title, invoking the stored
// callback. It allows to measure a scope with:
//
//	defer t.Close()
func (t *Timer) Close() error {
	return t.Stop("", nil)
}

// Measure creates a timer with the given options and passes it to fn.
// The timer is closed when fn returns or panics, so the finish message
// is always emitted exactly once. Errors returned by fn and by Close
// are joined.
func Measure(fn func(t *Timer) error, opts ...Option) (err error) {
	t, err := New(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := t.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()
	return fn(t)
}

func (t *Timer) mark() time.Time {
	now := t.clock.Now()
	t.marks = append(t.marks, now)
	return now
}

func (t *Timer) message(title string, body string) string {
	if title == "" {
		return "[" + t.name + "] " + body
	}
	return "[" + t.name + "] [" + title + "] " + body
}

func (t *Timer) seconds(d time.Duration) string {
	return timer.Seconds(d, t.digits)
}

func (t *Timer) emit(msg string, cb Callback) error {
	if err := t.sink.Emit(msg); err != nil {
		return err
	}
	if cb != nil {
		cb(msg)
	}
	return nil
}

func (t *Timer) record(kind Kind, title string, d time.Duration, at time.Time) {
	if t.recorder == nil {
		return
	}
	t.recorder.Record(Mark{
		Timer:    t.name,
		Kind:     kind,
		Title:    title,
		Duration: d,
		At:       at,
	})
}
