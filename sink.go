package stopwatch

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Sink is an output channel for timer messages. A Timer never closes
// its sink, the caller owns it.
type Sink interface {
	Emit(msg string) error
}

// SinkFunc allows to use an ordinary function as a Sink.
type SinkFunc func(msg string) error

func (f SinkFunc) Emit(msg string) error {
	return f(msg)
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Emit(msg string) error {
	_, err := io.WriteString(s.w, msg+"\n")
	return err
}

// WriterSink writes each message followed by a newline to w. Write
// errors are returned to the timer operation that emitted the message.
func WriterSink(w io.Writer) Sink {
	return writerSink{w: w}
}

// Stdout returns the default sink, which prints messages to the
// standard output.
func Stdout() Sink {
	return WriterSink(os.Stdout)
}

type slogSink struct {
	log   *slog.Logger
	level slog.Level
}

func (s slogSink) Emit(msg string) error {
	s.log.Log(context.Background(), s.level, msg)
	return nil
}

// SlogSink outputs messages as log records with the given level.
func SlogSink(log *slog.Logger, level slog.Level) Sink {
	return slogSink{log: log, level: level}
}

type discardSink struct{}

func (discardSink) Emit(string) error {
	return nil
}

// Discard drops all messages.
var Discard Sink = discardSink{}
