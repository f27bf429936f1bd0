package stopwatch

import "time"

// Kind identifies the timer operation that produced a Mark.
type Kind int

const (
	KindStart Kind = iota
	KindStop
	KindSplit
	KindLap
)

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindStop:
		return "stop"
	case KindSplit:
		return "split"
	case KindLap:
		return "lap"
	default:
		return "unknown"
	}
}

// Mark is a structured form of a reported duration. For KindStop
// Duration is the finish time, for KindSplit the split time and for
// KindLap the lap time. At is the recorded point.
type Mark struct {
	Timer    string
	Kind     Kind
	Title    string
	Duration time.Duration
	At       time.Time
}

// Recorder receives marks of Stop, Split and Lap operations, after the
// message was emitted and the callback invoked. It allows to collect
// durations without parsing messages.
type Recorder interface {
	Record(m Mark)
}

type RecorderFunc func(m Mark)

func (f RecorderFunc) Record(m Mark) {
	f(m)
}
