// Package logrussink routes stopwatch messages through a logrus
// logger.
package logrussink

import (
	log "github.com/sirupsen/logrus"

	"github.com/wrr/stopwatch"
)

// Logger is satisfied by both *logrus.Logger and *logrus.Entry, so
// messages can carry fields attached with WithField.
type Logger interface {
	Log(level log.Level, args ...interface{})
}

type sink struct {
	logger Logger
	level  log.Level
}

func (s *sink) Emit(msg string) error {
	s.logger.Log(s.level, msg)
	return nil
}

// New returns a sink that logs messages with the given level.
func New(logger Logger, level log.Level) stopwatch.Sink {
	return &sink{
		logger: logger,
		level:  level,
	}
}
