package logger

import (
	"time"
)

// TimeLogger logs only parsing and instantiation slower than threshold
type TimeLogger struct {
	threshold     time.Duration
	defaultLogger defaultLogger
}

func NewTimeLogger(threshold time.Duration) *TimeLogger {
	return &TimeLogger{threshold: threshold}
}

func (t *TimeLogger) Parsed() Parsed {
	return func(URL string, elapsed time.Duration, err error) {
		if elapsed < t.threshold {
			return
		}
		t.defaultLogger.logParsed(URL, elapsed, err)
	}
}

func (t *TimeLogger) Resolved() Resolved {
	return nil
}

func (t *TimeLogger) Instantiated() Instantiated {
	return func(name string, args string, elapsed time.Duration, err error) {
		if elapsed < t.threshold {
			return
		}
		t.defaultLogger.Instantiated()(name, args, elapsed, err)
	}
}
