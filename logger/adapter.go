package logger

import (
	"os"
	"time"
)

// DebugEnv enables default logger when set
const DebugEnv = "RESOLVER_DEBUG"

type Adapter struct {
	parsed       Parsed
	resolved     Resolved
	instantiated Instantiated
}

func (l *Adapter) Parsed(URL string, elapsed time.Duration, err error) {
	if l == nil || l.parsed == nil {
		return
	}
	l.parsed(URL, elapsed, err)
}

func (l *Adapter) Resolved(URL string, name string, err error) {
	if l == nil || l.resolved == nil {
		return
	}
	l.resolved(URL, name, err)
}

func (l *Adapter) Instantiated(name string, args string, elapsed time.Duration, err error) {
	if l == nil || l.instantiated == nil {
		return
	}
	l.instantiated(name, args, elapsed, err)
}

func NewLogger(logger Logger) *Adapter {
	if logger == nil {
		return &Adapter{}
	}
	return &Adapter{
		parsed:       logger.Parsed(),
		resolved:     logger.Resolved(),
		instantiated: logger.Instantiated(),
	}
}

func Default() *Adapter {
	if os.Getenv(DebugEnv) == "" {
		return NewLogger(nil)
	}
	return NewLogger(&defaultLogger{})
}
