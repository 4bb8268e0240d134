package logger

import (
	"time"
)

type Parsed func(URL string, elapsed time.Duration, err error)
type Resolved func(URL string, name string, err error)
type Instantiated func(name string, args string, elapsed time.Duration, err error)

// Logger provides optional resolver lifecycle callbacks, nil callback disables an event
type Logger interface {
	Parsed() Parsed
	Resolved() Resolved
	Instantiated() Instantiated
}
