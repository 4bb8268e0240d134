package logger

import (
	"fmt"
	"time"
)

type defaultLogger struct {
}

func (d *defaultLogger) Parsed() Parsed {
	return d.logParsed
}

func (d *defaultLogger) Resolved() Resolved {
	return func(URL string, name string, err error) {
		fmt.Printf("[LOGGER] resolved %v: %v, err: %v \n", URL, name, err)
	}
}

func (d *defaultLogger) Instantiated() Instantiated {
	return func(name string, args string, elapsed time.Duration, err error) {
		fmt.Printf("[LOGGER] instantiating %v(%v) took %v, err: %v \n", name, args, elapsed, err)
	}
}

func (d *defaultLogger) logParsed(URL string, elapsed time.Duration, err error) {
	fmt.Printf("[LOGGER] parsing %v took %v, err: %v \n", URL, elapsed, err)
}
