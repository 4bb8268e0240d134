package logger

import (
	"strings"
	"time"

	"github.com/viant/gmetric"
	"github.com/viant/gmetric/counter"
	"github.com/viant/gmetric/provider"
)

type Event string

const (
	Error   Event = "Error"
	Success Event = "Success"
)

type Counter interface {
	Begin(started time.Time) counter.OnDone
	DecrementValue(value interface{}) int64
	IncrementValue(value interface{}) int64
}

func NewCounter(counter Counter) *CounterAdapter {
	return &CounterAdapter{
		counter: counter,
	}
}

// NewOperationCounter returns adapter over a named service operation, registering it on first use
func NewOperationCounter(service *gmetric.Service, pkg string, name string) *CounterAdapter {
	if service == nil {
		return NewCounter(nil)
	}
	name = strings.ReplaceAll(name, "/", ".")
	var aCounter Counter
	if cnt := service.LookupOperation(name); cnt != nil {
		aCounter = cnt
	} else {
		aCounter = service.MultiOperationCounter(pkg, name, name+" performance", time.Millisecond, time.Minute, 2, provider.NewBasic())
	}
	return NewCounter(aCounter)
}

type CounterAdapter struct {
	counter Counter
}

func (c *CounterAdapter) Begin(started time.Time) counter.OnDone {
	if c == nil || c.counter == nil {
		return nopOnDone
	}
	return c.counter.Begin(started)
}

func (c *CounterAdapter) DecrementValue(value interface{}) int64 {
	if c == nil || c.counter == nil {
		return 0
	}
	return c.counter.DecrementValue(value)
}

func (c *CounterAdapter) IncrementValue(value interface{}) int64 {
	if c == nil || c.counter == nil {
		return 0
	}
	return c.counter.IncrementValue(value)
}

// Done increments outcome event and completes operation
func (c *CounterAdapter) Done(onDone counter.OnDone, err error) {
	if err != nil {
		c.IncrementValue(Error)
	} else {
		c.IncrementValue(Success)
	}
	onDone(time.Now())
}

func nopOnDone(_ time.Time, _ ...interface{}) int64 {
	return 0
}
