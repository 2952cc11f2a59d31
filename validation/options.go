package validation

// Scheduler decides where aggregate recomputation runs. The library never
// introduces threads of its own: the default scheduler executes work
// immediately on the notifying goroutine. Hosts whose property notifications
// arrive from multiple threads can inject a scheduler that marshals work onto
// their dispatch queue; tests can inject one that records or defers work.
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a plain function to the Scheduler interface.
type SchedulerFunc func(fn func())

func (s SchedulerFunc) Schedule(fn func()) {
	s(fn)
}

// Immediate runs scheduled work synchronously on the calling goroutine.
var Immediate Scheduler = SchedulerFunc(func(fn func()) { fn() })

// Option configures a Context during construction.
type Option func(*Context) error

// WithJoin sets the formatter used by Message to render the aggregate text.
// The default joins trimmed messages with a single space.
func WithJoin(f Formatter) Option {
	return func(c *Context) error {
		if f == nil {
			return ErrNilFormatter
		}
		c.join = f
		return nil
	}
}

// WithScheduler sets the scheduler used for aggregate recomputation.
func WithScheduler(s Scheduler) Option {
	return func(c *Context) error {
		if s == nil {
			return ErrNilScheduler
		}
		c.scheduler = s
		return nil
	}
}
