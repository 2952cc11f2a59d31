package observe

import "sync"

// CombineLatest observes every source and invokes fn with the latest value of
// each whenever any of them changes, starting once every source has produced
// at least one value. The slice passed to fn is a fresh copy ordered like
// sources; fn may retain it.
//
// fn runs synchronously on the goroutine that delivered the triggering change.
// Because sources replay their current value on subscription, fn may fire
// before CombineLatest returns. The returned subscription releases all
// underlying subscriptions exactly once.
func CombineLatest(sources []Source, fn func(values []any)) (Subscription, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	if fn == nil {
		return nil, ErrNilFunc
	}
	for _, src := range sources {
		if src == nil {
			return nil, ErrNilSource
		}
	}

	c := &combiner{
		latest:  make([]any, len(sources)),
		seen:    make([]bool, len(sources)),
		pending: len(sources),
		fn:      fn,
	}

	subs := make([]Subscription, len(sources))
	for i, src := range sources {
		subs[i] = src.Observe(c.slot(i))
	}

	return NewMultiSubscription(subs...), nil
}

type combiner struct {
	mu      sync.Mutex
	latest  []any
	seen    []bool
	pending int
	fn      func([]any)
}

func (c *combiner) slot(i int) func(any) {
	return func(value any) {
		c.mu.Lock()
		c.latest[i] = value
		if !c.seen[i] {
			c.seen[i] = true
			c.pending--
		}
		if c.pending > 0 {
			c.mu.Unlock()
			return
		}
		values := make([]any, len(c.latest))
		copy(values, c.latest)
		c.mu.Unlock()

		c.fn(values)
	}
}
