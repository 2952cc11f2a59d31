package observe

import "sync"

// Source is a named stream of property values. Observe replays the current
// value (if the property has one) to the new observer synchronously, then
// pushes every subsequent change. Implementations must deliver values in the
// order they were produced and must tolerate Unsubscribe being called from
// within an observer callback.
type Source interface {
	// Name identifies the property this source observes.
	Name() string

	// Observe registers fn for value notifications and returns a handle that
	// stops them. The value is delivered untyped so heterogeneous sources can
	// be combined; typed access lives on the concrete implementations.
	Observe(fn func(value any)) Subscription
}

// Subscription detaches an observer from its source.
type Subscription interface {
	// Unsubscribe stops notifications. It is idempotent and safe to call
	// multiple times.
	Unsubscribe()
}

type subscription struct {
	once   sync.Once
	cancel func()
}

// NewSubscription wraps a cancel function in an idempotent Subscription.
// The cancel function is invoked at most once.
func NewSubscription(cancel func()) Subscription {
	return &subscription{cancel: cancel}
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// multiSubscription releases a group of subscriptions as one unit.
type multiSubscription struct {
	once sync.Once
	subs []Subscription
}

// NewMultiSubscription bundles several subscriptions into one. Unsubscribing
// releases every member exactly once, in the order they were given.
func NewMultiSubscription(subs ...Subscription) Subscription {
	return &multiSubscription{subs: subs}
}

func (m *multiSubscription) Unsubscribe() {
	m.once.Do(func() {
		for _, sub := range m.subs {
			if sub != nil {
				sub.Unsubscribe()
			}
		}
	})
}
