package observe

import (
	"reflect"
	"sync"
)

// Property is an in-memory observable value of type T. It implements Source
// and serves both as the test double for host-framework properties and as a
// ready-made property for plain view-models.
//
// All methods are safe for concurrent use, but the intended model is
// single-threaded dispatch: observers run synchronously on the goroutine that
// calls Set, in registration order, outside the internal lock.
type Property[T any] struct {
	name string

	mu       sync.Mutex
	value    T
	hasValue bool
	nextID   int
	entries  []propertyEntry[T]
}

type propertyEntry[T any] struct {
	id int
	fn func(T)
}

// NewProperty creates a property with no current value. Observers receive
// nothing until the first Set.
func NewProperty[T any](name string) *Property[T] {
	return &Property[T]{name: name}
}

// NewPropertyValue creates a property holding an initial value, which is
// replayed to every new observer.
func NewPropertyValue[T any](name string, initial T) *Property[T] {
	return &Property[T]{name: name, value: initial, hasValue: true}
}

// Name returns the property name given at construction.
func (p *Property[T]) Name() string {
	return p.name
}

// Get returns the current value and whether one has been set.
func (p *Property[T]) Get() (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.hasValue
}

// Set updates the value and notifies observers in registration order.
// Setting a value equal to the current one is a no-op.
func (p *Property[T]) Set(value T) {
	p.mu.Lock()
	if p.hasValue && reflect.DeepEqual(p.value, value) {
		p.mu.Unlock()
		return
	}
	p.value = value
	p.hasValue = true
	// Snapshot so observers can unsubscribe (or subscribe) from within
	// their callback without corrupting the iteration.
	entries := make([]propertyEntry[T], len(p.entries))
	copy(entries, p.entries)
	p.mu.Unlock()

	for _, e := range entries {
		e.fn(value)
	}
}

// Subscribe registers a typed observer. If the property already has a value it
// is delivered synchronously before Subscribe returns.
func (p *Property[T]) Subscribe(fn func(T)) Subscription {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.entries = append(p.entries, propertyEntry[T]{id: id, fn: fn})
	value, hasValue := p.value, p.hasValue
	p.mu.Unlock()

	if hasValue {
		fn(value)
	}

	return NewSubscription(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		for i, e := range p.entries {
			if e.id == id {
				p.entries = append(p.entries[:i], p.entries[i+1:]...)
				break
			}
		}
	})
}

// Observe implements Source by adapting the typed stream to an untyped one.
func (p *Property[T]) Observe(fn func(any)) Subscription {
	return p.Subscribe(func(v T) { fn(v) })
}

// Observers reports the number of active subscriptions. Intended for leak
// detection in tests: after a rule or binding is disposed this must drop back
// to its prior value.
func (p *Property[T]) Observers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
