package validation

import (
	"sync"

	"github.com/dmitrymomot/revalid/observe"
)

// Component is anything that participates in aggregate validation. Both Rule
// and Context satisfy it, so contexts can be nested.
type Component interface {
	// Subscribe registers an observer for state changes, activating the
	// component if needed. The stream carries changes only; read IsValid and
	// Text for the current snapshot.
	Subscribe(fn func(State)) observe.Subscription

	// IsValid reports the component's current validity.
	IsValid() bool

	// Text returns the component's current message text.
	Text() Text

	// Dispose permanently tears the component down. Idempotent.
	Dispose()
}

// Context is the ordered collection of validation components for one
// view-model. It aggregates validity as a logical AND and concatenates the
// message text of invalid components in insertion order. An empty context is
// valid.
//
// All recomputation runs through the context's scheduler, which defaults to
// immediate execution on the notifying goroutine. The context owns its
// components: Dispose disposes every component still held.
type Context struct {
	join      Formatter
	scheduler Scheduler

	mu         sync.Mutex
	components []Component
	subs       map[Component]observe.Subscription
	disposed   bool
	last       *State
	nextID     int
	observers  []ruleObserver
}

// NewContext creates an empty context. Options may adjust the message join
// strategy and the evaluation scheduler.
func NewContext(opts ...Option) (*Context, error) {
	c := &Context{
		join:      SingleLine,
		scheduler: Immediate,
		subs:      make(map[Component]observe.Subscription),
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustContext is like NewContext but panics if an option fails.
func MustContext(opts ...Option) *Context {
	c, err := NewContext(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Add appends a component and starts observing its state changes. Adding
// activates the component, so the aggregate reflects it immediately.
// Components are unique by identity; adding one twice is an error.
func (c *Context) Add(component Component) error {
	if component == nil {
		return ErrNilComponent
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrContextDisposed
	}
	if _, ok := c.subs[component]; ok {
		c.mu.Unlock()
		return ErrDuplicateComponent
	}
	c.components = append(c.components, component)
	// Reserve the slot before subscribing: activation emits synchronously
	// and the recompute triggered by it must already see the component.
	c.subs[component] = nil
	c.mu.Unlock()

	sub := component.Subscribe(func(State) {
		c.scheduler.Schedule(c.recompute)
	})

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		sub.Unsubscribe()
		return ErrContextDisposed
	}
	c.subs[component] = sub
	c.mu.Unlock()

	// Covers components that did not emit during subscription (already-active
	// rules, empty nested contexts). Duplicate suppression makes this cheap.
	c.scheduler.Schedule(c.recompute)
	return nil
}

// Remove stops observing the component and drops it from the collection. The
// component itself is not disposed; it simply no longer contributes to the
// aggregate.
func (c *Context) Remove(component Component) error {
	if component == nil {
		return ErrNilComponent
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return ErrContextDisposed
	}
	sub, ok := c.subs[component]
	if !ok {
		c.mu.Unlock()
		return ErrComponentNotFound
	}
	delete(c.subs, component)
	for i, held := range c.components {
		if held == component {
			c.components = append(c.components[:i], c.components[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
	c.scheduler.Schedule(c.recompute)
	return nil
}

// Components returns the held components in insertion order.
func (c *Context) Components() []Component {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Component, len(c.components))
	copy(out, c.components)
	return out
}

// For returns the components observing the named property, in insertion
// order. Only components that expose their observed property names (such as
// Rule) are considered.
func (c *Context) For(property string) []Component {
	type propertyHolder interface {
		Properties() []string
	}

	var out []Component
	for _, component := range c.Components() {
		holder, ok := component.(propertyHolder)
		if !ok {
			continue
		}
		for _, name := range holder.Properties() {
			if name == property {
				out = append(out, component)
				break
			}
		}
	}
	return out
}

// IsValid reports whether every held component is currently valid. An empty
// context is vacuously valid.
func (c *Context) IsValid() bool {
	for _, component := range c.Components() {
		if !component.IsValid() {
			return false
		}
	}
	return true
}

// Text concatenates the message text of every invalid component in insertion
// order. Informational text on valid components is not included; it stays
// visible at the component level.
func (c *Context) Text() Text {
	var texts []Text
	for _, component := range c.Components() {
		if !component.IsValid() {
			texts = append(texts, component.Text())
		}
	}
	return ConcatText(texts...)
}

// Message renders the aggregate text with the context's join strategy.
func (c *Context) Message() string {
	return c.join.Format(c.Text())
}

// Subscribe registers an observer for aggregate state changes. Consecutive
// duplicate states are suppressed.
func (c *Context) Subscribe(fn func(State)) observe.Subscription {
	if fn == nil {
		return observe.NewSubscription(nil)
	}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return observe.NewSubscription(nil)
	}
	id := c.nextID
	c.nextID++
	c.observers = append(c.observers, ruleObserver{id: id, fn: fn})
	c.mu.Unlock()

	return observe.NewSubscription(func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, o := range c.observers {
			if o.id == id {
				c.observers = append(c.observers[:i], c.observers[i+1:]...)
				break
			}
		}
	})
}

func (c *Context) recompute() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	components := make([]Component, len(c.components))
	copy(components, c.components)
	c.mu.Unlock()

	valid := true
	var texts []Text
	for _, component := range components {
		if !component.IsValid() {
			valid = false
			texts = append(texts, component.Text())
		}
	}
	state := State{Valid: valid, Text: ConcatText(texts...)}

	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	if c.last != nil && state.Equal(*c.last) {
		c.mu.Unlock()
		return
	}
	snapshot := state
	c.last = &snapshot
	observers := make([]ruleObserver, len(c.observers))
	copy(observers, c.observers)
	c.mu.Unlock()

	for _, o := range observers {
		o.fn(state)
	}
}

// Dispose tears down the context: it releases every component subscription,
// disposes every held component and drops all observers. Idempotent; after
// disposal Add and Remove fail with ErrContextDisposed.
func (c *Context) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	components := c.components
	subs := c.subs
	c.components = nil
	c.subs = nil
	c.observers = nil
	c.mu.Unlock()

	for _, sub := range subs {
		if sub != nil {
			sub.Unsubscribe()
		}
	}
	for _, component := range components {
		component.Dispose()
	}
}
