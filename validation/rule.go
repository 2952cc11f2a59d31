package validation

import (
	"reflect"
	"sync"

	"github.com/dmitrymomot/revalid/observe"
)

// lifecycle models the explicit rule life cycle. A rule starts dormant, goes
// active on the first Subscribe and stays active until disposed, regardless of
// how many observers remain.
type lifecycle int

const (
	lifecycleDormant lifecycle = iota
	lifecycleActive
	lifecycleDisposed
)

// Rule combines the latest values of one or more property sources, evaluates
// a predicate over them and publishes the resulting State. Evaluation uses
// combine-latest semantics: nothing happens until every source has produced a
// value, then every change triggers a re-evaluation against the latest tuple.
// Identical consecutive tuples and identical consecutive states are both
// suppressed, so observers only see actual transitions.
//
// A rule observes its sources but does not own them; Dispose releases the
// subscriptions it created and nothing else.
type Rule struct {
	sources   []observe.Source
	predicate func(values []any) bool
	message   MessageSource

	mu         sync.Mutex
	phase      lifecycle
	upstream   observe.Subscription
	lastValues []any
	hasValues  bool
	last       *State
	nextID     int
	observers  []ruleObserver
}

type ruleObserver struct {
	id int
	fn func(State)
}

// NewRule creates a dormant rule over the given sources. The predicate
// receives the latest value of every source, ordered like sources. The
// message source decides what text accompanies each verdict.
func NewRule(sources []observe.Source, predicate func(values []any) bool, message MessageSource) (*Rule, error) {
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, src := range sources {
		if src == nil {
			return nil, ErrNilSource
		}
	}
	if predicate == nil {
		return nil, ErrNilPredicate
	}
	if message == nil {
		return nil, ErrNilMessage
	}

	owned := make([]observe.Source, len(sources))
	copy(owned, sources)

	return &Rule{
		sources:   owned,
		predicate: predicate,
		message:   message,
	}, nil
}

// MustRule is like NewRule but panics on invalid arguments, following the
// usual New/Must pairing for construction that only fails on programmer error.
func MustRule(sources []observe.Source, predicate func(values []any) bool, message MessageSource) *Rule {
	r, err := NewRule(sources, predicate, message)
	if err != nil {
		panic(err)
	}
	return r
}

// Subscribe registers an observer for state changes and activates the rule if
// this is the first subscription. Activation is idempotent: the rule connects
// to its sources once and stays connected even after every observer leaves.
// Because property sources replay their current value, the initial evaluation
// (and hence the first notification) happens synchronously during the
// activating Subscribe.
//
// Subscribing to a disposed rule returns an inert subscription.
func (r *Rule) Subscribe(fn func(State)) observe.Subscription {
	if fn == nil {
		return observe.NewSubscription(nil)
	}

	r.mu.Lock()
	if r.phase == lifecycleDisposed {
		r.mu.Unlock()
		return observe.NewSubscription(nil)
	}
	id := r.nextID
	r.nextID++
	r.observers = append(r.observers, ruleObserver{id: id, fn: fn})
	activate := r.phase == lifecycleDormant
	if activate {
		r.phase = lifecycleActive
	}
	r.mu.Unlock()

	if activate {
		// Arguments were validated at construction, so CombineLatest cannot
		// fail here. Source replay may run evaluate before this returns.
		upstream, _ := observe.CombineLatest(r.sources, r.evaluate)

		r.mu.Lock()
		if r.phase == lifecycleDisposed {
			r.mu.Unlock()
			if upstream != nil {
				upstream.Unsubscribe()
			}
		} else {
			r.upstream = upstream
			r.mu.Unlock()
		}
	}

	return observe.NewSubscription(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, o := range r.observers {
			if o.id == id {
				r.observers = append(r.observers[:i], r.observers[i+1:]...)
				break
			}
		}
	})
}

func (r *Rule) evaluate(values []any) {
	r.mu.Lock()
	if r.phase == lifecycleDisposed {
		r.mu.Unlock()
		return
	}
	if r.hasValues && reflect.DeepEqual(r.lastValues, values) {
		r.mu.Unlock()
		return
	}
	r.lastValues = values
	r.hasValues = true
	r.mu.Unlock()

	// Predicate and message run outside the lock; they are user code and may
	// read the observed properties.
	valid := r.predicate(values)
	state := State{Valid: valid, Text: r.message.Message(values, valid)}

	r.mu.Lock()
	if r.phase == lifecycleDisposed {
		r.mu.Unlock()
		return
	}
	if r.last != nil && state.Equal(*r.last) {
		r.mu.Unlock()
		return
	}
	snapshot := state
	r.last = &snapshot
	observers := make([]ruleObserver, len(r.observers))
	copy(observers, r.observers)
	r.mu.Unlock()

	for _, o := range observers {
		o.fn(state)
	}
}

// IsValid reports the last evaluated verdict. A rule that has never been
// evaluated (dormant, or active but with sources that have not all produced a
// value yet) reports true.
func (r *Rule) IsValid() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return true
	}
	return r.last.Valid
}

// Text returns the message text of the last evaluated state.
func (r *Rule) Text() Text {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.last == nil {
		return EmptyText
	}
	return r.last.Text
}

// LastValues returns a copy of the most recent complete tuple of property
// values and whether one has been observed yet. The tuple is recorded on
// every upstream emission once the rule is active, even when the resulting
// state did not change.
func (r *Rule) LastValues() ([]any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.hasValues {
		return nil, false
	}
	out := make([]any, len(r.lastValues))
	copy(out, r.lastValues)
	return out, true
}

// Properties returns the names of the observed property sources in order.
func (r *Rule) Properties() []string {
	names := make([]string, len(r.sources))
	for i, src := range r.sources {
		names[i] = src.Name()
	}
	return names
}

// Dispose releases the rule's source subscriptions and drops its observers.
// It is idempotent; after the first call the rule emits nothing further.
func (r *Rule) Dispose() {
	r.mu.Lock()
	if r.phase == lifecycleDisposed {
		r.mu.Unlock()
		return
	}
	r.phase = lifecycleDisposed
	upstream := r.upstream
	r.upstream = nil
	r.observers = nil
	r.mu.Unlock()

	if upstream != nil {
		upstream.Unsubscribe()
	}
}
