package binding

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/revalid/observe"
	"github.com/dmitrymomot/revalid/validation"
)

// Sink receives the rendered validation message for display.
type Sink func(message string)

// Binding connects a validation state stream to a sink. It applies its
// formatter to the current message text and invokes the sink exactly once per
// distinct rendered value. The binding does not own the validation graph;
// Dispose only severs the wiring.
type Binding struct {
	formatter validation.Formatter
	logger    *slog.Logger
	sink      Sink
	target    string
	text      func() validation.Text

	mu       sync.Mutex
	sub      observe.Subscription
	disposed bool
	last     *string
}

// ForProperty binds the combined output of every rule in the context that
// observes the named property. The sink receives the concatenation of the
// currently-failing rules' messages for that property.
func ForProperty(ctx *validation.Context, property string, sink Sink, opts ...Option) (*Binding, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if property == "" {
		return nil, ErrEmptyProperty
	}
	if sink == nil {
		return nil, ErrNilSink
	}

	components := ctx.For(property)
	if len(components) == 0 {
		return nil, ErrNoRulesForProp
	}

	b, err := newBinding(property, sink, func() validation.Text {
		var texts []validation.Text
		for _, c := range components {
			if !c.IsValid() {
				texts = append(texts, c.Text())
			}
		}
		return validation.ConcatText(texts...)
	}, opts)
	if err != nil {
		return nil, err
	}

	subs := make([]observe.Subscription, len(components))
	for i, c := range components {
		subs[i] = c.Subscribe(func(validation.State) { b.push() })
	}
	b.attach(observe.NewMultiSubscription(subs...))
	return b, nil
}

// ForViewModel binds the context's aggregate validation state.
func ForViewModel(ctx *validation.Context, sink Sink, opts ...Option) (*Binding, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if sink == nil {
		return nil, ErrNilSink
	}

	b, err := newBinding("view-model", sink, ctx.Text, opts)
	if err != nil {
		return nil, err
	}
	b.attach(ctx.Subscribe(func(validation.State) { b.push() }))
	return b, nil
}

// ForHelper binds a previously constructed helper. The binding's own
// formatter renders the helper's component text; the helper's formatter is
// not consulted.
func ForHelper(helper *validation.Helper, sink Sink, opts ...Option) (*Binding, error) {
	if helper == nil {
		return nil, ErrNilHelper
	}
	if sink == nil {
		return nil, ErrNilSink
	}

	b, err := newBinding("helper", sink, helper.Component().Text, opts)
	if err != nil {
		return nil, err
	}
	b.attach(helper.Subscribe(func(validation.State) { b.push() }))
	return b, nil
}

func newBinding(target string, sink Sink, text func() validation.Text, opts []Option) (*Binding, error) {
	b := &Binding{
		formatter: validation.SingleLine,
		logger:    slog.New(slog.DiscardHandler),
		sink:      sink,
		target:    target,
		text:      text,
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// attach stores the upstream subscription and performs the initial push.
// Subscribing may already have pushed (activation emits synchronously); the
// duplicate filter makes the extra pass a no-op in that case.
func (b *Binding) attach(sub observe.Subscription) {
	b.mu.Lock()
	b.sub = sub
	b.mu.Unlock()
	b.push()
}

func (b *Binding) push() {
	text := b.text()
	message := b.formatter.Format(text)

	b.mu.Lock()
	if b.disposed || (b.last != nil && *b.last == message) {
		b.mu.Unlock()
		return
	}
	b.last = &message
	b.mu.Unlock()

	b.logger.Debug("validation message changed",
		slog.String("target", b.target),
		slog.String("message", message))
	b.sink(message)
}

// Dispose stops sink invocations and releases the binding's subscriptions.
// Idempotent. The underlying rules, helper or context keep running.
func (b *Binding) Dispose() {
	b.mu.Lock()
	if b.disposed {
		b.mu.Unlock()
		return
	}
	b.disposed = true
	sub := b.sub
	b.sub = nil
	b.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}
