package validation

import "github.com/dmitrymomot/revalid/observe"

// Helper is a bindable snapshot wrapper over a single component, exposing the
// two values a view usually wants: the validity flag and a formatted message.
// It works identically over a single Rule or a whole Context.
type Helper struct {
	component Component
	formatter Formatter
}

// HelperOption configures a Helper during construction.
type HelperOption func(*Helper) error

// WithHelperFormatter overrides the formatter used by Message. The default is
// the single-space join.
func WithHelperFormatter(f Formatter) HelperOption {
	return func(h *Helper) error {
		if f == nil {
			return ErrNilFormatter
		}
		h.formatter = f
		return nil
	}
}

// NewHelper wraps a rule or context.
func NewHelper(component Component, opts ...HelperOption) (*Helper, error) {
	if component == nil {
		return nil, ErrNilComponent
	}
	h := &Helper{component: component, formatter: SingleLine}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// MustHelper is like NewHelper but panics on invalid arguments.
func MustHelper(component Component, opts ...HelperOption) *Helper {
	h, err := NewHelper(component, opts...)
	if err != nil {
		panic(err)
	}
	return h
}

// IsValid reports the wrapped component's current validity.
func (h *Helper) IsValid() bool {
	return h.component.IsValid()
}

// Message renders the wrapped component's current text.
func (h *Helper) Message() string {
	return h.formatter.Format(h.component.Text())
}

// Component returns the wrapped component.
func (h *Helper) Component() Component {
	return h.component
}

// Subscribe forwards to the wrapped component's change stream.
func (h *Helper) Subscribe(fn func(State)) observe.Subscription {
	return h.component.Subscribe(fn)
}
