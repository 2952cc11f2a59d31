package binding

import (
	"log/slog"

	"github.com/dmitrymomot/revalid/validation"
)

// Option configures a Binding during construction.
type Option func(*Binding) error

// WithFormatter sets the formatter used to render message text. The default
// joins trimmed messages with a single space.
func WithFormatter(f validation.Formatter) Option {
	return func(b *Binding) error {
		if f == nil {
			return ErrNilFormatter
		}
		b.formatter = f
		return nil
	}
}

// WithLogger enables debug logging of sink updates. Bindings are silent by
// default.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Binding) error {
		if logger == nil {
			return ErrNilLogger
		}
		b.logger = logger
		return nil
	}
}
