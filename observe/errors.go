package observe

import "errors"

var (
	ErrNoSources = errors.New("observe: combine requires at least one source")
	ErrNilSource = errors.New("observe: source cannot be nil")
	ErrNilFunc   = errors.New("observe: callback cannot be nil")
)
