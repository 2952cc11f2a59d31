package binding

import "errors"

var (
	ErrNilContext     = errors.New("binding: context cannot be nil")
	ErrNilHelper      = errors.New("binding: helper cannot be nil")
	ErrNilSink        = errors.New("binding: sink cannot be nil")
	ErrEmptyProperty  = errors.New("binding: property name cannot be empty")
	ErrNoRulesForProp = errors.New("binding: no rules observe the given property")
	ErrNilFormatter   = errors.New("binding: formatter cannot be nil")
	ErrNilLogger      = errors.New("binding: logger cannot be nil")
)
