package validation

import "errors"

var (
	ErrNoSources          = errors.New("validation: rule requires at least one property source")
	ErrNilSource          = errors.New("validation: property source cannot be nil")
	ErrNilPredicate       = errors.New("validation: predicate cannot be nil")
	ErrNilMessage         = errors.New("validation: message source cannot be nil")
	ErrNilComponent       = errors.New("validation: component cannot be nil")
	ErrDuplicateComponent = errors.New("validation: component already added to this context")
	ErrComponentNotFound  = errors.New("validation: component is not part of this context")
	ErrContextDisposed    = errors.New("validation: context has been disposed")
	ErrNilFormatter       = errors.New("validation: formatter cannot be nil")
	ErrNilScheduler       = errors.New("validation: scheduler cannot be nil")
	ErrEmptyTag           = errors.New("validation: validator tag expression cannot be empty")
)
