package validation

import "github.com/dmitrymomot/revalid/observe"

// The typed constructors below are thin sugar over NewRule: they adapt a
// typed predicate to the N-ary tuple form. All combination, suppression and
// lifecycle behavior lives in Rule itself and is identical for every arity.

// RuleFor creates a rule over a single property source with a typed
// predicate. A value of an unexpected dynamic type evaluates as the zero
// value of T.
func RuleFor[T any](source observe.Source, predicate func(value T) bool, message MessageSource) (*Rule, error) {
	if predicate == nil {
		return nil, ErrNilPredicate
	}
	return NewRule([]observe.Source{source}, func(values []any) bool {
		v, _ := values[0].(T)
		return predicate(v)
	}, message)
}

// RuleFor2 creates a rule over two property sources with a typed predicate.
func RuleFor2[A, B any](first, second observe.Source, predicate func(a A, b B) bool, message MessageSource) (*Rule, error) {
	if predicate == nil {
		return nil, ErrNilPredicate
	}
	return NewRule([]observe.Source{first, second}, func(values []any) bool {
		a, _ := values[0].(A)
		b, _ := values[1].(B)
		return predicate(a, b)
	}, message)
}

// RuleFor3 creates a rule over three property sources with a typed predicate.
func RuleFor3[A, B, C any](first, second, third observe.Source, predicate func(a A, b B, c C) bool, message MessageSource) (*Rule, error) {
	if predicate == nil {
		return nil, ErrNilPredicate
	}
	return NewRule([]observe.Source{first, second, third}, func(values []any) bool {
		a, _ := values[0].(A)
		b, _ := values[1].(B)
		c, _ := values[2].(C)
		return predicate(a, b, c)
	}, message)
}
