package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/revalid/observe"
)

// Shared instance: Var-based validation keeps no per-call state, so one
// validator serves all rules.
var tagValidator = validator.New(validator.WithRequiredStructEnabled())

// VarRuleFor creates a single-property rule whose predicate is a
// go-playground/validator tag expression evaluated against the current value,
// e.g. "required,email" or "min=6".
func VarRuleFor[T any](source observe.Source, tag string, message MessageSource) (*Rule, error) {
	if strings.TrimSpace(tag) == "" {
		return nil, ErrEmptyTag
	}
	return RuleFor(source, func(value T) bool {
		return tagValidator.Var(value, tag) == nil
	}, message)
}
