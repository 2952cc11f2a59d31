package catalog

import "github.com/dmitrymomot/revalid/validation"

// RuleMessage adapts a catalog entry to a validation message source. The
// message resolves on every evaluation, so templates loaded later are picked
// up by the next state change. args derives template parameters from the
// current property values; it may be nil when the template has no
// placeholders. The message is shown only while the rule is invalid.
func RuleMessage(cat *Catalog, locale, key string, args func(values []any) map[string]any) (validation.MessageSource, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if key == "" {
		return nil, ErrEmptyKey
	}

	return validation.MessageFunc(func(values []any) string {
		var params map[string]any
		if args != nil {
			params = args(values)
		}
		return cat.Message(locale, key, params)
	}), nil
}
