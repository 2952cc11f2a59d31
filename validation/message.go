package validation

// MessageSource produces the message text for one evaluation. It receives the
// latest property values (ordered like the rule's sources) together with the
// predicate's verdict, so implementations can emit text even for valid states.
type MessageSource interface {
	Message(values []any, valid bool) Text
}

type messageFunc func(values []any, valid bool) Text

func (f messageFunc) Message(values []any, valid bool) Text {
	return f(values, valid)
}

// StaticMessage shows a fixed message while the rule is invalid and nothing
// while it is valid.
func StaticMessage(message string) MessageSource {
	return messageFunc(func(_ []any, valid bool) Text {
		if valid {
			return EmptyText
		}
		return NewText(message)
	})
}

// MessageFunc derives the message from the current property values; the
// message is shown only while the rule is invalid.
func MessageFunc(fn func(values []any) string) MessageSource {
	if fn == nil {
		return nil
	}
	return messageFunc(func(values []any, valid bool) Text {
		if valid {
			return EmptyText
		}
		return NewText(fn(values))
	})
}

// StateMessageFunc derives the message from the values and the verdict. The
// returned string is shown regardless of validity, which allows informational
// text on valid states.
func StateMessageFunc(fn func(values []any, valid bool) string) MessageSource {
	if fn == nil {
		return nil
	}
	return messageFunc(func(values []any, valid bool) Text {
		return NewText(fn(values, valid))
	})
}

// TextFunc is the most general message source: full control over the
// resulting Text.
func TextFunc(fn func(values []any, valid bool) Text) MessageSource {
	if fn == nil {
		return nil
	}
	return messageFunc(fn)
}
