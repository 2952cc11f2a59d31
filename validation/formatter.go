package validation

import "strings"

// Formatter renders a Text into the single string a sink can display.
// Formatters must be pure: same Text in, same string out, no reordering.
type Formatter interface {
	Format(text Text) string
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc func(text Text) string

func (f FormatterFunc) Format(text Text) string {
	return f(text)
}

// JoinFormatter concatenates all message lines with the given separator,
// trimming each line. An all-empty input renders as "".
func JoinFormatter(sep string) Formatter {
	return FormatterFunc(func(text Text) string {
		return text.Join(sep)
	})
}

// SingleLine is the default formatter: trimmed lines joined with one space.
var SingleLine = JoinFormatter(" ")

// MultiLine joins the message lines with newlines.
var MultiLine = JoinFormatter("\n")

// FirstError renders only the first message line that is non-empty after
// trimming.
var FirstError Formatter = FormatterFunc(func(text Text) string {
	for _, line := range text.Lines() {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
})
