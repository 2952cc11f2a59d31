package validation

import "strings"

// Text is an immutable ordered sequence of non-empty message lines. An empty
// Text means there is nothing to display. Combining texts preserves order,
// which is what drives insertion-ordered message concatenation in Context.
type Text struct {
	lines []string
}

// EmptyText is the zero Text, representing "no message".
var EmptyText = Text{}

// NewText builds a Text from the given lines. Empty lines are dropped so a
// Text never carries blank entries.
func NewText(lines ...string) Text {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			out = append(out, line)
		}
	}
	if len(out) == 0 {
		return EmptyText
	}
	return Text{lines: out}
}

// ConcatText appends the given texts in order.
func ConcatText(texts ...Text) Text {
	var out []string
	for _, t := range texts {
		out = append(out, t.lines...)
	}
	return Text{lines: out}
}

// Lines returns a copy of the message lines.
func (t Text) Lines() []string {
	if len(t.lines) == 0 {
		return nil
	}
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// IsEmpty reports whether the text carries no message.
func (t Text) IsEmpty() bool {
	return len(t.lines) == 0
}

// Len returns the number of message lines.
func (t Text) Len() int {
	return len(t.lines)
}

// Join renders the lines as a single string, trimming each line and skipping
// lines that are blank after trimming.
func (t Text) Join(sep string) string {
	parts := make([]string, 0, len(t.lines))
	for _, line := range t.lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, sep)
}

// String renders the text with the default single-space separator.
func (t Text) String() string {
	return t.Join(" ")
}

// Equal reports whether both texts carry the same lines in the same order.
func (t Text) Equal(other Text) bool {
	if len(t.lines) != len(other.lines) {
		return false
	}
	for i, line := range t.lines {
		if line != other.lines[i] {
			return false
		}
	}
	return true
}
