package validation

// State is the outcome of one validation evaluation. Valid and Text are
// deliberately decoupled: a valid state may still carry informational text
// when the message source chooses to produce it.
type State struct {
	Valid bool
	Text  Text
}

// Equal reports whether two states compare equal: same validity flag and same
// message content. Used for duplicate-emission suppression throughout the
// package.
func (s State) Equal(other State) bool {
	return s.Valid == other.Valid && s.Text.Equal(other.Text)
}
