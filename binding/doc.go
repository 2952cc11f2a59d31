// Package binding wires validation output into a view. A binding subscribes
// to a rule set's state changes, renders the message text with a formatter
// and pushes the result into a sink callback, once per distinct value.
//
// Three entry points cover the usual cases:
//
//	// every rule observing one named property
//	b, err := binding.ForProperty(ctx, "Name", func(msg string) {
//		nameError.SetText(msg)
//	})
//
//	// the whole view-model aggregate
//	b, err := binding.ForViewModel(ctx, func(msg string) {
//		errorBanner.SetText(msg)
//	})
//
//	// a previously built helper
//	b, err := binding.ForHelper(helper, sink)
//
// The sink is invoked synchronously on the goroutine delivering the property
// change, and once at construction with the current value so the view starts
// in the right state.
//
// A binding owns only the wiring: disposing it stops sink invocations but
// leaves the underlying rules and context running.
package binding
