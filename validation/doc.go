// Package validation implements reactive validation for view-models: rules
// observe one or more properties, evaluate a predicate against their latest
// values and publish a (valid, message) state; a context aggregates any
// number of rules into one overall verdict.
//
// # Rules
//
// A rule combines its property sources with combine-latest semantics and
// suppresses consecutive duplicate tuples and duplicate states, so observers
// only ever see real transitions. Rules are lazy: construction keeps them
// dormant, the first Subscribe connects them to their sources, and they stay
// connected until Dispose.
//
//	name := observe.NewPropertyValue("Name", "")
//
//	rule, err := validation.RuleFor(name,
//		func(v string) bool { return v != "" },
//		validation.StaticMessage("Name is required."),
//	)
//
// Cross-property rules work the same way over several sources:
//
//	same, err := validation.RuleFor2(password, confirm,
//		func(a, b string) bool { return a == b },
//		validation.StaticMessage("Both inputs should be the same"),
//	)
//
// Tag-based predicates reuse go-playground/validator expressions:
//
//	email, err := validation.VarRuleFor[string](emailProp, "required,email",
//		validation.StaticMessage("A valid email is required."))
//
// # Message sources
//
// StaticMessage and MessageFunc show text only while invalid. StateMessageFunc
// and TextFunc receive the verdict and may emit informational text even for
// valid states; whether such text is displayed is up to the formatter and the
// consumer, the aggregate never treats it as an error.
//
// # Contexts
//
// A Context holds components (rules or nested contexts) in insertion order.
// Its validity is the logical AND over all components, vacuously true when
// empty; its message is the insertion-ordered concatenation of the invalid
// components' text.
//
//	ctx := validation.MustContext()
//	_ = ctx.Add(rule)
//	_ = ctx.Add(same)
//
//	ok := ctx.IsValid()
//	msg := ctx.Message()
//
// Disposing a context disposes every component it still holds; removing a
// component first hands ownership back to the caller.
//
// # Scheduling
//
// All evaluation is synchronous on the goroutine delivering the property
// change. Aggregate recomputation runs through an injectable Scheduler
// (default Immediate) so hosts with cross-thread notification sources can
// marshal onto their dispatch queue, and tests stay deterministic.
package validation
