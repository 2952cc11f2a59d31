package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/revalid/observe"
	"github.com/dmitrymomot/revalid/validation"
)

// stubSource re-emits whatever it is told to, including duplicates, so tests
// can exercise suppression that Property's own change detection would hide.
type stubSource struct {
	name      string
	observers []func(any)
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Observe(fn func(any)) observe.Subscription {
	s.observers = append(s.observers, fn)
	return observe.NewSubscription(nil)
}

func (s *stubSource) emit(v any) {
	for _, fn := range s.observers {
		fn(v)
	}
}

func nonEmpty(v string) bool { return v != "" }

func TestNewRule(t *testing.T) {
	t.Parallel()

	name := observe.NewProperty[string]("Name")

	t.Run("no sources", func(t *testing.T) {
		t.Parallel()

		_, err := validation.NewRule(nil, func([]any) bool { return true }, validation.StaticMessage("m"))
		assert.ErrorIs(t, err, validation.ErrNoSources)
	})

	t.Run("nil source", func(t *testing.T) {
		t.Parallel()

		_, err := validation.NewRule([]observe.Source{name, nil}, func([]any) bool { return true }, validation.StaticMessage("m"))
		assert.ErrorIs(t, err, validation.ErrNilSource)
	})

	t.Run("nil predicate", func(t *testing.T) {
		t.Parallel()

		_, err := validation.NewRule([]observe.Source{name}, nil, validation.StaticMessage("m"))
		assert.ErrorIs(t, err, validation.ErrNilPredicate)
	})

	t.Run("nil message source", func(t *testing.T) {
		t.Parallel()

		_, err := validation.NewRule([]observe.Source{name}, func([]any) bool { return true }, nil)
		assert.ErrorIs(t, err, validation.ErrNilMessage)
	})

	t.Run("must panics on invalid arguments", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			validation.MustRule(nil, nil, nil)
		})
	})
}

func TestRuleLazyActivation(t *testing.T) {
	t.Parallel()

	t.Run("dormant until first subscribe", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "")
		rule, err := validation.RuleFor(name, nonEmpty, validation.StaticMessage("Name is required."))
		require.NoError(t, err)

		assert.Equal(t, 0, name.Observers())
		assert.True(t, rule.IsValid())
		_, ok := rule.LastValues()
		assert.False(t, ok)
	})

	t.Run("first subscribe activates and evaluates", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "")
		rule, err := validation.RuleFor(name, nonEmpty, validation.StaticMessage("Name is required."))
		require.NoError(t, err)

		var states []validation.State
		sub := rule.Subscribe(func(s validation.State) { states = append(states, s) })
		defer sub.Unsubscribe()

		require.Len(t, states, 1)
		assert.False(t, states[0].Valid)
		assert.Equal(t, "Name is required.", states[0].Text.String())
		assert.False(t, rule.IsValid())
		assert.Equal(t, 1, name.Observers())
	})

	t.Run("second subscribe does not reconnect", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "value")
		rule, err := validation.RuleFor(name, nonEmpty, validation.StaticMessage("Name is required."))
		require.NoError(t, err)

		sub1 := rule.Subscribe(func(validation.State) {})
		defer sub1.Unsubscribe()
		require.Equal(t, 1, name.Observers())

		count := 0
		sub2 := rule.Subscribe(func(validation.State) { count++ })
		defer sub2.Unsubscribe()

		assert.Equal(t, 1, name.Observers())

		name.Set("")
		assert.Equal(t, 1, count)
	})

	t.Run("stays active after last observer leaves", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "value")
		rule, err := validation.RuleFor(name, nonEmpty, validation.StaticMessage("Name is required."))
		require.NoError(t, err)

		sub := rule.Subscribe(func(validation.State) {})
		sub.Unsubscribe()

		assert.Equal(t, 1, name.Observers())

		name.Set("")
		assert.False(t, rule.IsValid())

		values, ok := rule.LastValues()
		require.True(t, ok)
		assert.Equal(t, []any{""}, values)
	})
}

func TestRuleEvaluation(t *testing.T) {
	t.Parallel()

	t.Run("state follows predicate and message", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "")
		rule, err := validation.RuleFor(name, nonEmpty, validation.MessageFunc(func(values []any) string {
			return "got <" + values[0].(string) + ">"
		}))
		require.NoError(t, err)

		var states []validation.State
		sub := rule.Subscribe(func(s validation.State) { states = append(states, s) })
		defer sub.Unsubscribe()

		name.Set("x")
		name.Set("")

		require.Len(t, states, 3)
		assert.Equal(t, "got <>", states[0].Text.String())
		assert.True(t, states[1].Valid)
		assert.True(t, states[1].Text.IsEmpty())
		assert.False(t, states[2].Valid)
	})

	t.Run("suppresses duplicate states", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "a")
		// Always-invalid static message: different values produce the same state.
		rule, err := validation.RuleFor(name, func(string) bool { return false },
			validation.StaticMessage("always broken"))
		require.NoError(t, err)

		var states []validation.State
		sub := rule.Subscribe(func(s validation.State) { states = append(states, s) })
		defer sub.Unsubscribe()

		name.Set("b")
		name.Set("c")

		assert.Len(t, states, 1)

		values, ok := rule.LastValues()
		require.True(t, ok)
		assert.Equal(t, []any{"c"}, values)
	})

	t.Run("suppresses duplicate tuples", func(t *testing.T) {
		t.Parallel()

		src := &stubSource{name: "Name"}
		evaluations := 0
		rule, err := validation.NewRule([]observe.Source{src}, func(values []any) bool {
			evaluations++
			return values[0] != ""
		}, validation.StaticMessage("m"))
		require.NoError(t, err)

		sub := rule.Subscribe(func(validation.State) {})
		defer sub.Unsubscribe()

		src.emit("a")
		src.emit("a")
		src.emit("a")

		assert.Equal(t, 1, evaluations)
	})

	t.Run("informational text on valid state", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "ok")
		rule, err := validation.RuleFor(name, nonEmpty,
			validation.StateMessageFunc(func(values []any, valid bool) string {
				if valid {
					return "all good"
				}
				return "broken"
			}))
		require.NoError(t, err)

		var states []validation.State
		sub := rule.Subscribe(func(s validation.State) { states = append(states, s) })
		defer sub.Unsubscribe()

		require.Len(t, states, 1)
		assert.True(t, states[0].Valid)
		assert.Equal(t, "all good", states[0].Text.String())
	})
}

func TestRuleMultipleProperties(t *testing.T) {
	t.Parallel()

	t.Run("waits for every property", func(t *testing.T) {
		t.Parallel()

		a := observe.NewProperty[string]("A")
		b := observe.NewProperty[string]("B")
		rule, err := validation.RuleFor2(a, b, func(x, y string) bool { return x == y },
			validation.StaticMessage("Both inputs should be the same"))
		require.NoError(t, err)

		var states []validation.State
		sub := rule.Subscribe(func(s validation.State) { states = append(states, s) })
		defer sub.Unsubscribe()

		a.Set("A")
		assert.Empty(t, states)
		assert.True(t, rule.IsValid())

		b.Set("B")
		require.Len(t, states, 1)
		assert.False(t, states[0].Valid)
	})

	t.Run("re-evaluates on any property change", func(t *testing.T) {
		t.Parallel()

		a := observe.NewPropertyValue("A", "A")
		b := observe.NewPropertyValue("B", "B")
		rule, err := validation.RuleFor2(a, b, func(x, y string) bool { return x == y },
			validation.StaticMessage("Both inputs should be the same"))
		require.NoError(t, err)

		var states []validation.State
		sub := rule.Subscribe(func(s validation.State) { states = append(states, s) })
		defer sub.Unsubscribe()

		b.Set("A")
		require.Len(t, states, 2)
		assert.True(t, states[1].Valid)
		assert.True(t, states[1].Text.IsEmpty())
	})

	t.Run("properties reports source names", func(t *testing.T) {
		t.Parallel()

		a := observe.NewProperty[string]("A")
		b := observe.NewProperty[string]("B")
		rule, err := validation.RuleFor2(a, b, func(string, string) bool { return true },
			validation.StaticMessage("m"))
		require.NoError(t, err)

		assert.Equal(t, []string{"A", "B"}, rule.Properties())
	})
}

func TestRuleDispose(t *testing.T) {
	t.Parallel()

	t.Run("releases subscriptions and stops emissions", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "value")
		rule, err := validation.RuleFor(name, nonEmpty, validation.StaticMessage("m"))
		require.NoError(t, err)

		count := 0
		rule.Subscribe(func(validation.State) { count++ })
		require.Equal(t, 1, count)
		require.Equal(t, 1, name.Observers())

		rule.Dispose()
		assert.Equal(t, 0, name.Observers())

		name.Set("")
		assert.Equal(t, 1, count)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "value")
		rule, err := validation.RuleFor(name, nonEmpty, validation.StaticMessage("m"))
		require.NoError(t, err)

		rule.Subscribe(func(validation.State) {})
		rule.Dispose()
		assert.NotPanics(t, func() {
			rule.Dispose()
			rule.Dispose()
		})
		assert.Equal(t, 0, name.Observers())
	})

	t.Run("subscribe after dispose is inert", func(t *testing.T) {
		t.Parallel()

		name := observe.NewPropertyValue("Name", "value")
		rule, err := validation.RuleFor(name, nonEmpty, validation.StaticMessage("m"))
		require.NoError(t, err)

		rule.Dispose()

		count := 0
		sub := rule.Subscribe(func(validation.State) { count++ })
		sub.Unsubscribe()

		name.Set("")
		assert.Equal(t, 0, count)
		assert.Equal(t, 0, name.Observers())
	})

	t.Run("dispose of dormant rule", func(t *testing.T) {
		t.Parallel()

		name := observe.NewProperty[string]("Name")
		rule, err := validation.RuleFor(name, nonEmpty, validation.StaticMessage("m"))
		require.NoError(t, err)

		assert.NotPanics(t, rule.Dispose)
	})
}
