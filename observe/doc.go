// Package observe provides the property-change primitives the validation
// packages are built on: named observable values, subscriptions with idempotent
// teardown, and an N-ary combine-latest combinator.
//
// A Source is the minimal surface a host property must expose. Host UI
// frameworks adapt their own change-notification mechanism to it; tests and
// plain view-models use the in-memory Property implementation directly:
//
//	name := observe.NewProperty[string]("Name")
//	sub := name.Subscribe(func(v string) {
//		fmt.Println("name changed:", v)
//	})
//	defer sub.Unsubscribe()
//
//	name.Set("Alice")
//
// Delivery is synchronous: observers run on the goroutine that calls Set, in
// registration order. A new subscriber immediately receives the current value
// if the property has one. Setting a value equal to the current one is a no-op
// and notifies nobody.
//
// CombineLatest merges several sources into one callback that fires with the
// latest value of every source once each has produced at least one value:
//
//	sub, err := observe.CombineLatest([]observe.Source{name, email}, func(values []any) {
//		// values[0] is the latest name, values[1] the latest email
//	})
package observe
