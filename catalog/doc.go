// Package catalog keeps validation message templates outside of code. A
// catalog maps locale and key to a template with %{name} placeholders and
// falls back to a default locale when a key (or the whole locale) is missing.
//
// Catalogs load from YAML or JSON content:
//
//	en:
//	  name.required: "Name is required."
//	  name.min: "Minimum length is %{min}"
//	de:
//	  name.required: "Name ist erforderlich."
//
//	cat := catalog.New()
//	if err := cat.Load(content, catalog.NewYAMLParser()); err != nil {
//		return err
//	}
//
//	cat.Message("de", "name.required", nil) // "Name ist erforderlich."
//	cat.Message("en", "name.min", map[string]any{"min": 5})
//
// RuleMessage adapts a catalog entry to a validation message source so rules
// can reference templates by key:
//
//	rule, err := validation.RuleFor(name, notEmpty,
//		catalog.RuleMessage(cat, "en", "name.required", nil))
//
// Missing keys resolve to the key itself so a forgotten template shows up in
// the UI instead of hiding the error.
package catalog
