package catalog

import (
	"fmt"
	"regexp"
	"sync"
)

// DefaultLocale is used for fallback lookups unless overridden with
// WithDefaultLocale.
const DefaultLocale = "en"

// placeholderRe finds named parameters in the form %{name}.
var placeholderRe = regexp.MustCompile(`%\{([a-zA-Z0-9_.]+)\}`)

// Catalog holds message templates per locale. Lookup falls back from the
// requested locale to the default locale and finally to the key itself, so a
// missing template never swallows a validation message. Safe for concurrent
// use; loading merges into the existing content.
type Catalog struct {
	defaultLocale string

	mu       sync.RWMutex
	messages map[string]map[string]string
}

// CatalogOption configures a Catalog during construction.
type CatalogOption func(*Catalog)

// WithDefaultLocale sets the fallback locale. Empty values are ignored.
func WithDefaultLocale(locale string) CatalogOption {
	return func(c *Catalog) {
		if locale != "" {
			c.defaultLocale = locale
		}
	}
}

// New creates an empty catalog.
func New(opts ...CatalogOption) *Catalog {
	c := &Catalog{
		defaultLocale: DefaultLocale,
		messages:      make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load parses content with the given parser and merges the result into the
// catalog. Later loads override earlier templates for the same locale and key.
func (c *Catalog) Load(content []byte, parser Parser) error {
	if parser == nil {
		return ErrNilParser
	}
	parsed, err := parser.Parse(content)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for locale, templates := range parsed {
		if c.messages[locale] == nil {
			c.messages[locale] = make(map[string]string, len(templates))
		}
		for key, template := range templates {
			c.messages[locale][key] = template
		}
	}
	return nil
}

// Locales returns the locales with at least one template loaded.
func (c *Catalog) Locales() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.messages))
	for locale := range c.messages {
		out = append(out, locale)
	}
	return out
}

// Has reports whether the locale carries a template for the key, without
// considering fallbacks.
func (c *Catalog) Has(locale, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.messages[locale][key]
	return ok
}

// Message resolves the template for the key in the given locale, falling back
// to the default locale and then to the key itself, and interpolates %{name}
// placeholders from args. Placeholders without a matching arg stay intact.
func (c *Catalog) Message(locale, key string, args map[string]any) string {
	c.mu.RLock()
	template, ok := c.messages[locale][key]
	if !ok {
		template, ok = c.messages[c.defaultLocale][key]
	}
	c.mu.RUnlock()

	if !ok {
		return key
	}
	return interpolate(template, args)
}

func interpolate(template string, args map[string]any) string {
	if len(args) == 0 {
		return template
	}
	return placeholderRe.ReplaceAllStringFunc(template, func(match string) string {
		name := placeholderRe.FindStringSubmatch(match)[1]
		value, ok := args[name]
		if !ok {
			return match
		}
		return fmt.Sprintf("%v", value)
	})
}
