package listfmt

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Provider resolves the pattern set for a locale, list type, and style.
// Implementations must be safe for concurrent use; resolved pattern sets are
// treated as read-only shared data.
type Provider interface {
	ResolvePatternSet(locale string, t Type, s Style) (PatternSet, error)
}

// Registry is the built-in Provider: an immutable collection of pattern sets
// keyed by locale, list type, and style. All data is registered during
// construction, making the registry safe for concurrent use without
// synchronization.
//
// Resolution falls back along the locale's parent chain ("es-MX" to "es")
// and finally to the default locale before reporting ErrNotFound.
type Registry struct {
	// Pattern sets for O(1) lookups. Key format: "locale:type:style".
	sets map[string]PatternSet

	// Optional handler called when resolution fails entirely. Useful for
	// detecting unsupported locales during development or monitoring gaps
	// in pattern data.
	missingHandler func(locale string, t Type, s Style)

	// Default/fallback locale.
	defaultLocale string

	// Pre-computed list of registered locales, default first.
	locales []string

	// Locale negotiation state, parallel slices: tags[i] parses locales
	// matcherLocales[i].
	matcher        language.Matcher
	tags           []language.Tag
	matcherLocales []string
}

// RegistryOption configures the Registry during construction.
type RegistryOption func(*Registry) error

// NewRegistry creates a Registry with the given options. All configuration
// happens during construction; the registry is immutable afterwards.
func NewRegistry(opts ...RegistryOption) (*Registry, error) {
	r := &Registry{
		sets:          make(map[string]PatternSet),
		defaultLocale: DefaultLocale,
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if r.defaultLocale == "" {
		return nil, ErrEmptyLocale
	}

	r.locales = r.buildLocalesList()
	r.buildMatcher()

	return r, nil
}

// WithDefaultLocale sets the final fallback locale for resolution and
// negotiation. Defaults to DefaultLocale.
func WithDefaultLocale(locale string) RegistryOption {
	return func(r *Registry) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		r.defaultLocale = normalizeLocale(locale)
		return nil
	}
}

// WithPattern registers a pattern set for a locale, list type, and style.
func WithPattern(locale string, t Type, s Style, set PatternSet) RegistryOption {
	return func(r *Registry) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		if !t.valid() {
			return fmt.Errorf("%w: %q", ErrUnknownType, t)
		}
		if !s.valid() {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, s)
		}
		if err := set.Validate(); err != nil {
			return err
		}
		r.sets[buildKey(normalizeLocale(locale), t, s)] = set
		return nil
	}
}

// WithPatternSource registers a pattern set given in {0}/{1} source form.
func WithPatternSource(locale string, t Type, s Style, pair, start, middle, end string) RegistryOption {
	return func(r *Registry) error {
		set, err := ParsePatternSet(pair, start, middle, end)
		if err != nil {
			return fmt.Errorf("locale %q: %w", locale, err)
		}
		return WithPattern(locale, t, s, set)(r)
	}
}

// WithMissingLocaleHandler sets a handler called when resolution fails for a
// locale, including the parent-chain and default fallbacks.
func WithMissingLocaleHandler(handler func(locale string, t Type, s Style)) RegistryOption {
	return func(r *Registry) error {
		r.missingHandler = handler
		return nil
	}
}

// ResolvePatternSet returns the pattern set for the locale, falling back
// along the locale's parent chain and then to the default locale. It
// reports ErrNotFound when no registered data applies.
func (r *Registry) ResolvePatternSet(locale string, t Type, s Style) (PatternSet, error) {
	if !t.valid() {
		return PatternSet{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if !s.valid() {
		return PatternSet{}, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}

	norm := normalizeLocale(locale)
	if set, ok := r.sets[buildKey(norm, t, s)]; ok {
		return set, nil
	}

	if tag, err := language.Parse(norm); err == nil {
		for parent := tag.Parent(); !parent.IsRoot(); parent = parent.Parent() {
			if set, ok := r.sets[buildKey(parent.String(), t, s)]; ok {
				return set, nil
			}
		}
	}

	if norm != r.defaultLocale {
		if set, ok := r.sets[buildKey(r.defaultLocale, t, s)]; ok {
			return set, nil
		}
	}

	if r.missingHandler != nil {
		r.missingHandler(locale, t, s)
	}

	return PatternSet{}, fmt.Errorf("%w: %s/%s/%s", ErrNotFound, locale, t, s)
}

// Has reports whether a pattern set is registered for the exact locale,
// type, and style, without fallback.
func (r *Registry) Has(locale string, t Type, s Style) bool {
	_, ok := r.sets[buildKey(normalizeLocale(locale), t, s)]
	return ok
}

// Locales returns the registered locales with the default locale first and
// the rest sorted alphabetically.
func (r *Registry) Locales() []string {
	return r.locales
}

// DefaultLocale returns the registry's default/fallback locale.
func (r *Registry) DefaultLocale() string {
	return r.defaultLocale
}

func (r *Registry) buildLocalesList() []string {
	seen := map[string]bool{r.defaultLocale: true}
	others := make([]string, 0, len(r.sets))
	for key := range r.sets {
		locale := localeFromKey(key)
		if !seen[locale] {
			seen[locale] = true
			others = append(others, locale)
		}
	}
	slices.Sort(others)
	return append([]string{r.defaultLocale}, others...)
}

func buildKey(locale string, t Type, s Style) string {
	return locale + ":" + string(t) + ":" + string(s)
}

func localeFromKey(key string) string {
	locale, _, _ := strings.Cut(key, ":")
	return locale
}

// defaultRegistry builds the shared registry holding the built-in locale
// data. Constructed on first use, never mutated afterwards.
var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(WithBuiltins())
	if err != nil {
		panic(err)
	}
	return r
})

// DefaultRegistry returns the process-wide registry with the built-in
// pattern data. It is safe for concurrent use.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}
