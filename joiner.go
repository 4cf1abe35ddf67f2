package listfmt

// Joiner provides a simplified formatting interface with a fixed locale and
// style context. It wraps one formatter per list type so call sites pick a
// junction, not a configuration.
type Joiner struct {
	and    *Formatter
	or     *Formatter
	unit   *Formatter
	locale string
	style  Style
}

// NewJoiner creates a Joiner for the given locale and style.
// If registry is nil, it defaults to DefaultRegistry().
// If locale is empty, it defaults to the registry's default locale.
// If style is empty, it defaults to Long.
//
// The locale is negotiated against the registry's registered locales, so
// Locale reports the locale whose patterns actually apply ("es-MX" becomes
// "es" when only "es" is registered).
func NewJoiner(registry *Registry, locale string, style Style) (*Joiner, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	if locale == "" {
		locale = registry.DefaultLocale()
	}
	if style == "" {
		style = Long
	}

	j := &Joiner{
		locale: registry.Match(locale),
		style:  style,
	}

	for _, bind := range []struct {
		t   Type
		dst **Formatter
	}{
		{Conjunction, &j.and},
		{Disjunction, &j.or},
		{Unit, &j.unit},
	} {
		f, err := New(
			WithProvider(registry),
			WithLocale(j.locale),
			WithType(bind.t),
			WithStyle(style),
		)
		if err != nil {
			return nil, err
		}
		*bind.dst = f
	}

	return j, nil
}

// And formats items as a conjunction list: "a, b, and c" for en.
func (j *Joiner) And(items ...string) string {
	return j.and.Format(items...)
}

// Or formats items as a disjunction list: "a, b, or c" for en.
func (j *Joiner) Or(items ...string) string {
	return j.or.Format(items...)
}

// Unit formats items as a unit list: "3 ft, 7 in" for en.
func (j *Joiner) Unit(items ...string) string {
	return j.unit.Format(items...)
}

// Locale returns the negotiated locale the joiner formats for.
func (j *Joiner) Locale() string {
	return j.locale
}

// Style returns the joiner's style.
func (j *Joiner) Style() Style {
	return j.style
}

// Formatter returns the joiner's underlying formatter for the list type, or
// nil for an unknown type.
func (j *Joiner) Formatter(t Type) *Formatter {
	switch t {
	case Conjunction:
		return j.and
	case Disjunction:
		return j.or
	case Unit:
		return j.unit
	}
	return nil
}

// And formats items as a conjunction list in the locale using the default
// registry and long style.
func And(locale string, items ...string) string {
	return defaultFormatter(locale, Conjunction).Format(items...)
}

// Or formats items as a disjunction list in the locale using the default
// registry and long style.
func Or(locale string, items ...string) string {
	return defaultFormatter(locale, Disjunction).Format(items...)
}

// Units formats items as a unit list in the locale using the default
// registry and long style.
func Units(locale string, items ...string) string {
	return defaultFormatter(locale, Unit).Format(items...)
}

func defaultFormatter(locale string, t Type) *Formatter {
	opts := []Option{WithType(t)}
	if locale != "" {
		opts = append(opts, WithLocale(locale))
	}
	f, err := New(opts...)
	if err != nil {
		// Unreachable: the default registry always resolves through the
		// built-in fallback locale.
		panic("listfmt: " + err.Error())
	}
	return f
}
