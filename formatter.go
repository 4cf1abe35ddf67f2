package listfmt

import "fmt"

// DefaultLocale is used when no locale is specified.
const DefaultLocale = "en"

// Formatter renders item sequences as locale-aware list strings. It is
// configured once through New and immutable afterwards, making it safe for
// concurrent use.
type Formatter struct {
	set      PatternSet
	matcher  Matcher
	provider Provider
	locale   string
	listType Type
	style    Style
	isolate  bool
	explicit bool // pattern set supplied directly, skip resolution
}

// Option configures the Formatter during construction.
type Option func(*Formatter) error

// New creates a Formatter. Without options it formats conjunction lists in
// the default locale using the built-in pattern data. The pattern set is
// resolved and validated here: formatting itself cannot fail afterwards.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		locale:   DefaultLocale,
		listType: Conjunction,
		style:    Long,
	}

	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if !f.explicit {
		if f.provider == nil {
			f.provider = DefaultRegistry()
		}
		set, err := f.provider.ResolvePatternSet(f.locale, f.listType, f.style)
		if err != nil {
			return nil, err
		}
		f.set = set
	}

	if err := f.set.Validate(); err != nil {
		return nil, err
	}

	return f, nil
}

// WithLocale sets the locale whose patterns are resolved at construction.
func WithLocale(locale string) Option {
	return func(f *Formatter) error {
		if locale == "" {
			return ErrEmptyLocale
		}
		f.locale = locale
		return nil
	}
}

// WithType sets the list type: Conjunction, Disjunction, or Unit.
func WithType(t Type) Option {
	return func(f *Formatter) error {
		if !t.valid() {
			return fmt.Errorf("%w: %q", ErrUnknownType, t)
		}
		f.listType = t
		return nil
	}
}

// WithStyle sets the joining-text width: Long, Short, or Narrow.
func WithStyle(s Style) Option {
	return func(f *Formatter) error {
		if !s.valid() {
			return fmt.Errorf("%w: %q", ErrUnknownStyle, s)
		}
		f.style = s
		return nil
	}
}

// WithProvider sets the pattern data source. Defaults to DefaultRegistry().
func WithProvider(p Provider) Option {
	return func(f *Formatter) error {
		if p == nil {
			return ErrNilProvider
		}
		f.provider = p
		return nil
	}
}

// WithPatternSet bypasses locale resolution and uses the given set directly.
func WithPatternSet(set PatternSet) Option {
	return func(f *Formatter) error {
		f.set = set
		f.explicit = true
		return nil
	}
}

// WithOverlapAlphabet restricts junction overlap collapsing to the given
// rune class. Defaults to DefaultOverlapAlphabet.
func WithOverlapAlphabet(alphabet func(rune) bool) Option {
	return func(f *Formatter) error {
		if alphabet == nil {
			return ErrNilAlphabet
		}
		f.matcher = NewMatcher(alphabet)
		return nil
	}
}

// WithDirectionIsolation wraps right-to-left items in Unicode directional
// isolate marks (see NewIsolatingBuilder).
func WithDirectionIsolation() Option {
	return func(f *Formatter) error {
		f.isolate = true
		return nil
	}
}

// Format renders the items as a single list string. Zero items produce the
// empty string; a single item is returned verbatim.
func (f *Formatter) Format(items ...string) string {
	b := f.newBuilder()
	f.emit(b, items)
	return b.Finalize()
}

// FormatTo renders the items into a caller-supplied builder. The caller
// remains responsible for finalizing it.
func (f *Formatter) FormatTo(b Builder, items ...string) error {
	if b == nil {
		return ErrNoBuilder
	}
	f.emit(b, items)
	return nil
}

// Locale returns the locale requested at construction.
func (f *Formatter) Locale() string { return f.locale }

// Type returns the formatter's list type.
func (f *Formatter) Type() Type { return f.listType }

// Style returns the formatter's style.
func (f *Formatter) Style() Style { return f.style }

// Patterns returns the resolved pattern set.
func (f *Formatter) Patterns() PatternSet { return f.set }

func (f *Formatter) newBuilder() Builder {
	if f.isolate {
		return NewIsolatingBuilder()
	}
	return NewBuilder()
}

func (f *Formatter) emit(b Builder, items []string) {
	switch len(items) {
	case 0:
		return
	case 1:
		b.AppendPlaceholder(items[0])
	case 2:
		f.apply(b, f.set.Pair.variant(items[1]), items[0], items[1])
	default:
		f.emitLong(b, items)
	}
}

// apply renders one full pattern application over two values.
func (f *Formatter) apply(b Builder, p Pattern, first, second string) {
	if p.prefix != "" {
		b.AppendLiteral(p.prefix)
	}
	b.AppendPlaceholder(first)
	if p.infix != "" {
		b.AppendLiteral(p.infix)
	}
	b.AppendPlaceholder(second)
	if p.suffix != "" {
		b.AppendLiteral(p.suffix)
	}
}

// emitLong renders lists of three or more items: one start application,
// middle applications for the inner items, and one end application. Each
// application substitutes the list combined so far into slot 0, so the
// output streams without intermediate strings.
func (f *Formatter) emitLong(b Builder, items []string) {
	n := len(items)
	start := f.set.Start.variant(items[1])
	end := f.set.End.variant(items[n-1])

	middles := make([]Pattern, 0, n-3)
	for i := 2; i < n-1; i++ {
		middles = append(middles, f.set.Middle.variant(items[i]))
	}

	// Literals preceding slot 0 nest outward under substitution: the last
	// application's leading literal lands first in the output.
	if end.prefix != "" {
		b.AppendLiteral(end.prefix)
	}
	for i := len(middles) - 1; i >= 0; i-- {
		if middles[i].prefix != "" {
			b.AppendLiteral(middles[i].prefix)
		}
	}
	if start.prefix != "" {
		b.AppendLiteral(start.prefix)
	}

	b.AppendPlaceholder(items[0])
	if start.infix != "" {
		b.AppendLiteral(start.infix)
	}
	b.AppendPlaceholder(items[1])

	prev := start
	for i, mid := range middles {
		f.junction(b, prev, mid)
		b.AppendPlaceholder(items[2+i])
		prev = mid
	}

	f.junction(b, prev, end)
	b.AppendPlaceholder(items[n-1])
	if end.suffix != "" {
		b.AppendLiteral(end.suffix)
	}
}

// junction emits the literal text between two consecutive applications: the
// left pattern's trailing literal followed by the right pattern's joining
// literal, collapsed by the matcher when they overlap.
func (f *Formatter) junction(b Builder, left, right Pattern) {
	if f.matcher.CanMerge(left, right) {
		right = f.matcher.Merge(left, right)
	}
	if left.suffix != "" {
		b.AppendLiteral(left.suffix)
	}
	if right.infix != "" {
		b.AppendLiteral(right.infix)
	}
}
