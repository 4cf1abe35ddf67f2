package listfmt

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// Segment is one element of a list pattern: either literal text copied to
// the output verbatim, or a placeholder slot that receives a value during
// formatting.
type Segment struct {
	// Text is the literal text. It is empty for placeholder segments.
	Text string

	// Index is the placeholder slot: 0 receives the part of the list
	// combined so far, 1 receives the next item. It is -1 for literals.
	Index int
}

// Literal returns a literal segment with the given text.
func Literal(text string) Segment {
	return Segment{Text: text, Index: -1}
}

// Placeholder returns a placeholder segment for slot 0 or 1.
func Placeholder(index int) Segment {
	return Segment{Index: index}
}

// IsPlaceholder reports whether the segment is a placeholder slot rather
// than literal text.
func (s Segment) IsPlaceholder() bool {
	return s.Index >= 0
}

// Pattern is a validated list-join pattern: literal text arranged around two
// placeholder slots, written {0} and {1} in source form. Slot 0 receives the
// part of the list combined so far, slot 1 the next item.
//
// A pattern may carry one special case: an alternate pattern used when the
// value substituted into slot 1 matches a condition (see WithSpecialCase).
// Patterns are immutable values and safe for concurrent use.
type Pattern struct {
	prefix string // literal before {0}
	infix  string // literal between {0} and {1}
	suffix string // literal after {1}

	special *specialCase

	ok bool // set by the constructors; the zero value is not a pattern
}

type specialCase struct {
	condition *regexp.Regexp
	pattern   Pattern
}

var strayPlaceholder = regexp.MustCompile(`\{\d+\}`)

// ParsePattern parses a pattern from its {0}/{1} source form, for example
// "{0}, {1}" or "{0} and {1}". It returns ErrMalformedPattern when either
// placeholder is missing or duplicated, when {1} precedes {0}, or when the
// source references any other placeholder index.
func ParsePattern(src string) (Pattern, error) {
	i0 := strings.Index(src, "{0}")
	i1 := strings.Index(src, "{1}")
	switch {
	case i0 < 0:
		return Pattern{}, fmt.Errorf("%w: %q lacks placeholder {0}", ErrMalformedPattern, src)
	case i1 < 0:
		return Pattern{}, fmt.Errorf("%w: %q lacks placeholder {1}", ErrMalformedPattern, src)
	case strings.Count(src, "{0}") > 1 || strings.Count(src, "{1}") > 1:
		return Pattern{}, fmt.Errorf("%w: %q duplicates a placeholder", ErrMalformedPattern, src)
	case i1 < i0:
		return Pattern{}, fmt.Errorf("%w: %q has {1} before {0}", ErrMalformedPattern, src)
	}

	p := Pattern{
		prefix: src[:i0],
		infix:  src[i0+len("{0}") : i1],
		suffix: src[i1+len("{1}"):],
		ok:     true,
	}

	for _, lit := range []string{p.prefix, p.infix, p.suffix} {
		if strayPlaceholder.MatchString(lit) {
			return Pattern{}, fmt.Errorf("%w: %q references an unsupported placeholder", ErrMalformedPattern, src)
		}
	}

	return p, nil
}

// MustParsePattern is like ParsePattern but panics on error. It is intended
// for patterns hardcoded at program start.
func MustParsePattern(src string) Pattern {
	p, err := ParsePattern(src)
	if err != nil {
		panic(err)
	}
	return p
}

// NewPattern builds a pattern from an explicit segment list. Adjacent
// literals are concatenated. The same placeholder invariant as ParsePattern
// applies: exactly one slot 0 followed by exactly one slot 1.
func NewPattern(segments ...Segment) (Pattern, error) {
	p := Pattern{ok: true}
	seen := 0

	for _, seg := range segments {
		if !seg.IsPlaceholder() {
			switch seen {
			case 0:
				p.prefix += seg.Text
			case 1:
				p.infix += seg.Text
			default:
				p.suffix += seg.Text
			}
			continue
		}

		switch {
		case seg.Index > 1:
			return Pattern{}, fmt.Errorf("%w: placeholder index %d", ErrMalformedPattern, seg.Index)
		case seg.Index != seen:
			return Pattern{}, fmt.Errorf("%w: unexpected placeholder {%d}", ErrMalformedPattern, seg.Index)
		}
		seen++
	}

	if seen != 2 {
		return Pattern{}, fmt.Errorf("%w: placeholders {0} and {1} are required", ErrMalformedPattern)
	}

	return p, nil
}

// WithSpecialCase returns a copy of the pattern that switches to alt when
// the value substituted into slot 1 matches the condition expression.
// Locales use this for phonetic adjustments, such as Spanish "y" becoming
// "e" before words starting with an /i/ sound. The alternate pattern cannot
// itself be conditional.
func (p Pattern) WithSpecialCase(condition string, alt Pattern) (Pattern, error) {
	if !p.ok || !alt.ok {
		return Pattern{}, fmt.Errorf("%w: special case requires constructed patterns", ErrMalformedPattern)
	}
	if alt.special != nil {
		return Pattern{}, fmt.Errorf("%w: special case pattern cannot be conditional", ErrMalformedPattern)
	}
	re, err := regexp.Compile(condition)
	if err != nil {
		return Pattern{}, fmt.Errorf("%w: special case condition %q: %v", ErrMalformedPattern, condition, err)
	}
	p.special = &specialCase{condition: re, pattern: alt}
	return p, nil
}

// IsValid reports whether the pattern was built by one of the constructors.
// The zero value is not a valid pattern.
func (p Pattern) IsValid() bool {
	return p.ok
}

// Segments returns the pattern's segments in order: the surrounding literals
// and the two placeholder slots. Empty literals are skipped. The sequence is
// lazy and can be iterated any number of times.
func (p Pattern) Segments() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		if p.prefix != "" && !yield(Literal(p.prefix)) {
			return
		}
		if !yield(Placeholder(0)) {
			return
		}
		if p.infix != "" && !yield(Literal(p.infix)) {
			return
		}
		if !yield(Placeholder(1)) {
			return
		}
		if p.suffix != "" {
			yield(Literal(p.suffix))
		}
	}
}

// String returns the pattern in {0}/{1} source form.
func (p Pattern) String() string {
	return p.prefix + "{0}" + p.infix + "{1}" + p.suffix
}

// variant returns the pattern to apply when next is the value substituted
// into slot 1, honoring the special case if one is attached.
func (p Pattern) variant(next string) Pattern {
	if p.special != nil && p.special.condition.MatchString(next) {
		return p.special.pattern
	}
	return p
}
