package listfmt

import "fmt"

// Type selects the kind of list being formatted.
type Type string

const (
	// Conjunction joins items as an "and" list: "A, B, and C".
	Conjunction Type = "conjunction"

	// Disjunction joins items as an "or" list: "A, B, or C".
	Disjunction Type = "disjunction"

	// Unit joins measurement-style items without a joining word: "3 ft, 6 in".
	Unit Type = "unit"
)

// Types lists all supported list types.
func Types() []Type {
	return []Type{Conjunction, Disjunction, Unit}
}

func (t Type) valid() bool {
	switch t {
	case Conjunction, Disjunction, Unit:
		return true
	}
	return false
}

// Style selects the width of the joining text.
type Style string

const (
	// Long is the fully spelled-out style and the default.
	Long Style = "long"

	// Short abbreviates the joining text where the locale defines an
	// abbreviation, for example "A, B, & C".
	Short Style = "short"

	// Narrow is the most compact style, often a bare separator.
	Narrow Style = "narrow"
)

// Styles lists all supported styles.
func Styles() []Style {
	return []Style{Long, Short, Narrow}
}

func (s Style) valid() bool {
	switch s {
	case Long, Short, Narrow:
		return true
	}
	return false
}

// PatternSet holds the four patterns a locale provides for one list type and
// style. Pair joins exactly two items; Start, Middle, and End join the
// first, inner, and final positions of lists with three or more items.
//
// A pattern set is an immutable value: construct it once, share it freely.
type PatternSet struct {
	Pair   Pattern
	Start  Pattern
	Middle Pattern
	End    Pattern
}

// ParsePatternSet parses all four patterns from their {0}/{1} source form.
func ParsePatternSet(pair, start, middle, end string) (PatternSet, error) {
	var (
		ps  PatternSet
		err error
	)
	if ps.Pair, err = ParsePattern(pair); err != nil {
		return PatternSet{}, fmt.Errorf("pair: %w", err)
	}
	if ps.Start, err = ParsePattern(start); err != nil {
		return PatternSet{}, fmt.Errorf("start: %w", err)
	}
	if ps.Middle, err = ParsePattern(middle); err != nil {
		return PatternSet{}, fmt.Errorf("middle: %w", err)
	}
	if ps.End, err = ParsePattern(end); err != nil {
		return PatternSet{}, fmt.Errorf("end: %w", err)
	}
	return ps, nil
}

// Validate reports ErrMissingPattern when any of the four roles was not
// built by one of the pattern constructors.
func (ps PatternSet) Validate() error {
	roles := []struct {
		name string
		p    Pattern
	}{
		{"pair", ps.Pair},
		{"start", ps.Start},
		{"middle", ps.Middle},
		{"end", ps.End},
	}
	for _, role := range roles {
		if !role.p.IsValid() {
			return fmt.Errorf("%w: %s", ErrMissingPattern, role.name)
		}
	}
	return nil
}
