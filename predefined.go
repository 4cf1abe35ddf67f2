package listfmt

import "fmt"

// WithBuiltins returns a RegistryOption that registers the built-in pattern
// data. It covers all three list types and all three styles for: ar, cs, de,
// en, en-GB, es, fr, he, it, ja, ko, nl, pl, pt, ru, sv, tr, uk, zh.
//
// The data derives from CLDR list patterns, including the conditional forms:
// Spanish "y"/"o" become "e"/"u" before words they would collide with, and
// the Hebrew vav takes a hyphen before words in foreign scripts.
func WithBuiltins() RegistryOption {
	return func(r *Registry) error {
		for locale, entry := range builtins {
			norm := normalizeLocale(locale)
			for t, bt := range map[Type]builtinType{
				Conjunction: entry.conjunction,
				Disjunction: entry.disjunction,
				Unit:        entry.unit,
			} {
				for s, bs := range map[Style]builtinStyle{
					Long:   bt.long,
					Short:  bt.short,
					Narrow: bt.narrow,
				} {
					set, err := bs.patternSet()
					if err != nil {
						return fmt.Errorf("builtin %s/%s/%s: %w", locale, t, s, err)
					}
					r.sets[buildKey(norm, t, s)] = set
				}
			}
		}
		return nil
	}
}

// builtinEntry holds one locale's pattern data for all list types.
type builtinEntry struct {
	conjunction builtinType
	disjunction builtinType
	unit        builtinType
}

// builtinType holds one list type's pattern data for all styles.
type builtinType struct {
	long, short, narrow builtinStyle
}

// builtinStyle holds the four role sources of one style. An optional special
// case applies to the pair and end roles, the roles that carry the joining
// word.
type builtinStyle struct {
	pair, start, middle, end string
	special                  *builtinSpecial
}

// builtinSpecial is a conditional replacement: when the element after the
// junction matches condition, then replaces the default source.
type builtinSpecial struct {
	condition string
	then      string
}

func (s builtinStyle) patternSet() (PatternSet, error) {
	set, err := ParsePatternSet(s.pair, s.start, s.middle, s.end)
	if err != nil {
		return PatternSet{}, err
	}
	if s.special == nil {
		return set, nil
	}

	alt, err := ParsePattern(s.special.then)
	if err != nil {
		return PatternSet{}, err
	}
	if set.Pair, err = set.Pair.WithSpecialCase(s.special.condition, alt); err != nil {
		return PatternSet{}, err
	}
	if set.End, err = set.End.WithSpecialCase(s.special.condition, alt); err != nil {
		return PatternSet{}, err
	}
	return set, nil
}

// uniform returns a style using src for all four roles.
func uniform(src string) builtinStyle {
	return builtinStyle{pair: src, start: src, middle: src, end: src}
}

// commaList returns a style with "{0}, {1}" for start and middle and the
// given pair and end sources.
func commaList(pair, end string) builtinStyle {
	return builtinStyle{pair: pair, start: "{0}, {1}", middle: "{0}, {1}", end: end}
}

// allStyles returns a type using one style for long, short, and narrow.
func allStyles(s builtinStyle) builtinType {
	return builtinType{long: s, short: s, narrow: s}
}

func (s builtinStyle) withSpecial(sp *builtinSpecial) builtinStyle {
	s.special = sp
	return s
}

var (
	// Spanish "y" becomes "e" before words starting with an i sound, and
	// "o" becomes "u" before words starting with an o sound (including the
	// numbers 8 and 11).
	esBeforeI = &builtinSpecial{condition: `(?i)^(i.*|hi|hi[^ae].*)$`, then: "{0} e {1}"}
	esBeforeO = &builtinSpecial{condition: `(?i)^((o|ho|8).*|11)$`, then: "{0} u {1}"}

	// Hebrew vav attaches with a hyphen before words in foreign scripts.
	heBeforeForeign = &builtinSpecial{condition: `^[^\p{Hebrew}]`, then: "{0} ו-{1}"}
)

var builtins = map[string]builtinEntry{
	// English
	"en": {
		conjunction: builtinType{
			long:   commaList("{0} and {1}", "{0}, and {1}"),
			short:  commaList("{0} & {1}", "{0}, & {1}"),
			narrow: uniform("{0}, {1}"),
		},
		disjunction: allStyles(commaList("{0} or {1}", "{0}, or {1}")),
		unit: builtinType{
			long:   uniform("{0}, {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// British English drops the Oxford comma.
	"en-GB": {
		conjunction: builtinType{
			long:   commaList("{0} and {1}", "{0} and {1}"),
			short:  commaList("{0} & {1}", "{0} & {1}"),
			narrow: uniform("{0}, {1}"),
		},
		disjunction: allStyles(commaList("{0} or {1}", "{0} or {1}")),
		unit: builtinType{
			long:   uniform("{0}, {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Spanish
	"es": {
		conjunction: allStyles(commaList("{0} y {1}", "{0} y {1}").withSpecial(esBeforeI)),
		disjunction: allStyles(commaList("{0} o {1}", "{0} o {1}").withSpecial(esBeforeO)),
		unit: builtinType{
			long:   commaList("{0} y {1}", "{0} y {1}").withSpecial(esBeforeI),
			short:  commaList("{0} y {1}", "{0} y {1}").withSpecial(esBeforeI),
			narrow: uniform("{0} {1}"),
		},
	},

	// French
	"fr": {
		conjunction: allStyles(commaList("{0} et {1}", "{0} et {1}")),
		disjunction: allStyles(commaList("{0} ou {1}", "{0} ou {1}")),
		unit: builtinType{
			long:   commaList("{0} et {1}", "{0} et {1}"),
			short:  commaList("{0} et {1}", "{0} et {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// German
	"de": {
		conjunction: builtinType{
			long:   commaList("{0} und {1}", "{0} und {1}"),
			short:  commaList("{0} und {1}", "{0} und {1}"),
			narrow: uniform("{0}, {1}"),
		},
		disjunction: allStyles(commaList("{0} oder {1}", "{0} oder {1}")),
		unit: builtinType{
			long:   commaList("{0} und {1}", "{0} und {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Italian
	"it": {
		conjunction: builtinType{
			long:   commaList("{0} e {1}", "{0} e {1}"),
			short:  commaList("{0} e {1}", "{0} e {1}"),
			narrow: uniform("{0}, {1}"),
		},
		disjunction: allStyles(commaList("{0} o {1}", "{0} o {1}")),
		unit: builtinType{
			long:   commaList("{0} e {1}", "{0} e {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Portuguese
	"pt": {
		conjunction: allStyles(commaList("{0} e {1}", "{0} e {1}")),
		disjunction: allStyles(commaList("{0} ou {1}", "{0} ou {1}")),
		unit: builtinType{
			long:   commaList("{0} e {1}", "{0} e {1}"),
			short:  commaList("{0} e {1}", "{0} e {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Dutch
	"nl": {
		conjunction: allStyles(commaList("{0} en {1}", "{0} en {1}")),
		disjunction: allStyles(commaList("{0} of {1}", "{0} of {1}")),
		unit: builtinType{
			long:   commaList("{0} en {1}", "{0} en {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Polish
	"pl": {
		conjunction: allStyles(commaList("{0} i {1}", "{0} i {1}")),
		disjunction: allStyles(commaList("{0} lub {1}", "{0} lub {1}")),
		unit: builtinType{
			long:   commaList("{0} i {1}", "{0} i {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Russian
	"ru": {
		conjunction: allStyles(commaList("{0} и {1}", "{0} и {1}")),
		disjunction: allStyles(commaList("{0} или {1}", "{0} или {1}")),
		unit: builtinType{
			long:   commaList("{0} и {1}", "{0} и {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Ukrainian
	"uk": {
		conjunction: allStyles(commaList("{0} і {1}", "{0} і {1}")),
		disjunction: allStyles(commaList("{0} або {1}", "{0} або {1}")),
		unit: builtinType{
			long:   commaList("{0} і {1}", "{0} і {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Czech
	"cs": {
		conjunction: allStyles(commaList("{0} a {1}", "{0} a {1}")),
		disjunction: allStyles(commaList("{0} nebo {1}", "{0} nebo {1}")),
		unit: builtinType{
			long:   commaList("{0} a {1}", "{0} a {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Turkish
	"tr": {
		conjunction: allStyles(commaList("{0} ve {1}", "{0} ve {1}")),
		disjunction: allStyles(commaList("{0} veya {1}", "{0} veya {1}")),
		unit: builtinType{
			long:   commaList("{0} ve {1}", "{0} ve {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Swedish
	"sv": {
		conjunction: allStyles(commaList("{0} och {1}", "{0} och {1}")),
		disjunction: allStyles(commaList("{0} eller {1}", "{0} eller {1}")),
		unit: builtinType{
			long:   commaList("{0} och {1}", "{0} och {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Japanese
	"ja": {
		conjunction: allStyles(uniform("{0}、{1}")),
		disjunction: allStyles(builtinStyle{
			pair:   "{0}または{1}",
			start:  "{0}、{1}",
			middle: "{0}、{1}",
			end:    "{0}、または{1}",
		}),
		unit: builtinType{
			long:   uniform("{0} {1}"),
			short:  uniform("{0} {1}"),
			narrow: uniform("{0}{1}"),
		},
	},

	// Chinese
	"zh": {
		conjunction: builtinType{
			long: builtinStyle{
				pair:   "{0}和{1}",
				start:  "{0}、{1}",
				middle: "{0}、{1}",
				end:    "{0}和{1}",
			},
			short: builtinStyle{
				pair:   "{0}和{1}",
				start:  "{0}、{1}",
				middle: "{0}、{1}",
				end:    "{0}和{1}",
			},
			narrow: uniform("{0}、{1}"),
		},
		disjunction: allStyles(builtinStyle{
			pair:   "{0}或{1}",
			start:  "{0}、{1}",
			middle: "{0}、{1}",
			end:    "{0}或{1}",
		}),
		unit: allStyles(uniform("{0}{1}")),
	},

	// Korean
	"ko": {
		conjunction: builtinType{
			long:   commaList("{0} 및 {1}", "{0} 및 {1}"),
			short:  commaList("{0} 및 {1}", "{0} 및 {1}"),
			narrow: uniform("{0}, {1}"),
		},
		disjunction: allStyles(commaList("{0} 또는 {1}", "{0} 또는 {1}")),
		unit: builtinType{
			long:   uniform("{0}, {1}"),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},

	// Arabic joins every element with the conjunction.
	"ar": {
		conjunction: allStyles(uniform("{0} و{1}")),
		disjunction: allStyles(uniform("{0} أو {1}")),
		unit: builtinType{
			long:   uniform("{0} و{1}"),
			short:  uniform("{0} و{1}"),
			narrow: uniform("{0}، {1}"),
		},
	},

	// Hebrew
	"he": {
		conjunction: allStyles(commaList("{0} ו{1}", "{0} ו{1}").withSpecial(heBeforeForeign)),
		disjunction: allStyles(commaList("{0} או {1}", "{0} או {1}")),
		unit: builtinType{
			long:   commaList("{0} ו{1}", "{0} ו{1}").withSpecial(heBeforeForeign),
			short:  uniform("{0}, {1}"),
			narrow: uniform("{0} {1}"),
		},
	},
}
