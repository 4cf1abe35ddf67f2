package listfmt

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultOverlapAlphabet admits the runes that commonly make up list
// separators: Unicode whitespace and punctuation. Junction text outside the
// alphabet never participates in overlap collapsing.
func DefaultOverlapAlphabet(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}

// Matcher decides whether two patterns applied back to back would duplicate
// literal text at their junction, and computes the merged form.
//
// The junction of a left and a right pattern is the left pattern's trailing
// literal (after slot 1) meeting the right pattern's joining literal (after
// slot 0): once the accumulated fragment is substituted into the right
// pattern's slot 0, those two literals become adjacent in the output. When
// the trailing literal's end and the joining literal's start carry the same
// separator text, naive concatenation doubles it ("A,, B"); merging collapses
// the overlap to a single occurrence.
//
// The zero value uses DefaultOverlapAlphabet. Matchers are immutable and
// safe for concurrent use.
type Matcher struct {
	alphabet func(rune) bool
}

// NewMatcher returns a matcher restricted to the given overlap alphabet.
// A nil alphabet means DefaultOverlapAlphabet.
func NewMatcher(alphabet func(rune) bool) Matcher {
	return Matcher{alphabet: alphabet}
}

// CanMerge reports whether the junction of left and right carries
// overlapping separator text that Merge would collapse.
func (m Matcher) CanMerge(left, right Pattern) bool {
	return m.overlap(left, right) > 0
}

// Merge returns right with the junction overlap against left collapsed to a
// single occurrence of the shared text. The longest overlap wins (maximal
// munch). When CanMerge is false the result is right unchanged.
func (m Matcher) Merge(left, right Pattern) Pattern {
	k := m.overlap(left, right)
	if k == 0 {
		return right
	}
	merged := right
	merged.infix = right.infix[k:]
	return merged
}

// overlap returns the byte length of the longest suffix of left's trailing
// literal that both prefixes right's joining literal and consists entirely
// of overlap-alphabet runes.
func (m Matcher) overlap(left, right Pattern) int {
	trailing, joining := left.suffix, right.infix
	if trailing == "" || joining == "" {
		return 0
	}

	best := 0
	for i := len(trailing) - 1; i >= 0; i-- {
		if !utf8.RuneStart(trailing[i]) {
			continue
		}
		candidate := trailing[i:]
		if len(candidate) > len(joining) {
			break
		}
		if !strings.HasPrefix(joining, candidate) {
			continue
		}
		if !m.admits(candidate) {
			continue
		}
		best = len(candidate)
	}
	return best
}

func (m Matcher) admits(s string) bool {
	alphabet := m.alphabet
	if alphabet == nil {
		alphabet = DefaultOverlapAlphabet
	}
	for _, r := range s {
		if !alphabet(r) {
			return false
		}
	}
	return true
}
