package listfmt

import (
	"strings"

	"golang.org/x/text/unicode/bidi"
)

// Builder accumulates pattern literals and substituted values into the final
// formatted string. The formatter drives one builder per call and never
// shares it, so implementations need not be safe for concurrent use.
type Builder interface {
	// AppendLiteral appends fixed pattern text verbatim.
	AppendLiteral(text string)

	// AppendPlaceholder appends a substituted value: an input item or the
	// part of the list combined so far.
	AppendPlaceholder(value string)

	// Finalize returns the accumulated string. It is called exactly once;
	// the builder must not be reused afterwards.
	Finalize() string
}

// NewBuilder returns the default builder, backed by a strings.Builder.
func NewBuilder() Builder {
	return &stringOutput{}
}

type stringOutput struct {
	sb strings.Builder
}

func (o *stringOutput) AppendLiteral(text string)      { o.sb.WriteString(text) }
func (o *stringOutput) AppendPlaceholder(value string) { o.sb.WriteString(value) }
func (o *stringOutput) Finalize() string               { return o.sb.String() }

// Directional isolates from Unicode bidirectional formatting.
const (
	fsi = "\u2068" // FIRST STRONG ISOLATE
	pdi = "\u2069" // POP DIRECTIONAL ISOLATE
)

// NewIsolatingBuilder returns a builder that wraps substituted values
// containing right-to-left text in FIRST STRONG ISOLATE / POP DIRECTIONAL
// ISOLATE marks, so that a mixed-direction item cannot visually reorder the
// separators around it. Literals and purely left-to-right values pass
// through untouched.
func NewIsolatingBuilder() Builder {
	return &isolatingOutput{}
}

type isolatingOutput struct {
	sb strings.Builder
}

func (o *isolatingOutput) AppendLiteral(text string) { o.sb.WriteString(text) }

func (o *isolatingOutput) AppendPlaceholder(value string) {
	if !containsRTL(value) {
		o.sb.WriteString(value)
		return
	}
	o.sb.WriteString(fsi)
	o.sb.WriteString(value)
	o.sb.WriteString(pdi)
}

func (o *isolatingOutput) Finalize() string { return o.sb.String() }

// containsRTL reports whether the value carries any rune with a
// right-to-left bidi class.
func containsRTL(value string) bool {
	for _, r := range value {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
	}
	return false
}
