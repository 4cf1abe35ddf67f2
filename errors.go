package listfmt

import "errors"

var (
	// ErrMalformedPattern is returned when a pattern source does not contain
	// exactly one {0} and one {1} placeholder in that order.
	ErrMalformedPattern = errors.New("listfmt: malformed pattern")

	// ErrMissingPattern is returned when a pattern set lacks one of the four
	// required roles (pair, start, middle, end).
	ErrMissingPattern = errors.New("listfmt: missing pattern")

	// ErrNotFound is returned when no pattern set is registered for the
	// requested locale, type, and style.
	ErrNotFound = errors.New("listfmt: pattern set not found")

	// ErrInvalidFile is returned by the directory loaders for files that do
	// not follow the {locale}/{type} layout or cannot be parsed.
	ErrInvalidFile = errors.New("listfmt: invalid pattern file")

	// ErrEmptyLocale is returned when a locale identifier is required but empty.
	ErrEmptyLocale = errors.New("listfmt: locale cannot be empty")

	// ErrUnknownType is returned for a list type outside Types().
	ErrUnknownType = errors.New("listfmt: unknown list type")

	// ErrUnknownStyle is returned for a style outside Styles().
	ErrUnknownStyle = errors.New("listfmt: unknown style")

	// ErrNilProvider is returned when a nil Provider is supplied.
	ErrNilProvider = errors.New("listfmt: provider cannot be nil")

	// ErrNilAlphabet is returned when a nil overlap alphabet is supplied.
	ErrNilAlphabet = errors.New("listfmt: overlap alphabet cannot be nil")

	// ErrNoBuilder is returned by FormatTo when the builder is nil.
	ErrNoBuilder = errors.New("listfmt: builder cannot be nil")
)
