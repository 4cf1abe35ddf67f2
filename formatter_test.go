package listfmt_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listfmt"
)

func mustPatternSet(t *testing.T, pair, start, middle, end string) listfmt.PatternSet {
	t.Helper()
	set, err := listfmt.ParsePatternSet(pair, start, middle, end)
	require.NoError(t, err)
	return set
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates formatter with defaults", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New()
		require.NoError(t, err)
		require.NotNil(t, f)
		require.Equal(t, "en", f.Locale())
		require.Equal(t, listfmt.Conjunction, f.Type())
		require.Equal(t, listfmt.Long, f.Style())
	})

	t.Run("returns error for empty locale", func(t *testing.T) {
		t.Parallel()
		_, err := listfmt.New(listfmt.WithLocale(""))
		require.Error(t, err)
		require.ErrorIs(t, err, listfmt.ErrEmptyLocale)
	})

	t.Run("returns error for unknown type", func(t *testing.T) {
		t.Parallel()
		_, err := listfmt.New(listfmt.WithType(listfmt.Type("bogus")))
		require.Error(t, err)
		require.ErrorIs(t, err, listfmt.ErrUnknownType)
	})

	t.Run("returns error for unknown style", func(t *testing.T) {
		t.Parallel()
		_, err := listfmt.New(listfmt.WithStyle(listfmt.Style("bogus")))
		require.Error(t, err)
		require.ErrorIs(t, err, listfmt.ErrUnknownStyle)
	})

	t.Run("returns error for nil provider", func(t *testing.T) {
		t.Parallel()
		_, err := listfmt.New(listfmt.WithProvider(nil))
		require.Error(t, err)
		require.ErrorIs(t, err, listfmt.ErrNilProvider)
	})

	t.Run("returns error for nil overlap alphabet", func(t *testing.T) {
		t.Parallel()
		_, err := listfmt.New(listfmt.WithOverlapAlphabet(nil))
		require.Error(t, err)
		require.ErrorIs(t, err, listfmt.ErrNilAlphabet)
	})

	t.Run("validates explicit pattern set eagerly", func(t *testing.T) {
		t.Parallel()
		_, err := listfmt.New(listfmt.WithPatternSet(listfmt.PatternSet{}))
		require.Error(t, err)
		require.ErrorIs(t, err, listfmt.ErrMissingPattern)
	})

	t.Run("reports unresolvable locale data eagerly", func(t *testing.T) {
		t.Parallel()
		registry, err := listfmt.NewRegistry(
			listfmt.WithDefaultLocale("fr"),
			listfmt.WithPatternSource("fr", listfmt.Conjunction, listfmt.Long,
				"{0} et {1}", "{0}, {1}", "{0}, {1}", "{0} et {1}"),
		)
		require.NoError(t, err)

		_, err = listfmt.New(
			listfmt.WithProvider(registry),
			listfmt.WithLocale("de"),
			listfmt.WithType(listfmt.Disjunction),
		)
		require.Error(t, err)
		require.ErrorIs(t, err, listfmt.ErrNotFound)
	})
}

func TestFormat(t *testing.T) {
	t.Parallel()

	f, err := listfmt.New(listfmt.WithLocale("en"), listfmt.WithType(listfmt.Conjunction))
	require.NoError(t, err)

	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{"no items", nil, ""},
		{"single item", []string{"A"}, "A"},
		{"two items use the pair pattern", []string{"A", "B"}, "A and B"},
		{"three items", []string{"A", "B", "C"}, "A, B, and C"},
		{"four items", []string{"A", "B", "C", "D"}, "A, B, C, and D"},
		{"five items", []string{"A", "B", "C", "D", "E"}, "A, B, C, D, and E"},
		{"empty strings are items", []string{"", ""}, " and "},
		{"single empty string", []string{""}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, f.Format(tt.items...))
		})
	}
}

func TestFormatTypesAndStyles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		listType listfmt.Type
		style    listfmt.Style
		items    []string
		expected string
	}{
		{"conjunction long", listfmt.Conjunction, listfmt.Long, []string{"A", "B", "C"}, "A, B, and C"},
		{"conjunction short", listfmt.Conjunction, listfmt.Short, []string{"A", "B", "C"}, "A, B, & C"},
		{"conjunction short pair", listfmt.Conjunction, listfmt.Short, []string{"A", "B"}, "A & B"},
		{"conjunction narrow", listfmt.Conjunction, listfmt.Narrow, []string{"A", "B", "C"}, "A, B, C"},
		{"disjunction long", listfmt.Disjunction, listfmt.Long, []string{"A", "B", "C"}, "A, B, or C"},
		{"disjunction long pair", listfmt.Disjunction, listfmt.Long, []string{"A", "B"}, "A or B"},
		{"unit long", listfmt.Unit, listfmt.Long, []string{"3 ft", "7 in"}, "3 ft, 7 in"},
		{"unit narrow", listfmt.Unit, listfmt.Narrow, []string{"A", "B", "C"}, "A B C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := listfmt.New(
				listfmt.WithLocale("en"),
				listfmt.WithType(tt.listType),
				listfmt.WithStyle(tt.style),
			)
			require.NoError(t, err)
			require.Equal(t, tt.expected, f.Format(tt.items...))
		})
	}
}

func TestFormatLocales(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		locale   string
		listType listfmt.Type
		items    []string
		expected string
	}{
		{"en-GB has no oxford comma", "en-GB", listfmt.Conjunction, []string{"A", "B", "C"}, "A, B and C"},
		{"es conjunction", "es", listfmt.Conjunction, []string{"rojo", "verde", "azul"}, "rojo, verde y azul"},
		{"fr conjunction", "fr", listfmt.Conjunction, []string{"A", "B", "C"}, "A, B et C"},
		{"de conjunction", "de", listfmt.Conjunction, []string{"Milch", "Brot", "Eier"}, "Milch, Brot und Eier"},
		{"de disjunction", "de", listfmt.Disjunction, []string{"heute", "morgen"}, "heute oder morgen"},
		{"it conjunction pair", "it", listfmt.Conjunction, []string{"A", "B"}, "A e B"},
		{"pt conjunction", "pt", listfmt.Conjunction, []string{"A", "B", "C"}, "A, B e C"},
		{"nl conjunction pair", "nl", listfmt.Conjunction, []string{"A", "B"}, "A en B"},
		{"pl conjunction", "pl", listfmt.Conjunction, []string{"A", "B", "C"}, "A, B i C"},
		{"ru conjunction", "ru", listfmt.Conjunction, []string{"A", "B", "C"}, "A, B и C"},
		{"uk conjunction pair", "uk", listfmt.Conjunction, []string{"A", "B"}, "A і B"},
		{"cs conjunction", "cs", listfmt.Conjunction, []string{"A", "B", "C"}, "A, B a C"},
		{"tr conjunction pair", "tr", listfmt.Conjunction, []string{"A", "B"}, "A ve B"},
		{"sv conjunction", "sv", listfmt.Conjunction, []string{"A", "B", "C"}, "A, B och C"},
		{"ja conjunction", "ja", listfmt.Conjunction, []string{"A", "B", "C"}, "A、B、C"},
		{"ja disjunction", "ja", listfmt.Disjunction, []string{"A", "B", "C"}, "A、B、またはC"},
		{"zh conjunction", "zh", listfmt.Conjunction, []string{"A", "B", "C"}, "A、B和C"},
		{"zh unit pair", "zh", listfmt.Unit, []string{"A", "B"}, "AB"},
		{"ko conjunction", "ko", listfmt.Conjunction, []string{"A", "B", "C"}, "A, B 및 C"},
		{"ar conjunction", "ar", listfmt.Conjunction, []string{"A", "B", "C"}, "A وB وC"},
		{"ar disjunction pair", "ar", listfmt.Disjunction, []string{"A", "B"}, "A أو B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := listfmt.New(listfmt.WithLocale(tt.locale), listfmt.WithType(tt.listType))
			require.NoError(t, err)
			require.Equal(t, tt.expected, f.Format(tt.items...))
		})
	}
}

func TestFormatSpecialCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		locale   string
		listType listfmt.Type
		items    []string
		expected string
	}{
		{"es y becomes e before i", "es", listfmt.Conjunction, []string{"Mariana", "Ines"}, "Mariana e Ines"},
		{"es y becomes e before hi consonant", "es", listfmt.Conjunction, []string{"tierra", "hijos"}, "tierra e hijos"},
		{"es y stays before hie", "es", listfmt.Conjunction, []string{"agua", "hierro"}, "agua y hierro"},
		{"es end junction is conditional", "es", listfmt.Conjunction, []string{"uno", "dos", "Ines"}, "uno, dos e Ines"},
		{"es middle junction is not conditional", "es", listfmt.Conjunction, []string{"uno", "Ines", "dos"}, "uno, Ines y dos"},
		{"es o becomes u before o", "es", listfmt.Disjunction, []string{"siete", "ocho"}, "siete u ocho"},
		{"es o stays otherwise", "es", listfmt.Disjunction, []string{"siete", "nueve"}, "siete o nueve"},
		{"es o becomes u before 11", "es", listfmt.Disjunction, []string{"diez", "11"}, "diez u 11"},
		{"he vav before hebrew", "he", listfmt.Conjunction, []string{"א", "ב"}, "א וב"},
		{"he vav takes hyphen before foreign script", "he", listfmt.Conjunction, []string{"א", "Dan"}, "א ו-Dan"},
		{"he end junction is conditional", "he", listfmt.Conjunction, []string{"א", "ב", "Dan"}, "א, ב ו-Dan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, err := listfmt.New(listfmt.WithLocale(tt.locale), listfmt.WithType(tt.listType))
			require.NoError(t, err)
			require.Equal(t, tt.expected, f.Format(tt.items...))
		})
	}
}

func TestFormatLocaleFallback(t *testing.T) {
	t.Parallel()

	t.Run("regional locale falls back to its parent", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New(listfmt.WithLocale("es-MX"))
		require.NoError(t, err)
		require.Equal(t, "A y B", f.Format("A", "B"))
	})

	t.Run("parent fallback keeps the list type", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New(listfmt.WithLocale("de-AT"), listfmt.WithType(listfmt.Disjunction))
		require.NoError(t, err)
		require.Equal(t, "A oder B", f.Format("A", "B"))
	})

	t.Run("unknown locale falls back to the default", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New(listfmt.WithLocale("xx-unknown"))
		require.NoError(t, err)
		require.Equal(t, "A and B", f.Format("A", "B"))
	})
}

func TestFormatPatternNesting(t *testing.T) {
	t.Parallel()

	// Patterns with leading and trailing literals must nest like repeated
	// substitution into slot 0: end(middle(start(a, b), c), d).
	set := mustPatternSet(t, "{0}+{1}", "<{0}|{1}>", "[{0};{1}]", "({0}+{1})")
	f, err := listfmt.New(listfmt.WithPatternSet(set))
	require.NoError(t, err)

	tests := []struct {
		name     string
		items    []string
		expected string
	}{
		{"pair", []string{"A", "B"}, "A+B"},
		{"three items", []string{"A", "B", "C"}, "(<A|B>+C)"},
		{"four items", []string{"A", "B", "C", "D"}, "([<A|B>;C]+D)"},
		{"five items", []string{"A", "B", "C", "D", "E"}, "([[<A|B>;C];D]+E)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, f.Format(tt.items...))
		})
	}
}

func TestFormatPatternMerging(t *testing.T) {
	t.Parallel()

	// The start and middle patterns carry a trailing comma that overlaps the
	// comma opening the next junction.
	set := mustPatternSet(t, "{0} and {1}", "{0}, {1},", "{0}, {1},", "{0}, and {1}")

	t.Run("overlap collapses to a single separator", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New(listfmt.WithPatternSet(set))
		require.NoError(t, err)
		require.Equal(t, "A, B, C, D, and E", f.Format("A", "B", "C", "D", "E"))
	})

	t.Run("restricted alphabet leaves junctions untouched", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New(
			listfmt.WithPatternSet(set),
			listfmt.WithOverlapAlphabet(func(r rune) bool { return r == ';' }),
		)
		require.NoError(t, err)
		require.Equal(t, "A, B,, C,, D,, and E", f.Format("A", "B", "C", "D", "E"))
	})
}

// recordingBuilder captures the fragment sequence the formatter emits.
type recordingBuilder struct {
	fragments []string
}

func (b *recordingBuilder) AppendLiteral(text string) {
	b.fragments = append(b.fragments, "lit:"+text)
}

func (b *recordingBuilder) AppendPlaceholder(value string) {
	b.fragments = append(b.fragments, "val:"+value)
}

func (b *recordingBuilder) Finalize() string {
	return strings.Join(b.fragments, "|")
}

func TestFormatTo(t *testing.T) {
	t.Parallel()

	t.Run("distinguishes literals from substituted values", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New(listfmt.WithLocale("en"))
		require.NoError(t, err)

		b := &recordingBuilder{}
		require.NoError(t, f.FormatTo(b, "A", "B", "C"))
		require.Equal(t, []string{
			"val:A",
			"lit:, ",
			"val:B",
			"lit:, and ",
			"val:C",
		}, b.fragments)
	})

	t.Run("leaves finalization to the caller", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New(listfmt.WithLocale("en"))
		require.NoError(t, err)

		b := &recordingBuilder{}
		require.NoError(t, f.FormatTo(b, "A", "B"))
		require.NoError(t, f.FormatTo(b, "C", "D"))
		require.Equal(t, "val:A|lit: and |val:B|val:C|lit: and |val:D", b.Finalize())
	})

	t.Run("returns error for nil builder", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New(listfmt.WithLocale("en"))
		require.NoError(t, err)

		err = f.FormatTo(nil, "A", "B")
		require.Error(t, err)
		require.ErrorIs(t, err, listfmt.ErrNoBuilder)
	})

	t.Run("accepts an isolating builder", func(t *testing.T) {
		t.Parallel()
		f, err := listfmt.New(listfmt.WithLocale("en"))
		require.NoError(t, err)

		b := listfmt.NewIsolatingBuilder()
		require.NoError(t, f.FormatTo(b, "Dan", "שלום"))
		require.Equal(t, "Dan and \u2068שלום\u2069", b.Finalize())
	})
}

func TestFormatDirectionIsolation(t *testing.T) {
	t.Parallel()

	f, err := listfmt.New(listfmt.WithLocale("en"), listfmt.WithDirectionIsolation())
	require.NoError(t, err)

	t.Run("wraps right-to-left items", func(t *testing.T) {
		t.Parallel()
		got := f.Format("Dan", "שלום")
		require.Equal(t, "Dan and \u2068שלום\u2069", got)
	})

	t.Run("wraps arabic-indic numbers", func(t *testing.T) {
		t.Parallel()
		got := f.Format("A", "١٢٣")
		require.Equal(t, "A and \u2068١٢٣\u2069", got)
	})

	t.Run("wraps a single item", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "\u2068ש\u2069", f.Format("ש"))
	})

	t.Run("leaves left-to-right lists untouched", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "A, B, and C", f.Format("A", "B", "C"))
	})
}

func TestFormatterAccessors(t *testing.T) {
	t.Parallel()

	f, err := listfmt.New(
		listfmt.WithLocale("es"),
		listfmt.WithType(listfmt.Disjunction),
		listfmt.WithStyle(listfmt.Short),
	)
	require.NoError(t, err)

	require.Equal(t, "es", f.Locale())
	require.Equal(t, listfmt.Disjunction, f.Type())
	require.Equal(t, listfmt.Short, f.Style())

	set := f.Patterns()
	require.NoError(t, set.Validate())
	require.Equal(t, "{0} o {1}", set.Pair.String())
}

func TestFormatter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	f, err := listfmt.New(listfmt.WithLocale("es"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 100)
	for i := range 100 {
		wg.Go(func() {
			results[i] = f.Format("uno", "dos", "Ines")
		})
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, "uno, dos e Ines", got)
	}
}
