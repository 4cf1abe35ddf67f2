package listfmt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/listfmt"
)

func TestNewJoiner(t *testing.T) {
	t.Parallel()

	t.Run("nil registry uses the default registry", func(t *testing.T) {
		t.Parallel()
		j, err := listfmt.NewJoiner(nil, "en", listfmt.Long)
		require.NoError(t, err)
		require.Equal(t, "a, b, and c", j.And("a", "b", "c"))
	})

	t.Run("empty locale uses the registry default", func(t *testing.T) {
		t.Parallel()
		registry, err := listfmt.NewRegistry(
			listfmt.WithBuiltins(),
			listfmt.WithDefaultLocale("fr"),
		)
		require.NoError(t, err)

		j, err := listfmt.NewJoiner(registry, "", listfmt.Long)
		require.NoError(t, err)
		require.Equal(t, "fr", j.Locale())
		require.Equal(t, "a, b et c", j.And("a", "b", "c"))
	})

	t.Run("empty style defaults to long", func(t *testing.T) {
		t.Parallel()
		j, err := listfmt.NewJoiner(nil, "en", "")
		require.NoError(t, err)
		require.Equal(t, listfmt.Long, j.Style())
	})

	t.Run("negotiates the locale", func(t *testing.T) {
		t.Parallel()
		j, err := listfmt.NewJoiner(nil, "es-MX", "")
		require.NoError(t, err)
		require.Equal(t, "es", j.Locale())
		require.Equal(t, "rojo y verde", j.And("rojo", "verde"))
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()
		_, err := listfmt.NewJoiner(nil, "en", listfmt.Style("fancy"))
		require.ErrorIs(t, err, listfmt.ErrUnknownStyle)
	})

	t.Run("fails when a list type has no data", func(t *testing.T) {
		t.Parallel()
		registry, err := listfmt.NewRegistry(
			listfmt.WithPatternSource("en", listfmt.Conjunction, listfmt.Long,
				"{0} and {1}", "{0}, {1}", "{0}, {1}", "{0}, and {1}"),
		)
		require.NoError(t, err)

		j, err := listfmt.NewJoiner(registry, "en", listfmt.Long)
		require.ErrorIs(t, err, listfmt.ErrNotFound)
		require.Nil(t, j)
	})
}

func TestJoinerFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		locale   string
		style    listfmt.Style
		format   func(j *listfmt.Joiner) string
		expected string
	}{
		{
			name:     "conjunction",
			locale:   "en",
			style:    listfmt.Long,
			format:   func(j *listfmt.Joiner) string { return j.And("a", "b", "c") },
			expected: "a, b, and c",
		},
		{
			name:     "disjunction",
			locale:   "en",
			style:    listfmt.Long,
			format:   func(j *listfmt.Joiner) string { return j.Or("a", "b", "c") },
			expected: "a, b, or c",
		},
		{
			name:     "unit",
			locale:   "en",
			style:    listfmt.Long,
			format:   func(j *listfmt.Joiner) string { return j.Unit("3 ft", "7 in") },
			expected: "3 ft, 7 in",
		},
		{
			name:     "localized conjunction",
			locale:   "de",
			style:    listfmt.Long,
			format:   func(j *listfmt.Joiner) string { return j.And("Milch", "Brot") },
			expected: "Milch und Brot",
		},
		{
			name:     "localized disjunction",
			locale:   "de",
			style:    listfmt.Long,
			format:   func(j *listfmt.Joiner) string { return j.Or("heute", "morgen") },
			expected: "heute oder morgen",
		},
		{
			name:     "narrow style",
			locale:   "en",
			style:    listfmt.Narrow,
			format:   func(j *listfmt.Joiner) string { return j.And("a", "b", "c") },
			expected: "a, b, c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			j, err := listfmt.NewJoiner(nil, tt.locale, tt.style)
			require.NoError(t, err)
			require.Equal(t, tt.expected, tt.format(j))
		})
	}
}

func TestJoinerFormatter(t *testing.T) {
	t.Parallel()

	j, err := listfmt.NewJoiner(nil, "en", listfmt.Short)
	require.NoError(t, err)

	for _, listType := range listfmt.Types() {
		f := j.Formatter(listType)
		require.NotNil(t, f)
		require.Equal(t, listType, f.Type())
		require.Equal(t, listfmt.Short, f.Style())
	}

	require.Nil(t, j.Formatter(listfmt.Type("bogus")))
}

func TestPackageShortcuts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		join     func(locale string, items ...string) string
		locale   string
		items    []string
		expected string
	}{
		{"and", listfmt.And, "en", []string{"a", "b", "c"}, "a, b, and c"},
		{"or", listfmt.Or, "en", []string{"a", "b"}, "a or b"},
		{"units", listfmt.Units, "en", []string{"3 ft", "7 in"}, "3 ft, 7 in"},
		{"localized", listfmt.And, "es", []string{"Mariana", "Ines"}, "Mariana e Ines"},
		{"regional locale", listfmt.Or, "de-AT", []string{"heute", "morgen"}, "heute oder morgen"},
		{"unknown locale falls back", listfmt.And, "tlh", []string{"a", "b"}, "a and b"},
		{"empty locale falls back", listfmt.And, "", []string{"a", "b"}, "a and b"},
		{"no items", listfmt.And, "en", nil, ""},
		{"single item", listfmt.Units, "ja", []string{"3 m"}, "3 m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, tt.join(tt.locale, tt.items...))
		})
	}
}
