package listfmt

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents excessive work on oversized
// Accept-Language headers.
const maxAcceptLanguageLength = 4096

// Match returns the registered locale that best serves the requested
// locales, in preference order. Unparseable identifiers are skipped; when
// nothing matches, the default locale is returned.
func (r *Registry) Match(requested ...string) string {
	if r.matcher == nil {
		return r.defaultLocale
	}

	tags := make([]language.Tag, 0, len(requested))
	for _, req := range requested {
		if tag, err := language.Parse(strings.TrimSpace(req)); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		return r.defaultLocale
	}

	_, index, _ := r.matcher.Match(tags...)
	return r.matcherLocales[index]
}

// MatchAcceptLanguage returns the registered locale that best serves an
// HTTP Accept-Language header, honoring quality values. Empty or malformed
// headers resolve to the default locale.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
func (r *Registry) MatchAcceptLanguage(header string) string {
	if header == "" || r.matcher == nil {
		return r.defaultLocale
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return r.defaultLocale
	}

	_, index, _ := r.matcher.Match(tags...)
	return r.matcherLocales[index]
}

// buildMatcher prepares the negotiation state over the registered locales.
// The default locale is listed first so the matcher falls back to it.
func (r *Registry) buildMatcher() {
	for _, locale := range r.locales {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		r.tags = append(r.tags, tag)
		r.matcherLocales = append(r.matcherLocales, locale)
	}
	if len(r.tags) > 0 {
		r.matcher = language.NewMatcher(r.tags)
	}
}

// normalizeLocale canonicalizes a locale identifier ("EN_us" becomes
// "en-US"). Identifiers that do not parse as BCP 47 tags are kept verbatim
// in lowercase so custom registry keys still round-trip.
func normalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if tag, err := language.Parse(locale); err == nil {
		return tag.String()
	}
	return strings.ToLower(locale)
}
