// Package assets resolves logical image names from catalog metadata to
// concrete asset names. Content authors and asset bundles rarely agree on
// naming, so resolution is a prioritized candidate cascade: declared names
// first, then variants derived from the destination title and id, then a
// stripped-name fallback that never fails.
package assets

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ExistsFunc reports whether a named asset is present. Injected so the
// resolver stays pure and testable against any asset backend.
type ExistsFunc func(name string) bool

// StripExtension returns the substring before the last dot, or the name
// unchanged when it has no extension.
func StripExtension(name string) string {
	if dot := strings.LastIndex(name, "."); dot >= 0 {
		return name[:dot]
	}
	return name
}

// Resolve maps the declared image names of a destination to asset names known
// to exist, in preference order.
//
// Phase 1 tries each declared name verbatim and extension-stripped, keeping
// the first hit per name in declared order. Any phase 1 hit short-circuits
// the rest. Phase 2 derives candidates from title and id via Variants, each
// tried with and without its extension, deduplicated in first-seen order.
// Phase 3 falls back to the declared names with extensions stripped, even if
// none of them is known to exist, so callers always get a deterministic
// suggestion list. The result is empty only if imageNames is empty.
func Resolve(imageNames []string, title, id string, exists ExistsFunc) []string {
	results := make([]string, 0, len(imageNames))
	for _, raw := range imageNames {
		for _, candidate := range []string{raw, StripExtension(raw)} {
			if exists(candidate) {
				results = append(results, candidate)
				break
			}
		}
	}
	if len(results) > 0 {
		return results
	}

	seen := make(map[string]struct{})
	for _, base := range []string{title, id} {
		for _, candidate := range Variants(base) {
			for _, name := range []string{candidate, StripExtension(candidate)} {
				if _, dup := seen[name]; dup {
					continue
				}
				seen[name] = struct{}{}
				if exists(name) {
					results = append(results, name)
				}
			}
		}
	}
	if len(results) > 0 {
		return results
	}

	stripped := make([]string, 0, len(imageNames))
	for _, raw := range imageNames {
		stripped = append(stripped, StripExtension(raw))
	}
	return stripped
}

// Variants generates the derived candidate names for a base string in a fixed
// order: the raw string, whitespace rewrites, case rewrites, punctuation
// stripping, a diacritic-folded lowercase form, and joins of the first one to
// three words ("New York City" -> "New", "NewYork", "NewYorkCity"). Output
// may contain duplicates; callers deduplicate while scanning.
func Variants(base string) []string {
	v := []string{
		base,
		strings.ReplaceAll(base, " ", ""),
		strings.ReplaceAll(base, " ", "_"),
		strings.ReplaceAll(base, " ", "-"),
		strings.ToLower(base),
		cases.Title(language.Und).String(base),
	}

	withoutPunct := stripPunctuation(base)
	v = append(v, withoutPunct, strings.ReplaceAll(withoutPunct, " ", ""))
	v = append(v, strings.ToLower(foldDiacritics(base)))

	words := strings.Fields(base)
	for i := 1; i <= len(words) && i <= 3; i++ {
		joined := strings.Join(words[:i], "")
		v = append(v, joined, strings.ToLower(joined))
		v = append(v, strings.ToLower(strings.Join(words[:i], "_")))
	}
	return v
}

func stripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, s)
}

func foldDiacritics(s string) string {
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(folder, s)
	if err != nil {
		return s
	}
	return out
}
