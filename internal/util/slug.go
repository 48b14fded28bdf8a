// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Matches whitespace runs (for replacement with underscores).
	wordSeparatorRe = regexp.MustCompile(`\s+`)
	// Matches non-alphanumeric characters (except underscores).
	nonAlphanumericRe = regexp.MustCompile(`[^a-z0-9_]`)
	// Matches multiple consecutive underscores.
	multipleUnderscoreRe = regexp.MustCompile(`_+`)
)

// SeedSlug converts a record name to the deterministic id suffix used for
// seed records. The slug is the source of truth for seed identity, so the
// rules must stay stable across releases:
//
//  1. Unicode-fold accented characters to ASCII
//  2. Trim whitespace and lowercase
//  3. Replace whitespace runs with underscores
//  4. Remove non-alphanumeric characters (except underscores)
//  5. Collapse multiple underscores
//
// Examples:
//
//	"Mad Scientist"  → "mad_scientist"
//	"Fehér Nyúl"     → "feher_nyul"
//	"Rothbeer & Co." → "rothbeer__co" collapses to "rothbeer_co"
func SeedSlug(input string) string {
	// Decompose accented characters, then drop the combining marks.
	s := norm.NFKD.String(input)
	s = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) || r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)

	s = strings.ToLower(strings.TrimSpace(s))
	s = wordSeparatorRe.ReplaceAllString(s, "_")
	s = nonAlphanumericRe.ReplaceAllString(s, "")
	s = multipleUnderscoreRe.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")

	return s
}
