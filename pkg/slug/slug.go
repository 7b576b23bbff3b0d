// Copyright (c) 2026 Maqala. All rights reserved.

// Package slug generates URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are used as human-readable identifiers for articles. Latin titles
// produce ASCII slugs ("breaking-news-today"); titles in non-Latin scripts
// (Arabic most prominently) keep their script rather than degrading to an
// empty string.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen ASCII characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents, Arabic tashkeel).
// 3. Converts to lowercase.
// 4. Replaces separators and punctuation with hyphens.
// 5. Collapses multiple hyphens and trims leading/trailing hyphens.
//
// If the ASCII reduction leaves nothing (e.g. a fully Arabic title), the
// Unicode form from step 4 is kept instead of returning an empty slug.
func From(s string) string {
	// 1-2. Normalize and strip combining marks
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, s)
	if err != nil {
		normalized = s
	}

	// 3. Lowercase
	normalized = strings.ToLower(normalized)

	// 4. Replace everything that is not a letter or digit with hyphens
	hyphenated := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, normalized)

	// 5a. ASCII-strict reduction for Latin titles
	ascii := nonAlphanumeric.ReplaceAllString(hyphenated, "-")
	ascii = clean(ascii)
	if ascii != "" {
		return ascii
	}

	// 5b. Unicode fallback for non-Latin scripts
	return clean(hyphenated)
}

// clean collapses duplicate hyphens and trims the edges.
func clean(s string) string {
	s = multiHyphen.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
