// Package slug derives collision-free heading anchors from raw heading
// text. A Registry is scoped to a single document: slug uniqueness is
// per-document, never global.
package slug

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deburr decomposes characters and drops their combining marks, so that
// "Café" slugs the same as "Cafe".
var deburr = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Registry tracks slug occurrences for one document.
type Registry struct {
	slugify func(string) string
	seen    map[string]int
}

// NewRegistry returns a fresh registry. A nil slugify uses the built-in
// Slugify; a non-nil one replaces it entirely.
func NewRegistry(slugify func(string) string) *Registry {
	if slugify == nil {
		slugify = Slugify
	}
	return &Registry{
		slugify: slugify,
		seen:    make(map[string]int),
	}
}

// Register normalizes raw text and returns a slug unique within this
// registry. The first occurrence of a base is returned unsuffixed; the
// second becomes base-2, the third base-3, and so on. The unsuffixed first
// occurrence consuming the bare form is a fixed contract: common heading
// anchor conventions depend on the second occurrence being "-2", not "-1".
// Emitted suffixed slugs occupy the table too, so a later literal heading
// that collides with one still gets a fresh suffix.
func (r *Registry) Register(raw string) string {
	base := r.slugify(raw)

	n := r.seen[base]
	r.seen[base] = n + 1
	if n == 0 {
		return base
	}

	out := base + "-" + strconv.Itoa(n+1)
	r.seen[out]++
	return out
}

// Slugify is the built-in normalization: diacritics removed, control
// characters stripped, lower-cased, runs of whitespace and punctuation
// collapsed to a single "-", leading and trailing separators trimmed.
func Slugify(s string) string {
	if folded, _, err := transform.String(deburr, s); err == nil {
		s = folded
	}

	var sb strings.Builder
	sb.Grow(len(s))
	pendingSep := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingSep && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingSep = false
			sb.WriteRune(unicode.ToLower(r))
		case unicode.IsSpace(r):
			// tab and newline are controls too; the space check must win or
			// they would fuse adjacent words instead of separating them
			pendingSep = true
		case unicode.IsControl(r):
			// dropped
		default:
			pendingSep = true
		}
	}
	return sb.String()
}
