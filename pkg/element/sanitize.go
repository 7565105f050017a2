package element

import "strings"

// inertURL replaces link destinations with a denied scheme. Rendering an
// inert fragment link keeps the element tree shape stable while removing
// the payload.
const inertURL = "#"

// deniedSchemes are URL schemes that execute or smuggle content. The
// denylist is a hard security invariant, not a configuration knob.
var deniedSchemes = []string{"javascript:", "data:", "vbscript:"}

// SanitizeURL returns href unchanged unless it carries a denied scheme,
// in which case the inert value is returned. Scheme matching ignores case
// and embedded whitespace/control characters, since browsers do too.
func SanitizeURL(href string) string {
	compact := strings.Map(func(r rune) rune {
		if r <= ' ' {
			return -1
		}
		return r
	}, href)
	compact = strings.ToLower(compact)

	for _, scheme := range deniedSchemes {
		if strings.HasPrefix(compact, scheme) {
			return inertURL
		}
	}
	return href
}
