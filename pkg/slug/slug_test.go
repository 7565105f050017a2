package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marktree/marktree/pkg/slug"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Introduction", want: "introduction"},
		{name: "spaces_and_punctuation", in: "Hello, World!", want: "hello-world"},
		{name: "collapsed_separators", in: "a  --  b", want: "a-b"},
		{name: "trimmed_separators", in: "  ...leading and trailing!  ", want: "leading-and-trailing"},
		{name: "diacritics_removed", in: "Café au Lait", want: "cafe-au-lait"},
		{name: "control_chars_dropped", in: "a\x00b\tc", want: "ab-c"},
		{name: "whitespace_controls_separate", in: "multi\nline\theading", want: "multi-line-heading"},
		{name: "digits_kept", in: "Version 2.0", want: "version-2-0"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slug.Slugify(tt.in))
		})
	}
}

func TestRegisterSuffixing(t *testing.T) {
	r := slug.NewRegistry(nil)

	// The first occurrence is never suffixed; the second becomes -2.
	assert.Equal(t, "intro", r.Register("Intro"))
	assert.Equal(t, "intro-2", r.Register("Intro"))
	assert.Equal(t, "intro-3", r.Register("Intro"))
}

func TestRegisterSuffixedFormOccupiesTable(t *testing.T) {
	r := slug.NewRegistry(nil)

	require.Equal(t, "intro", r.Register("intro"))
	require.Equal(t, "intro-2", r.Register("intro"))

	// A literal heading colliding with an emitted suffix still gets a
	// fresh suffix.
	assert.Equal(t, "intro-2-2", r.Register("intro 2"))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := slug.NewRegistry(nil)
	b := slug.NewRegistry(nil)

	assert.Equal(t, "x", a.Register("x"))
	assert.Equal(t, "x", b.Register("x"))
}

func TestCustomSlugify(t *testing.T) {
	r := slug.NewRegistry(strings.ToUpper)

	assert.Equal(t, "HEADING", r.Register("heading"))
	assert.Equal(t, "HEADING-2", r.Register("heading"))
}
