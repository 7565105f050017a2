package element_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marktree/marktree/pkg/element"
)

func TestSanitizeURL(t *testing.T) {
	tests := []struct {
		name string
		href string
		want string
	}{
		{name: "https_passes", href: "https://example.com/a", want: "https://example.com/a"},
		{name: "relative_passes", href: "../other.md", want: "../other.md"},
		{name: "fragment_passes", href: "#section", want: "#section"},
		{name: "mailto_passes", href: "mailto:a@b.c", want: "mailto:a@b.c"},
		{name: "javascript_denied", href: "javascript:alert(1)", want: "#"},
		{name: "mixed_case_denied", href: "JaVaScRiPt:alert(1)", want: "#"},
		{name: "embedded_whitespace_denied", href: "java\tscript:alert(1)", want: "#"},
		{name: "leading_space_denied", href: "  javascript:alert(1)", want: "#"},
		{name: "data_denied", href: "data:text/html;base64,PHNjcmlwdD4=", want: "#"},
		{name: "vbscript_denied", href: "vbscript:MsgBox", want: "#"},
		{name: "empty_passes", href: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, element.SanitizeURL(tt.href))
		})
	}
}
