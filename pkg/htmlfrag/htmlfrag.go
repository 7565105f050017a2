// Package htmlfrag converts raw HTML fragments into element descriptors.
//
// It is the collaborator behind the transcriber's HTML sub-mode: the
// buffered raw string is parsed with golang.org/x/net/html and the node
// tree walked into elements through the rendering strategy's Tag hook.
// Entities are decoded by the parser, exactly once.
package htmlfrag

import (
	"context"
	"strings"

	"gitlab.com/tozd/go/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/marktree/marktree/pkg/element"
	"github.com/marktree/marktree/pkg/keypath"
	"github.com/marktree/marktree/pkg/transcribe"
)

// Transcriber walks parsed HTML fragments into elements.
type Transcriber struct {
	r    element.Renderer
	tags element.TagRenderer
}

var _ transcribe.FragmentTranscriber = (*Transcriber)(nil)

// New returns a fragment transcriber rendering through r. A nil r selects
// the default strategy. When r does not implement the Tag hook, element
// nodes fall back to the default strategy's Tag while text still renders
// through r.
func New(r element.Renderer) *Transcriber {
	if r == nil {
		r = element.NewDefaultRenderer()
	}
	tags, ok := r.(element.TagRenderer)
	if !ok {
		tags = element.NewDefaultRenderer()
	}
	return &Transcriber{r: r, tags: tags}
}

// TranscribeFragment parses fragment in body context and returns one
// element per top-level node. Keys continue under prefix so they remain
// unique within the calling transcription pass.
func (t *Transcriber) TranscribeFragment(ctx context.Context, fragment string, prefix keypath.Key) ([]element.Element, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, errors.Errorf("parsing html fragment: %w", err)
	}

	alloc := keypath.NewAllocatorWithPrefix(prefix)
	scope := alloc.Enter()
	defer scope.Leave()

	var out []element.Element
	for _, n := range nodes {
		out = append(out, t.node(alloc, n)...)
	}
	return out, nil
}

func (t *Transcriber) node(alloc *keypath.Allocator, n *html.Node) []element.Element {
	switch n.Type {
	case html.TextNode:
		if n.Data == "" {
			return nil
		}
		return []element.Element{t.r.Text(n.Data)}

	case html.ElementNode:
		scope := alloc.Enter()
		var children []element.Element
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			children = append(children, t.node(alloc, c)...)
		}
		scope.Leave()

		attrs := make([]element.Attr, 0, len(n.Attr))
		for _, a := range n.Attr {
			attrs = append(attrs, element.Attr{Name: strings.ToLower(a.Key), Value: a.Val})
		}
		return []element.Element{t.tags.Tag(alloc.Next(), n.Data, attrs, children)}

	case html.DocumentNode:
		var out []element.Element
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			out = append(out, t.node(alloc, c)...)
		}
		return out

	default:
		// comments, doctypes
		return nil
	}
}
