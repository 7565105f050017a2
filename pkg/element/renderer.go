/*
Rendering Strategy:
-----------------

The transcriber delegates all element construction to a Renderer, one
constructor per token kind:

	Token stream          Renderer               Element tree
	------------          --------               ------------
	heading        -->    Heading(key, ...)  --> opaque value
	paragraph      -->    Paragraph(key, ..) --> opaque value
	...                   ...                    ...

Elements are opaque to the transcriber: it never inspects or mutates them
after construction. Callers customize rendering per method by embedding
*DefaultRenderer in their own type and shadowing the methods they care
about; no inheritance is involved.
*/
package element

import "github.com/marktree/marktree/pkg/keypath"

// Element is an opaque UI node descriptor. The default renderer produces
// *Node values and plain strings for text; custom renderers may produce
// whatever their host framework consumes.
type Element = any

// Attr is one HTML attribute as seen by the Tag hook.
type Attr struct {
	Name  string
	Value string
}

// Renderer constructs one element per token kind. Key parameters are the
// identity keys allocated by the transcriber; text elements carry no key.
type Renderer interface {
	Heading(key keypath.Key, children []Element, level int, slug string) Element
	Paragraph(key keypath.Key, children []Element) Element
	Link(key keypath.Key, href, title string, children []Element) Element
	Image(key keypath.Key, src, alt, title string) Element
	CodeSpan(key keypath.Key, code, lang string) Element
	Code(key keypath.Key, code, lang string) Element
	Blockquote(key keypath.Key, children []Element) Element
	List(key keypath.Key, children []Element, ordered bool, start int) Element
	ListItem(key keypath.Key, children []Element) Element
	Checkbox(key keypath.Key, checked bool) Element
	Table(key keypath.Key, children []Element) Element
	TableHeader(key keypath.Key, children []Element) Element
	TableBody(key keypath.Key, children []Element) Element
	TableRow(key keypath.Key, children []Element) Element
	TableCell(key keypath.Key, children []Element, align string, header bool) Element
	Strong(key keypath.Key, children []Element) Element
	Em(key keypath.Key, children []Element) Element
	Del(key keypath.Key, children []Element) Element
	Text(text string) Element
	HTML(key keypath.Key, html string) []Element
	HR(key keypath.Key) Element
	BR(key keypath.Key) Element
}

// TagRenderer is the tag-override hook used by the HTML fragment
// transcriber: an arbitrary element node with parsed attributes.
type TagRenderer interface {
	Tag(key keypath.Key, name string, attrs []Attr, children []Element) Element
}
