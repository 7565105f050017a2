package element

import (
	"strconv"

	"github.com/marktree/marktree/pkg/keypath"
)

// langClassPrefix is the class prefix applied to fenced code languages,
// matching the convention syntax highlighters key off.
const langClassPrefix = "language-"

// booleanAttrs are HTML attributes whose presence is their value. The Tag
// hook renders them as true instead of an empty string.
var booleanAttrs = map[string]bool{
	"autofocus": true,
	"autoplay":  true,
	"checked":   true,
	"controls":  true,
	"disabled":  true,
	"hidden":    true,
	"loop":      true,
	"multiple":  true,
	"muted":     true,
	"open":      true,
	"readonly":  true,
	"required":  true,
	"selected":  true,
}

// DefaultRenderer maps token kinds onto plain HTML-shaped Nodes. Embed it
// and shadow individual methods to customize single kinds.
type DefaultRenderer struct{}

var (
	_ Renderer    = (*DefaultRenderer)(nil)
	_ TagRenderer = (*DefaultRenderer)(nil)
)

// NewDefaultRenderer returns the standard rendering strategy.
func NewDefaultRenderer() *DefaultRenderer {
	return &DefaultRenderer{}
}

func (r *DefaultRenderer) Heading(key keypath.Key, children []Element, level int, slug string) Element {
	return &Node{
		Tag:      "h" + strconv.Itoa(level),
		Key:      key,
		Props:    Props{"id": slug},
		Children: children,
	}
}

func (r *DefaultRenderer) Paragraph(key keypath.Key, children []Element) Element {
	return &Node{Tag: "p", Key: key, Children: children}
}

func (r *DefaultRenderer) Link(key keypath.Key, href, title string, children []Element) Element {
	props := Props{"href": SanitizeURL(href)}
	if title != "" {
		props["title"] = title
	}
	return &Node{Tag: "a", Key: key, Props: props, Children: children}
}

func (r *DefaultRenderer) Image(key keypath.Key, src, alt, title string) Element {
	props := Props{"src": SanitizeURL(src), "alt": alt}
	if title != "" {
		props["title"] = title
	}
	return &Node{Tag: "img", Key: key, Props: props}
}

func (r *DefaultRenderer) CodeSpan(key keypath.Key, code, lang string) Element {
	var props Props
	if lang != "" {
		props = Props{"class": langClassPrefix + lang}
	}
	return &Node{Tag: "code", Key: key, Props: props, Children: []Element{code}}
}

func (r *DefaultRenderer) Code(key keypath.Key, code, lang string) Element {
	var props Props
	if lang != "" {
		props = Props{"class": langClassPrefix + lang}
	}
	inner := &Node{Tag: "code", Props: props, Children: []Element{code}}
	return &Node{Tag: "pre", Key: key, Children: []Element{inner}}
}

func (r *DefaultRenderer) Blockquote(key keypath.Key, children []Element) Element {
	return &Node{Tag: "blockquote", Key: key, Children: children}
}

func (r *DefaultRenderer) List(key keypath.Key, children []Element, ordered bool, start int) Element {
	if !ordered {
		return &Node{Tag: "ul", Key: key, Children: children}
	}
	var props Props
	// An ordered list starting at 1 is the default; the attribute is
	// omitted so the output stays minimal.
	if start > 1 {
		props = Props{"start": start}
	}
	return &Node{Tag: "ol", Key: key, Props: props, Children: children}
}

func (r *DefaultRenderer) ListItem(key keypath.Key, children []Element) Element {
	return &Node{Tag: "li", Key: key, Children: children}
}

func (r *DefaultRenderer) Checkbox(key keypath.Key, checked bool) Element {
	return &Node{
		Tag: "input",
		Key: key,
		Props: Props{
			"type":     "checkbox",
			"checked":  checked,
			"disabled": true,
		},
	}
}

func (r *DefaultRenderer) Table(key keypath.Key, children []Element) Element {
	return &Node{Tag: "table", Key: key, Children: children}
}

func (r *DefaultRenderer) TableHeader(key keypath.Key, children []Element) Element {
	return &Node{Tag: "thead", Key: key, Children: children}
}

func (r *DefaultRenderer) TableBody(key keypath.Key, children []Element) Element {
	return &Node{Tag: "tbody", Key: key, Children: children}
}

func (r *DefaultRenderer) TableRow(key keypath.Key, children []Element) Element {
	return &Node{Tag: "tr", Key: key, Children: children}
}

func (r *DefaultRenderer) TableCell(key keypath.Key, children []Element, align string, header bool) Element {
	tag := "td"
	if header {
		tag = "th"
	}
	var props Props
	if align != "" {
		props = Props{"align": align}
	}
	return &Node{Tag: tag, Key: key, Props: props, Children: children}
}

func (r *DefaultRenderer) Strong(key keypath.Key, children []Element) Element {
	return &Node{Tag: "strong", Key: key, Children: children}
}

func (r *DefaultRenderer) Em(key keypath.Key, children []Element) Element {
	return &Node{Tag: "em", Key: key, Children: children}
}

func (r *DefaultRenderer) Del(key keypath.Key, children []Element) Element {
	return &Node{Tag: "del", Key: key, Children: children}
}

func (r *DefaultRenderer) Text(text string) Element {
	return text
}

func (r *DefaultRenderer) HTML(key keypath.Key, html string) []Element {
	// Without an HTML fragment transcriber wired in, raw markup is carried
	// opaquely; the host decides whether to inject or escape it.
	return []Element{&Node{Tag: "raw-html", Key: key, Props: Props{"html": html}}}
}

func (r *DefaultRenderer) HR(key keypath.Key) Element {
	return &Node{Tag: "hr", Key: key}
}

func (r *DefaultRenderer) BR(key keypath.Key) Element {
	return &Node{Tag: "br", Key: key}
}

// Tag implements the tag-override hook for HTML fragments. URL-bearing
// attributes pass through the same scheme denylist as markdown links.
func (r *DefaultRenderer) Tag(key keypath.Key, name string, attrs []Attr, children []Element) Element {
	var props Props
	if len(attrs) > 0 {
		props = make(Props, len(attrs))
		for _, a := range attrs {
			switch {
			case a.Name == "href" || a.Name == "src":
				props[a.Name] = SanitizeURL(a.Value)
			case booleanAttrs[a.Name]:
				props[a.Name] = true
			default:
				props[a.Name] = a.Value
			}
		}
	}
	return &Node{Tag: name, Key: key, Props: props, Children: children}
}
