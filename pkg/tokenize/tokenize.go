// Package tokenize adapts goldmark to the pkg/token contract.
//
// The transcriber never parses markdown itself; this package produces the
// token stream it consumes. Parsing is done with goldmark and its GFM
// extensions (tables, strikethrough, task lists), and the resulting AST is
// converted into the closed token kind set in a single pass.
package tokenize

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"gitlab.com/tozd/go/errors"

	"github.com/marktree/marktree/pkg/token"
)

var md = goldmark.New(goldmark.WithExtensions(
	extension.Table,
	extension.Strikethrough,
	extension.TaskList,
))

// Raw containers hold content that must not be re-interpreted. Tag
// matching mirrors the HTML spec's raw text element list.
var (
	rawOpenRe  = regexp.MustCompile(`(?i)<(pre|script|style|textarea)\b`)
	rawCloseRe = regexp.MustCompile(`(?i)</(pre|script|style|textarea)\s*>`)
)

// Tokenize parses markdown source into a block-level token stream.
func Tokenize(src []byte) ([]token.Token, error) {
	if !utf8.Valid(src) {
		return nil, errors.New("markdown source is not valid UTF-8")
	}

	doc := md.Parser().Parse(text.NewReader(src))
	c := &converter{src: src}
	return c.blocks(doc), nil
}

type converter struct {
	src []byte
}

func (c *converter) blocks(parent ast.Node) []token.Token {
	var out []token.Token
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, c.block(n)...)
	}
	return out
}

func (c *converter) block(n ast.Node) []token.Token {
	switch n := n.(type) {
	case *ast.Heading:
		return []token.Token{{Kind: token.Heading, Depth: n.Level, Children: c.inlines(n)}}

	case *ast.Paragraph:
		return []token.Token{{Kind: token.Paragraph, Children: c.inlines(n)}}

	case *ast.TextBlock:
		// Tight list items wrap their inline content in a text block
		// rather than a paragraph.
		return []token.Token{{Kind: token.Text, Children: c.inlines(n)}}

	case *ast.Blockquote:
		return []token.Token{{Kind: token.Blockquote, Children: c.blocks(n)}}

	case *ast.List:
		return c.list(n)

	case *ast.FencedCodeBlock:
		lang := ""
		if n.Info != nil {
			lang = string(n.Language(c.src))
		}
		return []token.Token{{Kind: token.CodeBlock, Text: c.lines(n), Lang: lang}}

	case *ast.CodeBlock:
		return []token.Token{{Kind: token.CodeBlock, Text: c.lines(n)}}

	case *ast.ThematicBreak:
		return []token.Token{{Kind: token.HorizontalRule}}

	case *ast.HTMLBlock:
		content := c.lines(n)
		if n.HasClosure() {
			content += string(n.ClosureLine.Value(c.src))
		}
		return []token.Token{c.rawToken(content)}

	case *extast.Table:
		return c.table(n)

	default:
		return nil
	}
}

func (c *converter) list(n *ast.List) []token.Token {
	kind := token.UnorderedList
	start := 0
	if n.IsOrdered() {
		kind = token.OrderedList
		start = n.Start
	}

	var items []token.Token
	for it := n.FirstChild(); it != nil; it = it.NextSibling() {
		item := token.Token{Kind: token.ListItem}
		if cb := taskCheckbox(it); cb != nil {
			item.Task = true
			item.Checked = cb.IsChecked
		}
		item.Children = c.blocks(it)
		items = append(items, item)
	}

	return []token.Token{{Kind: kind, Start: start, Children: items}}
}

// taskCheckbox finds the checkbox the TaskList extension prepends to the
// first line of a task item.
func taskCheckbox(item ast.Node) *extast.TaskCheckBox {
	first := item.FirstChild()
	if first == nil {
		return nil
	}
	switch first.(type) {
	case *ast.TextBlock, *ast.Paragraph:
	default:
		return nil
	}
	cb, _ := first.FirstChild().(*extast.TaskCheckBox)
	return cb
}

func (c *converter) table(n *extast.Table) []token.Token {
	aligns := make([]token.Alignment, len(n.Alignments))
	for i, a := range n.Alignments {
		aligns[i] = alignment(a)
	}

	tok := token.Token{Kind: token.Table, Aligns: aligns}
	for row := n.FirstChild(); row != nil; row = row.NextSibling() {
		switch row := row.(type) {
		case *extast.TableHeader:
			tok.Header = c.cells(row)
		case *extast.TableRow:
			tok.Rows = append(tok.Rows, c.cells(row))
		}
	}
	return []token.Token{tok}
}

func (c *converter) cells(row ast.Node) []token.Token {
	var cells []token.Token
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		tc, ok := cell.(*extast.TableCell)
		if !ok {
			continue
		}
		cells = append(cells, token.Token{
			Kind:     token.TableCell,
			Align:    alignment(tc.Alignment),
			Children: c.inlines(tc),
		})
	}
	return cells
}

func alignment(a extast.Alignment) token.Alignment {
	switch a {
	case extast.AlignLeft:
		return token.AlignLeft
	case extast.AlignCenter:
		return token.AlignCenter
	case extast.AlignRight:
		return token.AlignRight
	default:
		return token.AlignNone
	}
}

func (c *converter) inlines(parent ast.Node) []token.Token {
	var out []token.Token
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, c.inline(n)...)
	}
	return out
}

func (c *converter) inline(n ast.Node) []token.Token {
	switch n := n.(type) {
	case *ast.Text:
		out := []token.Token{{Kind: token.Text, Text: string(n.Segment.Value(c.src))}}
		if n.HardLineBreak() {
			out = append(out, token.Token{Kind: token.LineBreak})
		} else if n.SoftLineBreak() {
			out = append(out, token.Token{Kind: token.Space})
		}
		return out

	case *ast.String:
		if n.IsRaw() {
			return []token.Token{{Kind: token.EscapedText, Text: string(n.Value)}}
		}
		return []token.Token{{Kind: token.Text, Text: string(n.Value)}}

	case *ast.CodeSpan:
		return []token.Token{{Kind: token.CodeSpan, Text: c.textOf(n)}}

	case *ast.Emphasis:
		kind := token.Emphasis
		if n.Level >= 2 {
			kind = token.Strong
		}
		return []token.Token{{Kind: kind, Children: c.inlines(n)}}

	case *extast.Strikethrough:
		return []token.Token{{Kind: token.Strikethrough, Children: c.inlines(n)}}

	case *ast.Link:
		return []token.Token{{
			Kind:     token.Link,
			Href:     string(n.Destination),
			Title:    string(n.Title),
			Children: c.inlines(n),
		}}

	case *ast.AutoLink:
		url := string(n.URL(c.src))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		label := string(n.Label(c.src))
		return []token.Token{{
			Kind:     token.Link,
			Href:     url,
			Children: []token.Token{{Kind: token.Text, Text: label}},
		}}

	case *ast.Image:
		return []token.Token{{
			Kind:  token.Image,
			Href:  string(n.Destination),
			Title: string(n.Title),
			Text:  c.textOf(n),
		}}

	case *ast.RawHTML:
		var sb strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			sb.Write(seg.Value(c.src))
		}
		return []token.Token{c.rawToken(sb.String())}

	case *extast.TaskCheckBox:
		// consumed by the list item conversion
		return nil

	default:
		return nil
	}
}

func (c *converter) rawToken(content string) token.Token {
	return token.Token{
		Kind:      token.RawHTML,
		Text:      content,
		EntersRaw: rawOpenRe.MatchString(content),
		ExitsRaw:  rawCloseRe.MatchString(content),
	}
}

// textOf concatenates the text segments under an inline node.
func (c *converter) textOf(n ast.Node) string {
	var sb strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		switch child := child.(type) {
		case *ast.Text:
			sb.Write(child.Segment.Value(c.src))
		case *ast.String:
			sb.Write(child.Value)
		default:
			sb.WriteString(c.textOf(child))
		}
	}
	return sb.String()
}

// lines concatenates the source lines of a block node.
func (c *converter) lines(n ast.Node) string {
	var sb strings.Builder
	l := n.Lines()
	for i := 0; i < l.Len(); i++ {
		seg := l.At(i)
		sb.Write(seg.Value(c.src))
	}
	return sb.String()
}
