package transcribe

import (
	stdhtml "html"

	"github.com/marktree/marktree/pkg/element"
	"github.com/marktree/marktree/pkg/token"
)

// decode resolves HTML entities exactly once. Text inside a raw block is
// buffered verbatim instead, so downstream consumers decode it themselves.
func decode(s string) string {
	return stdhtml.UnescapeString(s)
}

func one(el element.Element) []element.Element {
	return []element.Element{el}
}

// transcribe dispatches one token by kind. The switch names every member
// of the closed kind set; anything else is logged and skipped.
func (p *pass) transcribe(tok *token.Token, inline bool) []element.Element {
	switch tok.Kind {
	case token.Space:
		// Block-level spacing is structural and discarded; inline spacing
		// is content.
		if inline {
			return one(p.r.Text(" "))
		}
		return nil

	case token.Text:
		if p.inRaw {
			p.raw.WriteString(tok.Text)
			return nil
		}
		if len(tok.Children) > 0 {
			return p.run(tok.Children, true)
		}
		return one(p.r.Text(decode(tok.Text)))

	case token.EscapedText:
		// Escapes are already resolved to the literal character; decoding
		// again would corrupt text like "&amp;".
		return one(p.r.Text(tok.Text))

	case token.Paragraph:
		return p.paragraph(tok, inline)

	case token.Heading:
		return p.heading(tok)

	case token.Blockquote:
		children := p.run(tok.Children, false)
		return one(p.r.Blockquote(p.alloc.Next(), children))

	case token.Strong:
		children := p.run(tok.Children, true)
		return one(p.r.Strong(p.alloc.Next(), children))

	case token.Emphasis:
		children := p.run(tok.Children, true)
		return one(p.r.Em(p.alloc.Next(), children))

	case token.Strikethrough:
		children := p.run(tok.Children, true)
		return one(p.r.Del(p.alloc.Next(), children))

	case token.CodeSpan:
		return one(p.r.CodeSpan(p.alloc.Next(), decode(tok.Text), tok.Lang))

	case token.CodeBlock:
		// Code content is never re-parsed or decoded.
		return one(p.r.Code(p.alloc.Next(), tok.Text, tok.Lang))

	case token.OrderedList, token.UnorderedList:
		return p.list(tok)

	case token.Link:
		children := p.run(tok.Children, true)
		return one(p.r.Link(p.alloc.Next(), tok.Href, tok.Title, children))

	case token.Image:
		return one(p.r.Image(p.alloc.Next(), tok.Href, decode(tok.Text), tok.Title))

	case token.RawHTML:
		return p.rawHTML(tok)

	case token.LineBreak:
		return one(p.r.BR(p.alloc.Next()))

	case token.HorizontalRule:
		return one(p.r.HR(p.alloc.Next()))

	case token.Table:
		return p.table(tok)

	case token.ListItem, token.TableRow, token.TableCell:
		// Structural tokens are consumed by their containers; one arriving
		// here means the tokenizer emitted it loose.
		p.log().Debug().Stringer("kind", tok.Kind).Msg("container token outside its container")
		return nil

	default:
		p.log().Warn().Stringer("kind", tok.Kind).Msg("unrecognized token kind")
		return nil
	}
}

func (p *pass) paragraph(tok *token.Token, inline bool) []element.Element {
	if p.opts.UnwrapSoleImage && len(tok.Children) == 1 && tok.Children[0].Kind == token.Image {
		return p.transcribe(&tok.Children[0], inline)
	}
	children := p.run(tok.Children, true)
	return one(p.r.Paragraph(p.alloc.Next(), children))
}

func (p *pass) heading(tok *token.Token) []element.Element {
	text := PlainText(tok.Children)
	id := p.slugs.Register(text)
	if p.collectTOC {
		p.toc = append(p.toc, TocEntry{Text: text, ID: id, Level: tok.Depth})
	}
	children := p.run(tok.Children, true)
	return one(p.r.Heading(p.alloc.Next(), children, tok.Depth, id))
}

func (p *pass) list(tok *token.Token) []element.Element {
	ordered := tok.Kind == token.OrderedList

	scope := p.alloc.Enter()
	items := make([]element.Element, 0, len(tok.Children))
	for i := range tok.Children {
		item := &tok.Children[i]
		if item.Kind != token.ListItem {
			p.log().Warn().Stringer("kind", item.Kind).Msg("non-item token in list")
			continue
		}
		var kids []element.Element
		if item.Task {
			kids = append(kids, p.r.Checkbox(p.alloc.Next(), item.Checked))
		}
		kids = append(kids, p.run(item.Children, false)...)
		items = append(items, p.r.ListItem(p.alloc.Next(), kids))
	}
	scope.Leave()

	return one(p.r.List(p.alloc.Next(), items, ordered, tok.Start))
}

func (p *pass) table(tok *token.Token) []element.Element {
	alignAt := func(i int) string {
		if i < len(tok.Aligns) {
			return tok.Aligns[i].String()
		}
		return ""
	}

	headScope := p.alloc.Enter()
	headCells := make([]element.Element, 0, len(tok.Header))
	for i := range tok.Header {
		children := p.run(tok.Header[i].Children, true)
		headCells = append(headCells, p.r.TableCell(p.alloc.Next(), children, alignAt(i), true))
	}
	headRow := p.r.TableRow(p.alloc.Next(), headCells)
	headScope.Leave()
	head := p.r.TableHeader(p.alloc.Next(), one(headRow))

	bodyScope := p.alloc.Enter()
	rows := make([]element.Element, 0, len(tok.Rows))
	for _, row := range tok.Rows {
		rowScope := p.alloc.Enter()
		cells := make([]element.Element, 0, len(row))
		for i := range row {
			children := p.run(row[i].Children, true)
			cells = append(cells, p.r.TableCell(p.alloc.Next(), children, alignAt(i), false))
		}
		rowScope.Leave()
		rows = append(rows, p.r.TableRow(p.alloc.Next(), cells))
	}
	bodyScope.Leave()
	body := p.r.TableBody(p.alloc.Next(), rows)

	return one(p.r.Table(p.alloc.Next(), []element.Element{head, body}))
}

// rawHTML handles entry into, accumulation inside, and exit from opaque
// containers, plus plain HTML tokens outside any container.
func (p *pass) rawHTML(tok *token.Token) []element.Element {
	if p.inRaw {
		p.raw.WriteString(tok.Text)
		if tok.ExitsRaw {
			return p.flushRaw()
		}
		return nil
	}

	if tok.EntersRaw {
		p.inRaw = true
		p.raw.WriteString(tok.Text)
		if tok.ExitsRaw {
			return p.flushRaw()
		}
		return nil
	}

	return p.html(tok.Text)
}

// flushRaw closes the raw buffer and renders its content as one element.
func (p *pass) flushRaw() []element.Element {
	content := p.raw.String()
	p.raw.Reset()
	p.inRaw = false
	return p.html(content)
}

func (p *pass) html(raw string) []element.Element {
	key := p.alloc.Next()
	if p.opts.HTML == nil {
		return p.r.HTML(key, raw)
	}

	elements, err := p.opts.HTML.TranscribeFragment(p.ctx, raw, key)
	if err != nil {
		p.log().Warn().Err(err).Msg("html fragment transcription failed")
		return nil
	}
	return elements
}
