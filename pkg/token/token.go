// Package token defines the token contract consumed by the transcriber.
//
// Tokens are produced by a tokenizer (pkg/tokenize adapts goldmark to this
// contract) and form a tree via Children. The set of kinds is closed: the
// transcriber dispatches exhaustively over it, and pkg/transcribe carries a
// test that fails when a kind is added here without a matching case there.
//
// Tokens are immutable input. Consumers read and recurse, never mutate.
package token

// Kind discriminates the token variants.
type Kind uint8

const (
	// Space separates block tokens. It is structural in block context and
	// a literal single space in inline context.
	Space Kind = iota

	// Text is a run of literal text, possibly entity-encoded. A text token
	// may instead carry nested inline Children.
	Text

	// EscapedText is literal text whose escape has already been resolved
	// to the final character. It must never be entity-decoded again.
	EscapedText

	Paragraph
	Heading
	Blockquote

	Strong
	Emphasis
	Strikethrough

	CodeSpan
	CodeBlock

	OrderedList
	UnorderedList
	ListItem

	Link
	Image

	// RawHTML carries a fragment of inline or block HTML. EntersRaw and
	// ExitsRaw signal the boundaries of an opaque container (pre, script,
	// style, textarea) whose content must be buffered verbatim.
	RawHTML

	LineBreak
	HorizontalRule

	Table
	TableRow
	TableCell

	kindCount
)

// KindCount is the number of kinds in the closed set. Tests iterate
// [0, KindCount) to assert exhaustive handling.
const KindCount = int(kindCount)

// Alignment is a table column alignment.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Token is one parsed syntactic unit of the source document. Which fields
// are meaningful depends on Kind; unused fields stay zero.
type Token struct {
	Kind Kind

	// Text is the literal content for Text, EscapedText, CodeSpan,
	// CodeBlock and RawHTML tokens, and the alt text for Image tokens.
	Text string

	// Children are nested tokens: inline content of headings, paragraphs
	// and emphasis spans, block content of blockquotes and list items,
	// and the item tokens of a list.
	Children []Token

	// Depth is the heading level, 1..6.
	Depth int

	// Lang is the optional language hint of a code block or code span.
	Lang string

	// Href is the link destination or image source.
	Href string

	// Title is the optional link or image title.
	Title string

	// Start is the ordinal of the first item of an ordered list.
	Start int

	// Task and Checked describe a task list item.
	Task    bool
	Checked bool

	// EntersRaw and ExitsRaw mark a RawHTML token that opens or closes an
	// opaque container. A self-contained container sets both.
	EntersRaw bool
	ExitsRaw  bool

	// Aligns holds the per-column alignments of a table.
	Aligns []Alignment

	// Align is the resolved alignment of a table cell.
	Align Alignment

	// Header holds the header cell tokens of a table.
	Header []Token

	// Rows holds the body rows of a table, each a slice of cell tokens.
	Rows [][]Token
}

// String returns the kind name used in diagnostics.
func (k Kind) String() string {
	switch k {
	case Space:
		return "space"
	case Text:
		return "text"
	case EscapedText:
		return "escapedText"
	case Paragraph:
		return "paragraph"
	case Heading:
		return "heading"
	case Blockquote:
		return "blockquote"
	case Strong:
		return "strong"
	case Emphasis:
		return "emphasis"
	case Strikethrough:
		return "strikethrough"
	case CodeSpan:
		return "codeSpan"
	case CodeBlock:
		return "codeBlock"
	case OrderedList:
		return "orderedList"
	case UnorderedList:
		return "unorderedList"
	case ListItem:
		return "listItem"
	case Link:
		return "link"
	case Image:
		return "image"
	case RawHTML:
		return "rawHtml"
	case LineBreak:
		return "lineBreak"
	case HorizontalRule:
		return "horizontalRule"
	case Table:
		return "table"
	case TableRow:
		return "tableRow"
	case TableCell:
		return "tableCell"
	default:
		return "unknown"
	}
}

// String returns the alignment name used by renderers.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return ""
	}
}
