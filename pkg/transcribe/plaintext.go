package transcribe

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/marktree/marktree/pkg/token"
)

// blockJoin separates the extracted text of adjacent block tokens. It is
// deliberately distinct from the "-" the slug registry uses internally, so
// extraction can change independently of slug shape.
const blockJoin = "\n"

// PlainText concatenates the text-bearing content of a token tree. Links,
// emphasis, strikethrough and code spans contribute their text; images
// and raw HTML contribute nothing. Heading slugs and word counting are
// both built on this extraction.
func PlainText(tokens []token.Token) string {
	var sb strings.Builder
	plainText(&sb, tokens)
	return strings.TrimRight(sb.String(), blockJoin)
}

func plainText(sb *strings.Builder, tokens []token.Token) {
	for i := range tokens {
		tok := &tokens[i]
		switch tok.Kind {
		case token.Text:
			if len(tok.Children) > 0 {
				plainText(sb, tok.Children)
			} else {
				sb.WriteString(decode(tok.Text))
			}
		case token.EscapedText, token.CodeSpan:
			sb.WriteString(tok.Text)
		case token.CodeBlock:
			sb.WriteString(tok.Text)
			sb.WriteString(blockJoin)
		case token.Space:
			sb.WriteString(" ")
		case token.LineBreak:
			sb.WriteString("\n")
		case token.Strong, token.Emphasis, token.Strikethrough, token.Link:
			plainText(sb, tok.Children)
		case token.Paragraph, token.Heading, token.Blockquote, token.ListItem,
			token.TableCell:
			plainText(sb, tok.Children)
			sb.WriteString(blockJoin)
		case token.OrderedList, token.UnorderedList:
			plainText(sb, tok.Children)
		case token.Table:
			plainText(sb, tok.Header)
			for _, row := range tok.Rows {
				plainText(sb, row)
			}
		default:
			// images, raw HTML, rules: no textual content
		}
	}
}

// WordCount reports the number of UAX #29 word tokens in the plain text of
// the token tree. Whitespace and bare punctuation tokens do not count.
func WordCount(tokens []token.Token) int {
	count := 0
	iter := words.FromString(PlainText(tokens))
	for iter.Next() {
		if wordlike(iter.Value()) {
			count++
		}
	}
	return count
}

// wordlike reports whether a segment contains at least one letter or digit.
func wordlike(s string) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
		i += size
	}
	return false
}
