/*
Token-to-Element Transcription:
-----------------------------

The transcriber is the sole orchestrator of a transcription pass:

	token stream
	     |
	     v
	+------------+   slugs   +---------------+
	| Transcriber|---------->| slug.Registry |
	|  (walk)    |   keys    +---------------+
	|            |---------->| keypath.Alloc |
	|            |  construct+---------------+
	|            |---------->| element.Renderer |
	+------------+           +---------------+
	     |
	     v
	element tree + table of contents

Every top-level call owns a fresh allocator, slug registry and raw-block
buffer, so a Transcriber value is safely re-entrant across goroutines.
The walk is synchronous and runs to completion; recursion depth equals
document nesting depth.
*/
package transcribe

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/marktree/marktree/pkg/element"
	"github.com/marktree/marktree/pkg/keypath"
	"github.com/marktree/marktree/pkg/slug"
	"github.com/marktree/marktree/pkg/token"
)

// TocEntry is one heading record collected in document order.
type TocEntry struct {
	Text  string `json:"text"`
	ID    string `json:"id"`
	Level int    `json:"level"`
}

// BlockResult is the output of a block-level transcription.
type BlockResult struct {
	Elements []element.Element `json:"elements"`
	TOC      []TocEntry        `json:"toc"`
}

// FragmentTranscriber converts a raw HTML string into elements. The prefix
// is the identity key allocated for the fragment; keys of produced
// elements continue under it so they stay unique within the pass.
type FragmentTranscriber interface {
	TranscribeFragment(ctx context.Context, fragment string, prefix keypath.Key) ([]element.Element, error)
}

// Options is the configuration surface of the transcriber.
type Options struct {
	// Renderer constructs elements. Nil selects the default strategy.
	Renderer element.Renderer

	// Slugify replaces the built-in heading slug normalization entirely
	// when non-nil.
	Slugify func(string) string

	// UnwrapSoleImage drops the paragraph wrapper around a paragraph whose
	// only child is an image, returning the image element directly. This
	// changes block semantics and is off by default.
	UnwrapSoleImage bool

	// HTML enables the raw HTML sub-mode: buffered raw strings are handed
	// to this collaborator and its elements spliced in place. Nil renders
	// raw strings through the Renderer's HTML constructor.
	HTML FragmentTranscriber
}

// Transcriber converts token streams into element trees. The zero value
// is not usable; construct with New.
type Transcriber struct {
	opts Options
}

// New returns a Transcriber with defaults filled in.
func New(opts Options) *Transcriber {
	if opts.Renderer == nil {
		opts.Renderer = element.NewDefaultRenderer()
	}
	return &Transcriber{opts: opts}
}

// TranscribeBlock walks a block-level token list and returns the element
// tree together with the table of contents collected from headings.
func (t *Transcriber) TranscribeBlock(ctx context.Context, tokens []token.Token) BlockResult {
	p := t.newPass(ctx, true)
	elements := p.run(tokens, false)
	return BlockResult{Elements: elements, TOC: p.toc}
}

// TranscribeInline walks an inline token list. No table of contents is
// collected; heading tokens still register slugs for key stability.
func (t *Transcriber) TranscribeInline(ctx context.Context, tokens []token.Token) []element.Element {
	p := t.newPass(ctx, false)
	return p.run(tokens, true)
}

// pass is the per-invocation state of one transcription. Nothing in it is
// shared across calls.
type pass struct {
	ctx        context.Context
	opts       *Options
	r          element.Renderer
	alloc      *keypath.Allocator
	slugs      *slug.Registry
	toc        []TocEntry
	raw        strings.Builder
	inRaw      bool
	collectTOC bool
}

func (t *Transcriber) newPass(ctx context.Context, collectTOC bool) *pass {
	return &pass{
		ctx:        ctx,
		opts:       &t.opts,
		r:          t.opts.Renderer,
		alloc:      keypath.NewAllocator(),
		slugs:      slug.NewRegistry(t.opts.Slugify),
		toc:        []TocEntry{},
		collectTOC: collectTOC,
	}
}

// run walks one token list inside its own identity scope. A raw block
// opened inside this list and left unterminated is flushed before the
// scope closes, so its buffered content is never silently dropped.
func (p *pass) run(tokens []token.Token, inline bool) []element.Element {
	scope := p.alloc.Enter()
	defer scope.Leave()

	wasRaw := p.inRaw
	out := make([]element.Element, 0, len(tokens))
	for i := range tokens {
		out = append(out, p.transcribe(&tokens[i], inline)...)
	}
	if p.inRaw && !wasRaw {
		out = append(out, p.flushRaw()...)
	}
	return out
}

func (p *pass) log() *zerolog.Logger {
	return zerolog.Ctx(p.ctx)
}
