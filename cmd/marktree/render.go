package main

import (
	"context"
	"encoding/json"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/marktree/marktree/pkg/element"
	"github.com/marktree/marktree/pkg/tokenize"
	"github.com/marktree/marktree/pkg/transcribe"
)

// document is one rendered input file.
type document struct {
	File     string                `json:"file"`
	Elements []element.Element     `json:"elements"`
	TOC      []transcribe.TocEntry `json:"toc"`
}

func newRenderCommand(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "render <file|glob>...",
		Short: "Emit the element tree and table of contents of each input as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandInputs(app.fs, args)
			if err != nil {
				return err
			}

			tr := app.newTranscriber()
			enc := json.NewEncoder(app.stdout)
			enc.SetIndent("", "  ")

			var result *multierror.Error
			for _, file := range files {
				doc, err := renderFile(cmd.Context(), app.fs, tr, file)
				if err != nil {
					result = multierror.Append(result, err)
					continue
				}
				if err := enc.Encode(doc); err != nil {
					return errors.Errorf("encoding %s: %w", file, err)
				}
			}
			return result.ErrorOrNil()
		},
	}
}

func renderFile(ctx context.Context, fsys afero.Fs, tr *transcribe.Transcriber, file string) (*document, error) {
	src, err := afero.ReadFile(fsys, file)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", file, err)
	}

	tokens, err := tokenize.Tokenize(src)
	if err != nil {
		return nil, errors.Errorf("tokenizing %s: %w", file, err)
	}

	res := tr.TranscribeBlock(ctx, tokens)
	return &document{File: file, Elements: res.Elements, TOC: res.TOC}, nil
}
