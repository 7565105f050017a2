package main

import (
	"encoding/json"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/marktree/marktree/pkg/tokenize"
	"github.com/marktree/marktree/pkg/transcribe"
)

type wordsDocument struct {
	File  string `json:"file"`
	Words int    `json:"words"`
}

func newWordsCommand(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "words <file|glob>...",
		Short: "Count the words of the plain text content of each input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandInputs(app.fs, args)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(app.stdout)
			enc.SetIndent("", "  ")

			var result *multierror.Error
			for _, file := range files {
				src, err := afero.ReadFile(app.fs, file)
				if err != nil {
					result = multierror.Append(result, errors.Errorf("reading %s: %w", file, err))
					continue
				}
				tokens, err := tokenize.Tokenize(src)
				if err != nil {
					result = multierror.Append(result, errors.Errorf("tokenizing %s: %w", file, err))
					continue
				}
				out := wordsDocument{File: file, Words: transcribe.WordCount(tokens)}
				if err := enc.Encode(out); err != nil {
					return errors.Errorf("encoding %s: %w", file, err)
				}
			}
			return result.ErrorOrNil()
		},
	}
}
