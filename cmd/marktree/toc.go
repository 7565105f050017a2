package main

import (
	"encoding/json"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/marktree/marktree/pkg/transcribe"
)

type tocDocument struct {
	File string                `json:"file"`
	TOC  []transcribe.TocEntry `json:"toc"`
}

func newTOCCommand(app *appState) *cobra.Command {
	return &cobra.Command{
		Use:   "toc <file|glob>...",
		Short: "Emit only the table of contents of each input as JSON",
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
				if err := enc.Encode(tocDocument{File: doc.File, TOC: doc.TOC}); err != nil {
					return errors.Errorf("encoding %s: %w", file, err)
				}
			}
			return result.ErrorOrNil()
		},
	}
}
