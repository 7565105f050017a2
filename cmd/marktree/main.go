// Command marktree converts markdown documents into JSON trees of UI
// element descriptors, using the transcription engine in pkg/transcribe.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/marktree/marktree/pkg/htmlfrag"
	"github.com/marktree/marktree/pkg/transcribe"
)

func main() {
	if err := run(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// appState carries the dependencies commands need, so tests can run the
// CLI against a memory filesystem and a buffer.
type appState struct {
	fs     afero.Fs
	stdout io.Writer
	cfg    config
}

// newTranscriber builds a transcriber from the effective configuration.
func (app *appState) newTranscriber() *transcribe.Transcriber {
	opts := transcribe.Options{
		UnwrapSoleImage: app.cfg.UnwrapSoleImage,
	}
	if app.cfg.RawHTML {
		opts.HTML = htmlfrag.New(nil)
	}
	return transcribe.New(opts)
}

func run(args []string, fsys afero.Fs, stdout, stderr io.Writer) error {
	app := &appState{fs: fsys, stdout: stdout}

	var (
		configPath      string
		logLevel        string
		unwrapSoleImage bool
		rawHTML         bool
	)

	rootCmd := &cobra.Command{
		Use:           "marktree",
		Short:         "Convert markdown into trees of UI element descriptors",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&unwrapSoleImage, "unwrap-sole-image", false, "drop the paragraph wrapper around a sole image (changes block semantics)")
	rootCmd.PersistentFlags().BoolVar(&rawHTML, "raw-html", false, "transcribe raw HTML fragments into elements")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if configPath != "" {
			cfg, err := loadConfig(app.fs, configPath)
			if err != nil {
				return err
			}
			app.cfg = *cfg
		}
		// Flags set explicitly win over the config file.
		if cmd.Flags().Changed("unwrap-sole-image") {
			app.cfg.UnwrapSoleImage = unwrapSoleImage
		}
		if cmd.Flags().Changed("raw-html") {
			app.cfg.RawHTML = rawHTML
		}
		if cmd.Flags().Changed("log-level") {
			app.cfg.LogLevel = logLevel
		}

		level := zerolog.WarnLevel
		if app.cfg.LogLevel != "" {
			parsed, err := zerolog.ParseLevel(app.cfg.LogLevel)
			if err != nil {
				return errors.Errorf("invalid log level %q: %w", app.cfg.LogLevel, err)
			}
			level = parsed
		}

		logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
			Level(level).
			With().
			Timestamp().
			Str("run_id", uuid.NewString()).
			Logger()
		cmd.SetContext(logger.WithContext(cmd.Context()))
		return nil
	}

	rootCmd.AddCommand(newRenderCommand(app))
	rootCmd.AddCommand(newTOCCommand(app))
	rootCmd.AddCommand(newWordsCommand(app))

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		return errors.Errorf("marktree: %w", err)
	}
	return nil
}
