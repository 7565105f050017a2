package main

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// expandInputs resolves plain paths and doublestar glob patterns against
// the app filesystem. Failures are accumulated so one bad pattern does not
// hide the others.
func expandInputs(fsys afero.Fs, patterns []string) ([]string, error) {
	var (
		files  []string
		result *multierror.Error
		seen   = map[string]bool{}
	)
	iofs := afero.NewIOFS(fsys)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			ok, err := afero.Exists(fsys, pattern)
			switch {
			case err != nil:
				result = multierror.Append(result, errors.Errorf("stat %s: %w", pattern, err))
			case !ok:
				result = multierror.Append(result, errors.Errorf("no such file: %s", pattern))
			default:
				add(pattern)
			}
			continue
		}

		matches, err := doublestar.Glob(iofs, pattern)
		if err != nil {
			result = multierror.Append(result, errors.Errorf("bad pattern %q: %w", pattern, err))
			continue
		}
		if len(matches) == 0 {
			result = multierror.Append(result, errors.Errorf("no files match %q", pattern))
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}

	return files, result.ErrorOrNil()
}
