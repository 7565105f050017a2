package main

import (
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// config mirrors the persistent flags; values from a config file are
// overridden by flags set explicitly on the command line.
type config struct {
	UnwrapSoleImage bool   `yaml:"unwrap_sole_image"`
	RawHTML         bool   `yaml:"raw_html"`
	LogLevel        string `yaml:"log_level"`
}

func loadConfig(fsys afero.Fs, path string) (*config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Errorf("reading config %s: %w", path, err)
	}

	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}
