// Package config loads the optional .docstrex.yaml settings file. Command
// line flags always win over file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no --config flag
// is given.
const DefaultFile = ".docstrex.yaml"

type Config struct {
	// Outfile is the Markdown file name written into each directory.
	Outfile string `yaml:"outfile"`
	// Convert names the external Markdown-to-HTML converter program.
	Convert string `yaml:"convert"`
	// HTML enables HTML generation alongside the Markdown output.
	HTML bool `yaml:"html"`
	// Exclude holds base-name globs of Python files to skip.
	Exclude []string `yaml:"exclude"`
}

func Default() Config {
	return Config{Outfile: "README.md"}
}

// Load reads a settings file. A missing file at the default location is not
// an error; a missing file named explicitly is.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Outfile == "" {
		cfg.Outfile = "README.md"
	}
	return cfg, nil
}
