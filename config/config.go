// Package config loads the craftfix run configuration from an optional
// YAML file. Command line flags are applied on top by the caller.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/revelaction/craftfix/fix"
	"github.com/revelaction/craftfix/render"

	"gopkg.in/yaml.v3"
)

const defaultConfigYAML = `# craftfix configuration

# CRAFT release of the input files: default or v3.1
revision: default

# output format: conllu or json
format: conllu

# print counts to stderr after the run
stats: false

# show a progress bar over the input files
progress: false

# log every correction
verbose: false
`

// Config models the YAML configuration file.
type Config struct {
	Revision string `yaml:"revision"`
	Format   string `yaml:"format"`
	Stats    bool   `yaml:"stats"`
	Progress bool   `yaml:"progress"`
	Verbose  bool   `yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Revision: string(fix.RevisionDefault),
		Format:   render.Defaultformat,
	}
}

// DefaultYAML returns a commented configuration file with the defaults.
func DefaultYAML() string {
	return defaultConfigYAML
}

// Load reads the configuration at path. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}

	return c, nil
}

// Parse decodes a YAML configuration. Unknown keys are an error.
func Parse(data []byte) (Config, error) {
	c := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the enumerated values.
func (c Config) Validate() error {
	if _, err := fix.ParseRevision(c.Revision); err != nil {
		return err
	}

	if _, err := render.New(c.Format, io.Discard); err != nil {
		return err
	}

	return nil
}

// ParsedRevision returns the revision. It must be called on a validated
// Config.
func (c Config) ParsedRevision() fix.Revision {
	r, _ := fix.ParseRevision(c.Revision)
	return r
}
