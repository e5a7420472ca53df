package main

import (
	"errors"

	"github.com/revelaction/craftfix/config"
	"github.com/revelaction/craftfix/fix"

	"github.com/urfave/cli/v2"
)

type FixOptions struct {
	Revision fix.Revision
	Format   string
	Output   string
	Stats    bool
	Progress bool
	Verbose  bool
	Paths    []string
}

// parseOptions layers the command line flags over the configuration file,
// which is layered over the defaults.
func parseOptions(c *cli.Context) (FixOptions, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return FixOptions{}, err
		}
	}

	if c.IsSet("revision") {
		cfg.Revision = c.String("revision")
	}
	if c.Bool("v31") {
		cfg.Revision = string(fix.RevisionV31)
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("stats") {
		cfg.Stats = c.Bool("stats")
	}
	if c.IsSet("progress") {
		cfg.Progress = c.Bool("progress")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}

	if err := cfg.Validate(); err != nil {
		return FixOptions{}, err
	}

	if c.NArg() == 0 {
		_ = cli.ShowAppHelp(c)
		return FixOptions{}, errors.New("no CoNLL-U files given")
	}

	return FixOptions{
		Revision: cfg.ParsedRevision(),
		Format:   cfg.Format,
		Output:   c.String("output"),
		Stats:    cfg.Stats,
		Progress: cfg.Progress,
		Verbose:  cfg.Verbose,
		Paths:    c.Args().Slice(),
	}, nil
}
