package main

import (
	"fmt"

	"github.com/revelaction/craftfix/config"
)

// set with -ldflags at build time
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "craftfix version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}

func configCommand(ui UI) error {
	_, err := fmt.Fprint(ui.Out, config.DefaultYAML())
	return err
}
