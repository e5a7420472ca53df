package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/revelaction/craftfix/fix"
	"github.com/revelaction/craftfix/render"

	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := run(os.Args, ui); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "craftfix: %v\n", err)
}

func run(args []string, ui UI) error {
	return newApp(ui).Run(args)
}

func newApp(ui UI) *cli.App {
	return &cli.App{
		Name:      "craftfix",
		Usage:     "Fix CRAFT corpus .conllu data",
		UsageText: "craftfix [options] <file.conllu>...",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		// errors are printed once, by main
		ExitErrHandler: func(*cli.Context, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"CRAFTFIX_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "revision",
				Aliases: []string{"r"},
				Usage:   "CRAFT release of the input (" + strings.Join(fix.SupportedRevisions(), ", ") + ")",
				EnvVars: []string{"CRAFTFIX_REVISION"},
			},
			&cli.BoolFlag{
				Name:  "v31",
				Usage: "apply fixes specific to CRAFT v3.1 (same as --revision v3.1)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format (" + strings.Join(render.SupportedFormats(), ", ") + ")",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write to `FILE` instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print counts to stderr after the run",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "show a progress bar over the input files",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log every correction",
			},
		},
		Action: func(c *cli.Context) error {
			opts, err := parseOptions(c)
			if err != nil {
				return err
			}
			return fixCommand(opts, ui)
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "Show version",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
			{
				Name:  "config",
				Usage: "Print a configuration file with the default values",
				Action: func(c *cli.Context) error {
					return configCommand(ui)
				},
			},
		},
	}
}
