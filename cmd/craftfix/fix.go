package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/revelaction/craftfix/file"
	"github.com/revelaction/craftfix/fix"
	"github.com/revelaction/craftfix/logging"
	"github.com/revelaction/craftfix/render"
	"github.com/revelaction/craftfix/stat"
)

// warnCounter forwards to Logger and counts warnings.
type warnCounter struct {
	logging.Logger
	onWarn func()
}

func (w warnCounter) Warnf(template string, args ...interface{}) {
	w.onWarn()
	w.Logger.Warnf(template, args...)
}

// fixCommand corrects the files in order, writing all of them to one
// output. It stops at the first error; what was written so far stays
// written.
func fixCommand(opts FixOptions, ui UI) (err error) {
	log := logging.New(ui.Err, opts.Verbose)
	defer func() { _ = log.Sync() }()

	out := ui.Out
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", opts.Output, err)
		}
		defer f.Close()
		out = f
	}

	bw := bufio.NewWriter(out)
	defer func() {
		if ferr := bw.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	r, err := render.New(opts.Format, bw)
	if err != nil {
		return err
	}

	st := stat.NewHandler()
	p := fix.NewPipeline(opts.Revision, warnCounter{Logger: log, onWarn: st.Warn})
	p.OnFix = st.Fix

	bar := newProgress(opts.Progress, ui.Err, opts.Paths)
	for _, path := range opts.Paths {
		bar.SetName(path)
		if err := fixFile(p, r, st, path); err != nil {
			bar.Stop()
			return err
		}
		st.AddFile()
		bar.Incr()
	}
	bar.Stop()

	if opts.Stats {
		if err := bw.Flush(); err != nil {
			return err
		}
		return st.Get().Fprint(ui.Err)
	}

	return nil
}

func fixFile(p *fix.Pipeline, r render.Renderer, st *stat.Handler, path string) error {
	f, err := file.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return fixReader(p, r, st, path, f)
}

func fixReader(p *fix.Pipeline, r render.Renderer, st *stat.Handler, name string, in io.Reader) error {
	for s, err := range p.Process(name, in) {
		if err != nil {
			return err
		}

		if err := r.Render(s); err != nil {
			return err
		}
		st.Aggregate(s)
	}

	return nil
}
