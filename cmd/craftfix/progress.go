package main

import (
	"io"
	"sync/atomic"

	"github.com/gosuri/uiprogress"
)

// progress shows a bar over the input files. A nil *progress is disabled.
type progress struct {
	p    *uiprogress.Progress
	bar  *uiprogress.Bar
	name atomic.Value
}

func newProgress(enabled bool, w io.Writer, paths []string) *progress {
	if !enabled || len(paths) == 0 {
		return nil
	}

	pr := &progress{p: uiprogress.New()}
	pr.p.Out = w
	pr.bar = pr.p.AddBar(len(paths))
	pr.bar.AppendCompleted()
	pr.bar.PrependElapsed()
	// Append file name to the progress bar
	pr.bar.AppendFunc(func(b *uiprogress.Bar) string {
		name, _ := pr.name.Load().(string)
		return name
	})

	pr.p.Start()
	return pr
}

func (pr *progress) SetName(name string) {
	if pr == nil {
		return
	}
	pr.name.Store(name)
}

func (pr *progress) Incr() {
	if pr == nil {
		return
	}
	pr.bar.Incr()
}

func (pr *progress) Stop() {
	if pr == nil {
		return
	}
	pr.p.Stop()
}
