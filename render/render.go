package render

import (
	"fmt"
	"io"
	"strings"

	sent "github.com/revelaction/craftfix/sentence"
)

const (
	FormatConllu  = "conllu"
	FormatJSON    = "json"
	Defaultformat = FormatConllu
)

func SupportedFormats() []string {
	return []string{FormatConllu, FormatJSON}
}

// Renderer writes corrected sentences to an output.
type Renderer interface {
	Render(s sent.Sentence) error
}

// New returns the Renderer for format writing to w.
func New(format string, w io.Writer) (Renderer, error) {
	switch format {
	case "", FormatConllu:
		return NewConlluRenderer(w), nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	}

	return nil, fmt.Errorf("unknown format %q (allowed values are %s)", format, strings.Join(SupportedFormats(), ", "))
}

// ConlluRenderer writes sentences in the CoNLL-U format.
type ConlluRenderer struct {
	W io.Writer
}

func NewConlluRenderer(w io.Writer) *ConlluRenderer {
	return &ConlluRenderer{W: w}
}

// Render writes the comment lines, then one line per token, then the blank
// line that terminates the sentence.
func (r *ConlluRenderer) Render(s sent.Sentence) error {
	return Write(r.W, s)
}

// Write writes s to w in the CoNLL-U format.
func Write(w io.Writer, s sent.Sentence) error {
	var b strings.Builder
	for _, c := range s.Comments {
		b.WriteString(c)
		b.WriteByte('\n')
	}

	for _, t := range s.Tokens {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())
	return err
}

var _ Renderer = (*ConlluRenderer)(nil)
