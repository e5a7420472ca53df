package fix

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/revelaction/craftfix/file"
	"github.com/revelaction/craftfix/logging"
	sent "github.com/revelaction/craftfix/sentence"
)

// Revision identifies the CRAFT release the input was produced by.
type Revision string

const (
	// RevisionDefault needs whitespace fixes only.
	RevisionDefault Revision = "default"

	// RevisionV31 has features in the XPOS column and Penn tags in UPOS.
	RevisionV31 Revision = "v3.1"
)

var ErrRevision = errors.New("unknown revision")

func SupportedRevisions() []string {
	return []string{string(RevisionDefault), string(RevisionV31)}
}

// ParseRevision returns the Revision named s. The empty string is the
// default revision.
func ParseRevision(s string) (Revision, error) {
	switch Revision(s) {
	case "", RevisionDefault:
		return RevisionDefault, nil
	case RevisionV31:
		return RevisionV31, nil
	}

	return "", fmt.Errorf("%w: %q (allowed values are %s)", ErrRevision, s, strings.Join(SupportedRevisions(), ", "))
}

// Passes returns the passes for the revision, in the order they must run.
func (r Revision) Passes() []Pass {
	if r == RevisionV31 {
		return []Pass{FeatureColumnPass, MapUposPass, TrimWhitespacePass}
	}

	return []Pass{TrimWhitespacePass}
}

// Pipeline applies an ordered list of passes to sentences.
type Pipeline struct {
	Passes []Pass

	// OnFix, if set, is called after each pass with the number of tokens
	// the pass changed.
	OnFix func(pass string, changed int)

	log logging.Logger
}

// NewPipeline returns the Pipeline for the revision.
func NewPipeline(r Revision, log logging.Logger) *Pipeline {
	if log == nil {
		log = logging.Nop()
	}

	return &Pipeline{Passes: r.Passes(), log: log}
}

// Apply runs all passes over the sentence tokens, stopping at the first
// error.
func (p *Pipeline) Apply(s *sent.Sentence) error {
	for _, pass := range p.Passes {
		n, err := pass.Fn(s.Tokens, p.log)
		if err != nil {
			return fmt.Errorf("%s: %w", pass.Name, err)
		}

		if p.OnFix != nil {
			p.OnFix(pass.Name, n)
		}
	}

	return nil
}

// Process reads the sentences of r and yields them corrected. Only the
// current sentence is held in memory. The sequence stops at the first read
// or pass error.
func (p *Pipeline) Process(name string, r io.Reader) iter.Seq2[sent.Sentence, error] {
	return func(yield func(sent.Sentence, error) bool) {
		for s, err := range file.Sentences(name, r, p.log) {
			if err != nil {
				yield(sent.Sentence{}, err)
				return
			}

			if err := p.Apply(&s); err != nil {
				yield(sent.Sentence{}, fmt.Errorf("%s: %w", name, err))
				return
			}

			if !yield(s, nil) {
				return
			}
		}
	}
}
