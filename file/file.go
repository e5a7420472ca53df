package file

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/revelaction/craftfix/logging"
	sent "github.com/revelaction/craftfix/sentence"
)

// maxLineSize bounds a single CoNLL-U line.
const maxLineSize = 1024 * 1024

// Open opens a CoNLL-U file for reading.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return f, nil
}

// Sentences returns the sentence blocks of the CoNLL-U input r, in order.
// name identifies the input in log messages and errors.
//
// Blank lines without accumulated tokens are reported to log and skipped. A
// token line that does not have exactly 10 fields stops the sequence with
// an error.
func Sentences(name string, r io.Reader, log logging.Logger) iter.Seq2[sent.Sentence, error] {
	return func(yield func(sent.Sentence, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

		var s sent.Sentence
		ln := 0
		for scanner.Scan() {
			ln++
			line := strings.TrimSuffix(scanner.Text(), "\r")

			switch {
			case sent.IsBlank(line):
				if len(s.Tokens) > 0 {
					if !yield(s, nil) {
						return
					}
				} else {
					log.Warnf("ignoring empty sentence on %s line %d", name, ln)
				}
				s = sent.Sentence{}

			case sent.IsComment(line):
				s.Comments = append(s.Comments, line)

			default:
				tok, err := sent.ParseToken(line)
				if err != nil {
					yield(sent.Sentence{}, fmt.Errorf("%s line %d: %w: %q", name, ln, err, line))
					return
				}
				s.Tokens = append(s.Tokens, tok)
			}
		}

		if err := scanner.Err(); err != nil {
			yield(sent.Sentence{}, fmt.Errorf("%s: %w", name, err))
			return
		}

		// no trailing blank line
		if len(s.Tokens) > 0 {
			yield(s, nil)
			return
		}

		if len(s.Comments) > 0 {
			log.Warnf("ignoring empty sentence on %s line %d", name, ln)
		}
	}
}
