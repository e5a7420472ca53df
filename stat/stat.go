package stat

import (
	"fmt"
	"io"
	"sort"

	sent "github.com/revelaction/craftfix/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumFiles              int
	NumSentences          int
	NumTokens             int
	NumWarnings           int
	TokensPerSentenceMean int

	// tokens changed, per pass name
	Fixes map[string]int
}

func (h *Handler) Get() Stats {
	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{Fixes: map[string]int{}}
	return &Handler{
		stats: stats,
	}
}

func (h *Handler) AddFile() {
	h.stats.NumFiles++
}

func (h *Handler) Aggregate(s sent.Sentence) {
	h.stats.NumSentences++
	h.stats.NumTokens += len(s.Tokens)
}

// Fix has the signature of fix.Pipeline.OnFix.
func (h *Handler) Fix(pass string, changed int) {
	h.stats.Fixes[pass] += changed
}

func (h *Handler) Warn() {
	h.stats.NumWarnings++
}

// Fprint writes a human readable summary to w.
func (s Stats) Fprint(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Num files %d, num sentences %d, num tokens %d, num tokens per sentence %d, num warnings %d\n",
		s.NumFiles, s.NumSentences, s.NumTokens, s.TokensPerSentenceMean, s.NumWarnings)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(s.Fixes))
	for name := range s.Fixes {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(w, "%-16s %d tokens changed\n", name, s.Fixes[name]); err != nil {
			return err
		}
	}

	return nil
}
