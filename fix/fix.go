package fix

import (
	"errors"
	"fmt"
	"strings"

	"github.com/revelaction/craftfix/logging"
	sent "github.com/revelaction/craftfix/sentence"
)

var ErrFeatsConflict = errors.New("non-empty FEATS")

// Pass corrects the tokens of one sentence in place and returns the number
// of tokens it changed.
type Pass struct {
	Name string
	Fn   func(tokens []sent.Token, log logging.Logger) (int, error)
}

var (
	FeatureColumnPass  = Pass{Name: "feature-column", Fn: FeatureColumn}
	MapUposPass        = Pass{Name: "map-upos", Fn: MapUpos}
	TrimWhitespacePass = Pass{Name: "trim-whitespace", Fn: TrimWhitespace}
)

// FeatureColumn moves features appearing in the XPOS column to the FEATS
// column. A token with features in XPOS must have an empty FEATS.
func FeatureColumn(tokens []sent.Token, log logging.Logger) (int, error) {
	n := 0
	for i := range tokens {
		t := &tokens[i]
		if !strings.Contains(t.Xpos, "=") {
			continue
		}

		if t.Feats != sent.EmptySentinel {
			return n, fmt.Errorf("%w: %s (XPOS %s) for word: %s", ErrFeatsConflict, t.Feats, t.Xpos, t)
		}

		log.Infof("replacing FEATS with XPOS for word: %s", t)
		t.Feats = t.Xpos
		t.Xpos = sent.EmptySentinel
		n++
	}

	return n, nil
}

// MapUpos converts the UPOS column tags from Penn to UD.
func MapUpos(tokens []sent.Token, _ logging.Logger) (int, error) {
	n := 0
	for i := range tokens {
		u := Upos(tokens[i].Upos)
		if u != tokens[i].Upos {
			tokens[i].Upos = u
			n++
		}
	}

	return n, nil
}

// TrimWhitespace removes leading and trailing whitespace from the FORM and
// LEMMA columns.
func TrimWhitespace(tokens []sent.Token, _ logging.Logger) (int, error) {
	n := 0
	for i := range tokens {
		t := &tokens[i]
		form, lemma := strings.TrimSpace(t.Form), strings.TrimSpace(t.Lemma)
		if form != t.Form || lemma != t.Lemma {
			t.Form, t.Lemma = form, lemma
			n++
		}
	}

	return n, nil
}
