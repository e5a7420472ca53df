package fix

import (
	"errors"
	"testing"

	sent "github.com/revelaction/craftfix/sentence"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func token(form, lemma, upos, xpos, feats string) sent.Token {
	return sent.Token{
		Id: "1", Form: form, Lemma: lemma, Upos: upos, Xpos: xpos,
		Feats: feats, Head: "0", Deprel: "root", Deps: "_", Misc: "_",
	}
}

func TestFeatureColumn(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core).Sugar()

	tokens := []sent.Token{
		token("he", "he", "PRP", "Case=Nom", "_"),
		token("runs", "run", "VBZ", "VBZ", "_"),
	}

	n, err := FeatureColumn(tokens, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n != 1 {
		t.Errorf("expected 1 change, got %d", n)
	}

	if tokens[0].Feats != "Case=Nom" || tokens[0].Xpos != "_" {
		t.Errorf("expected FEATS Case=Nom and XPOS _, got %q %q", tokens[0].Feats, tokens[0].Xpos)
	}

	if tokens[1].Xpos != "VBZ" || tokens[1].Feats != "_" {
		t.Errorf("second token must be untouched, got %+v", tokens[1])
	}

	infos := logs.FilterLevelExact(zap.InfoLevel).All()
	if len(infos) != 1 {
		t.Fatalf("expected 1 trace, got %d", len(infos))
	}
}

func TestFeatureColumnConflict(t *testing.T) {
	tokens := []sent.Token{token("he", "he", "PRP", "Case=Nom", "Number=Sing")}

	_, err := FeatureColumn(tokens, zap.NewNop().Sugar())
	if !errors.Is(err, ErrFeatsConflict) {
		t.Fatalf("expected ErrFeatsConflict, got %v", err)
	}

	if tokens[0].Feats != "Number=Sing" || tokens[0].Xpos != "Case=Nom" {
		t.Errorf("conflicting token must not be overwritten, got %+v", tokens[0])
	}
}

func TestMapUpos(t *testing.T) {
	tokens := []sent.Token{
		token("dogs", "dog", "NNS", "_", "_"),
		token("dog", "dog", "NOUN", "_", "_"),
		token("?", "?", "WEIRD", "_", "_"),
	}

	n, err := MapUpos(tokens, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n != 1 {
		t.Errorf("expected 1 change, got %d", n)
	}

	expected := []string{"NOUN", "NOUN", "WEIRD"}
	for i, e := range expected {
		if tokens[i].Upos != e {
			t.Errorf("token %d: expected %q, got %q", i, e, tokens[i].Upos)
		}
	}
}

func TestUposTable(t *testing.T) {
	cases := map[string]string{
		"#": "SYM", "$": "SYM", "''": "PUNCT", ",": "PUNCT", "-LRB-": "PUNCT",
		"-RRB-": "PUNCT", ".": "PUNCT", ":": "PUNCT", "AFX": "ADJ", "CC": "CCONJ",
		"CD": "NUM", "DT": "DET", "EX": "PRON", "FW": "X", "HYPH": "PUNCT",
		"IN": "ADP", "JJ": "ADJ", "JJR": "ADJ", "JJS": "ADJ", "LS": "X",
		"MD": "VERB", "NIL": "X", "NN": "NOUN", "NNP": "PROPN", "NNPS": "PROPN",
		"NNS": "NOUN", "PDT": "DET", "POS": "PART", "PRP": "PRON", "PRP$": "DET",
		"RB": "ADV", "RBR": "ADV", "RBS": "ADV", "RP": "ADP", "SYM": "SYM",
		"TO": "PART", "UH": "INTJ", "VB": "VERB", "VBD": "VERB", "VBG": "VERB",
		"VBN": "VERB", "VBP": "VERB", "VBZ": "VERB", "WDT": "DET", "WP": "PRON",
		"WP$": "DET", "WRB": "ADV", "``": "PUNCT",
	}

	if len(PTBTags()) != len(cases) {
		t.Errorf("expected %d tags, got %d", len(cases), len(PTBTags()))
	}

	for tag, upos := range cases {
		if got := Upos(tag); got != upos {
			t.Errorf("%q: expected %q, got %q", tag, upos, got)
		}
	}

	for _, unknown := range []string{"", "NOUN", "VERB", "nn", "XYZ"} {
		if got := Upos(unknown); got != unknown {
			t.Errorf("%q: expected unchanged, got %q", unknown, got)
		}
	}
}

func TestUposIdempotent(t *testing.T) {
	for _, tag := range PTBTags() {
		once := Upos(tag)
		if twice := Upos(once); twice != once {
			t.Errorf("%q: expected %q after second mapping, got %q", tag, once, twice)
		}
	}
}

func TestTrimWhitespace(t *testing.T) {
	tokens := []sent.Token{
		{Id: " 1 ", Form: "  dog ", Lemma: "\tnew  york ", Upos: " NN", Xpos: " x ", Feats: " a=b ", Head: " 0", Deprel: " root", Deps: " _", Misc: " _ "},
		token("cat", "cat", "NN", "_", "_"),
	}

	n, err := TrimWhitespace(tokens, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n != 1 {
		t.Errorf("expected 1 change, got %d", n)
	}

	got := tokens[0]
	if got.Form != "dog" {
		t.Errorf("expected form %q, got %q", "dog", got.Form)
	}

	if got.Lemma != "new  york" {
		t.Errorf("expected interior whitespace kept, got %q", got.Lemma)
	}

	if got.Id != " 1 " || got.Upos != " NN" || got.Xpos != " x " || got.Feats != " a=b " ||
		got.Head != " 0" || got.Deprel != " root" || got.Deps != " _" || got.Misc != " _ " {
		t.Errorf("only FORM and LEMMA may be trimmed, got %+v", got)
	}
}
