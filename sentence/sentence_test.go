package sentence

import (
	"errors"
	"strings"
	"testing"
)

func TestParseToken(t *testing.T) {
	line := "1\tThe\tthe\tDT\t_\t_\t2\tdet\t_\t_"
	tok, err := ParseToken(line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tok.Id != "1" || tok.Form != "The" || tok.Upos != "DT" || tok.Head != "2" || tok.Deprel != "det" {
		t.Errorf("unexpected token %+v", tok)
	}

	if tok.String() != line {
		t.Errorf("expected %q, got %q", line, tok.String())
	}
}

func TestParseTokenFieldCount(t *testing.T) {
	cases := []string{
		"",
		"1\tThe\tthe",
		"1\tThe\tthe\tDT\t_\t_\t2\tdet\t_",
		"1\tThe\tthe\tDT\t_\t_\t2\tdet\t_\t_\textra",
	}

	for _, line := range cases {
		_, err := ParseToken(line)
		if !errors.Is(err, ErrFieldCount) {
			t.Errorf("line %q: expected ErrFieldCount, got %v", line, err)
		}
	}
}

func TestParseTokenKeepsSpaces(t *testing.T) {
	tok, err := ParseToken("1\t  dog \t dog\tNN\t_\t_\t0\troot\t_\t_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tok.Form != "  dog " || tok.Lemma != " dog" {
		t.Errorf("fields must be kept verbatim, got form %q lemma %q", tok.Form, tok.Lemma)
	}
}

func TestTokenStringTabs(t *testing.T) {
	tok := Token{Id: "3", Form: "a b", Lemma: "a b", Upos: "X", Xpos: "_", Feats: "_", Head: "0", Deprel: "root", Deps: "_", Misc: "_"}
	if n := strings.Count(tok.String(), "\t"); n != NumFields-1 {
		t.Errorf("expected %d tabs, got %d", NumFields-1, n)
	}
}

func TestLineKinds(t *testing.T) {
	if !IsBlank("") || !IsBlank(" \t ") {
		t.Errorf("expected empty and whitespace lines to be blank")
	}

	if IsBlank("# x") {
		t.Errorf("comment is not blank")
	}

	if !IsComment("# sent_id = 1") || IsComment("1\t#\t#") {
		t.Errorf("unexpected comment detection")
	}
}
