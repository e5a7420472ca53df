package sentence

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// EmptySentinel marks a column that is intentionally empty.
	EmptySentinel = "_"

	// CommentMarker starts a metadata line.
	CommentMarker = "#"

	// NumFields is the number of tab separated columns of a token line.
	NumFields = 10

	fieldSep = "\t"
)

var ErrFieldCount = errors.New("wrong number of fields")

// Sentence is one annotated sentence block: the metadata lines preceding
// the tokens, carried verbatim, and the tokens themselves.
type Sentence struct {
	Comments []string `json:"comments"`
	Tokens   []Token  `json:"tokens"`
}

// Token represents a word of the sentence, one CoNLL-U line.
type Token struct {
	// Word index, integer starting at 1, or a range/empty node id
	Id string `json:"id"`

	// The word form as it appears in the text
	Form string `json:"form"`

	// The lemma of the word
	Lemma string `json:"lemma"`

	// Universal POS tag
	Upos string `json:"upos"`

	// Treebank specific POS tag
	Xpos string `json:"xpos"`

	// Morphological features, "_" when empty
	Feats string `json:"feats"`

	Head   string `json:"head"`
	Deprel string `json:"deprel"`
	Deps   string `json:"deps"`
	Misc   string `json:"misc"`
}

// ParseToken builds a Token from a tab separated line. The line must have
// exactly NumFields fields.
func ParseToken(line string) (Token, error) {
	f := strings.Split(line, fieldSep)
	if len(f) != NumFields {
		return Token{}, fmt.Errorf("%w: expected %d, got %d", ErrFieldCount, NumFields, len(f))
	}

	return Token{
		Id:     f[0],
		Form:   f[1],
		Lemma:  f[2],
		Upos:   f[3],
		Xpos:   f[4],
		Feats:  f[5],
		Head:   f[6],
		Deprel: f[7],
		Deps:   f[8],
		Misc:   f[9],
	}, nil
}

// Fields returns the columns of the token in CoNLL-U order.
func (t Token) Fields() []string {
	return []string{
		t.Id, t.Form, t.Lemma, t.Upos, t.Xpos,
		t.Feats, t.Head, t.Deprel, t.Deps, t.Misc,
	}
}

// String returns the token as a CoNLL-U line, without line terminator.
func (t Token) String() string {
	return strings.Join(t.Fields(), fieldSep)
}

// IsComment reports whether line is a metadata line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, CommentMarker)
}

// IsBlank reports whether line terminates a sentence block.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
