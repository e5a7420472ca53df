package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/craftfix/sentence"
)

// JSONRenderer writes each sentence as one JSON object per line.
type JSONRenderer struct {
	W io.Writer

	enc *json.Encoder
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &JSONRenderer{W: w, enc: enc}
}

// Render serializes the sentence with its comments and tokens.
func (r *JSONRenderer) Render(s sent.Sentence) error {
	if s.Comments == nil {
		s.Comments = []string{}
	}
	return r.enc.Encode(s)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
