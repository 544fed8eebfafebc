package render

import (
	"encoding/json"
	"io"

	"github.com/revelaction/annodiff/compare"
)

// JSONRenderer writes a comparison result as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes the result as one JSON object.
func (r *JSONRenderer) Render(res *compare.Result) error {
	return json.NewEncoder(r.W).Encode(res)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
