package render

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/revelaction/annodiff/compare"
)

// CSVRenderer writes the comparison log as CSV, one row per record. The
// header names the two compared sources.
type CSVRenderer struct {
	W io.Writer
}

// NewCSVRenderer creates a CSVRenderer writing to w.
func NewCSVRenderer(w io.Writer) *CSVRenderer {
	return &CSVRenderer{W: w}
}

func (r *CSVRenderer) Render(res *compare.Result) error {
	w := csv.NewWriter(r.W)

	if err := w.Write([]string{"Sentence", "Frame", "Key", res.NameA, res.NameB}); err != nil {
		return err
	}

	for _, rec := range res.Records {
		row := []string{strconv.Itoa(rec.Sentence), rec.Frame, rec.Key, rec.ValueA, rec.ValueB}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// compile-time interface check
var _ Renderer = (*CSVRenderer)(nil)
