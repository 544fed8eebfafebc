package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/revelaction/annodiff/compare"
)

const Defaultformat = "csv"

var (
	Yellow256 = "\033[1;38;5;130m"
	Grey256   = "\033[1;38;5;145m"
	Green256  = "\033[1;38;5;70m"
	Off       = "\033[0m"
)

// SupportedFormats returns the names of the output formats.
func SupportedFormats() []string {
	return []string{"csv", "table", "json"}
}

// Renderer writes a comparison result to its output.
type Renderer interface {
	Render(res *compare.Result) error
}

// For returns the renderer for the given format name.
func For(format string, w io.Writer, color bool) (Renderer, error) {
	switch format {
	case "csv":
		return NewCSVRenderer(w), nil
	case "table":
		r := NewTableRenderer(w)
		r.HasColor = color
		return r, nil
	case "json":
		return NewJSONRenderer(w), nil
	}

	return nil, fmt.Errorf("unsupported format %q, supported: %s", format, strings.Join(SupportedFormats(), ", "))
}

// TableRenderer prints the records as an aligned listing for the
// terminal.
type TableRenderer struct {
	W io.Writer

	HasColor bool
}

// NewTableRenderer creates a TableRenderer writing to w, with color on.
func NewTableRenderer(w io.Writer) *TableRenderer {
	return &TableRenderer{W: w, HasColor: true}
}

func (r *TableRenderer) Render(res *compare.Result) error {
	if res.Truncated > 0 {
		fmt.Fprintf(r.W, "⚠  %d sentences beyond the shorter document were not compared\n", res.Truncated)
	}

	for _, rec := range res.Records {
		fmt.Fprintf(r.W, "%4d  %s  %s  %s | %s\n",
			rec.Sentence,
			r.colored(Grey256, title(rec.Frame)),
			r.colored(Yellow256, fmt.Sprintf("%-13s", rec.Key)),
			rec.ValueA,
			rec.ValueB,
		)
	}

	_, err := fmt.Fprintf(r.W, "%s | %s: %d differences\n", res.NameA, res.NameB, len(res.Records))
	return err
}

func (r *TableRenderer) colored(color, s string) string {
	if !r.HasColor {
		return s
	}

	return color + s + Off
}

// title returns the frame text padded or cut to the listing column width.
func title(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")

	rs := []rune(text)
	if len(rs) <= 20 {
		return fmt.Sprintf("%-20s", text)
	}

	return string(rs[:20])
}

// compile-time interface check
var _ Renderer = (*TableRenderer)(nil)
