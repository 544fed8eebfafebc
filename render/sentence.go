package render

import (
	"fmt"
	"strings"

	"github.com/revelaction/annodiff/annotation"
)

// Sentence returns the sentence text with every frame span highlighted.
// Overlapping spans merge into one highlighted stretch.
func Sentence(s annotation.Sentence, hasColor bool) string {
	if !hasColor {
		return strings.ReplaceAll(s.Text, "\n", " ")
	}

	var b strings.Builder

	inside := false
	for i, r := range []rune(s.Text) {
		pos := s.Begin + i

		now := false
		for _, f := range s.Frames {
			if pos >= f.Begin && pos < f.End {
				now = true
				break
			}
		}

		if now && !inside {
			b.WriteString(Green256)
		}

		if !now && inside {
			b.WriteString(Off)
		}

		inside = now
		b.WriteRune(r)
	}

	if inside {
		b.WriteString(Off)
	}

	return strings.ReplaceAll(b.String(), "\n", " ")
}

// Frame returns the one-line detail form of a frame.
func Frame(f annotation.Frame) string {
	parts := []string{fmt.Sprintf("[%d, %d)", f.Begin, f.End), f.Text}

	if f.Label != "" {
		parts = append(parts, f.Label)
	}

	if f.Discontinuous != "" {
		parts = append(parts, "discontinuous="+f.Discontinuous)
	}

	if f.Metaphorical != "" {
		parts = append(parts, "metaphorical="+f.Metaphorical)
	}

	if len(f.Links) > 0 {
		parts = append(parts, "links: "+strings.Join(f.Links.Strings(), "; "))
	}

	return strings.Join(parts, "  ")
}
