package compare

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/revelaction/annodiff/annotation"
)

// Record is one reported discrepancy: an attribute of a frame in
// sentence Sentence carries different values in the two documents.
type Record struct {
	Sentence int    `json:"sentence"`
	Frame    string `json:"frame"`
	Key      string `json:"key"`
	ValueA   string `json:"valueA"`
	ValueB   string `json:"valueB"`
}

// Result is one full comparison of two documents.
type Result struct {
	NameA string `json:"nameA"`
	NameB string `json:"nameB"`

	// Truncated is the number of sentences left unpaired because the
	// documents disagree in sentence count.
	Truncated int `json:"truncated,omitempty"`

	Records []Record `json:"records"`
}

// SentenceCountError reports documents that disagree in sentence count
// under strict comparison.
type SentenceCountError struct {
	NameA  string
	NameB  string
	CountA int
	CountB int
}

func (e *SentenceCountError) Error() string {
	return fmt.Sprintf("sentence count mismatch: %s has %d, %s has %d", e.NameA, e.CountA, e.NameB, e.CountB)
}

// frameAttrs enumerates the comparable frame attributes, in report
// order. The links attribute sits in the table with a nil accessor and
// is compared by its own rule.
var frameAttrs = []struct {
	Key string
	Get func(annotation.Frame) string
}{
	{"begin", func(f annotation.Frame) string { return strconv.Itoa(f.Begin) }},
	{"end", func(f annotation.Frame) string { return strconv.Itoa(f.End) }},
	{"text", func(f annotation.Frame) string { return f.Text }},
	{"links", nil},
	{"label", func(f annotation.Frame) string { return f.Label }},
	{"discontinuous", func(f annotation.Frame) string { return f.Discontinuous }},
	{"metaphorical", func(f annotation.Frame) string { return f.Metaphorical }},
}

// Comparer produces discrepancy records between two documents with
// aligned sentences.
type Comparer struct {
	NameA string
	NameB string

	// Strict turns a sentence count mismatch into an error instead of
	// truncating to the shorter document.
	Strict bool
}

func NewComparer(nameA, nameB string) *Comparer {
	return &Comparer{
		NameA: nameA,
		NameB: nameB,
	}
}

// Compare walks the paired sentences of both documents in both
// directions and returns the deduplicated discrepancy records. It is
// pure: no attribute mismatch is an error, and the only failure is a
// sentence count mismatch under Strict.
func (c *Comparer) Compare(a, b *annotation.Document) (*Result, error) {
	res := &Result{NameA: c.NameA, NameB: c.NameB}

	n := len(a.Sentences)
	if len(b.Sentences) != n {
		if c.Strict {
			return nil, &SentenceCountError{
				NameA:  c.NameA,
				NameB:  c.NameB,
				CountA: n,
				CountB: len(b.Sentences),
			}
		}

		diff := n - len(b.Sentences)
		if diff < 0 {
			diff = -diff
			// a is the shorter document
		} else {
			n = len(b.Sentences)
		}
		res.Truncated = diff
	}

	var records []Record
	for i := 0; i < n; i++ {
		ordinal := i + 1

		// Both directions with the same ordinal, so frames unique to
		// either side are reported. The reverse direction swaps the
		// value columns.
		records = append(records, compareSentences(ordinal, a.Sentences[i], b.Sentences[i], false)...)
		records = append(records, compareSentences(ordinal, b.Sentences[i], a.Sentences[i], true)...)
	}

	res.Records = dedupe(records)
	return res, nil
}

// compareSentences reports the attribute differences of every frame of
// s1 that has no equal frame in s2 but does have a positional
// counterpart there. A frame with no positional counterpart yields no
// records.
func compareSentences(ordinal int, s1, s2 annotation.Sentence, swapped bool) []Record {
	var records []Record

	for _, f1 := range s1.Frames {
		if s2.Frames.Contains(f1) {
			continue
		}

		f2, ok := s2.Frames.FindSpan(f1.Begin, f1.End)
		if !ok {
			continue
		}

		for _, attr := range frameAttrs {
			if attr.Get == nil {
				records = append(records, linkRecords(ordinal, f1, f2, swapped)...)
				continue
			}

			v1, v2 := attr.Get(f1), attr.Get(f2)
			if v1 == v2 {
				continue
			}

			records = append(records, newRecord(ordinal, f1.Text, attr.Key, v1, v2, swapped))
		}
	}

	return records
}

// linkRecords emits one record per link of f1 missing from f2. The
// other value column carries f2's full link list.
func linkRecords(ordinal int, f1, f2 annotation.Frame, swapped bool) []Record {
	var records []Record

	for _, l := range f1.Links {
		if f2.Links.Contains(l) {
			continue
		}

		records = append(records, newRecord(ordinal, f1.Text, "links", l.String(), joinLinks(f2.Links), swapped))
	}

	return records
}

// joinLinks renders a link list as a value column: empty list to empty
// string, a single link bare, more joined with "; ".
func joinLinks(ls annotation.Links) string {
	return strings.Join(ls.Strings(), "; ")
}

func newRecord(ordinal int, frame, key, v1, v2 string, swapped bool) Record {
	if swapped {
		v1, v2 = v2, v1
	}

	return Record{
		Sentence: ordinal,
		Frame:    frame,
		Key:      key,
		ValueA:   v1,
		ValueB:   v2,
	}
}

// dedupe drops records whose value columns are equal, exact duplicates
// and mirrored duplicates (the same record with the value columns
// swapped, produced by the bidirectional walk), keeping first-seen
// order.
func dedupe(records []Record) []Record {
	seen := make(map[Record]struct{}, len(records))

	out := []Record{}
	for _, r := range records {
		if r.ValueA == r.ValueB {
			continue
		}

		if _, ok := seen[r]; ok {
			continue
		}

		mirrored := r
		mirrored.ValueA, mirrored.ValueB = r.ValueB, r.ValueA
		if _, ok := seen[mirrored]; ok {
			continue
		}

		seen[r] = struct{}{}
		out = append(out, r)
	}

	return out
}
