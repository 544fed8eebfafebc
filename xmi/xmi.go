package xmi

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/revelaction/annodiff/annotation"
)

// ParseError reports a source that cannot be read or is missing a
// required structural element.
type ParseError struct {
	Name   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s: %s: %v", e.Name, e.Reason, e.Err)
	}

	return fmt.Sprintf("parse %s: %s", e.Name, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// LinkResolutionError reports a link whose target element cannot be
// resolved against the document's element table.
type LinkResolutionError struct {
	Name   string
	Link   string
	Target string
	Reason string
}

func (e *LinkResolutionError) Error() string {
	return fmt.Sprintf("parse %s: link %s: target %s: %s", e.Name, e.Link, e.Target, e.Reason)
}

// Report carries the entity counts of one parse. DroppedFrames counts
// frame elements discarded for missing or non-numeric span bounds.
type Report struct {
	Sentences     int
	Frames        int
	DroppedFrames int
	Links         int
}

// xmiFile mirrors the flat element list of a WebAnno XMI export. Fields
// match by XML local name, so the namespace prefixes used by the export
// (cas:, type4:, custom:) are irrelevant.
type xmiFile struct {
	Sofas     []sofaElem  `xml:"Sofa"`
	Sentences []spanElem  `xml:"Sentence"`
	Frames    []frameElem `xml:"Frame"`
	Links     []linkElem  `xml:"FELink"`
	Elements  []feElem    `xml:"FE"`
}

type sofaElem struct {
	Text string `xml:"sofaString,attr"`
}

type spanElem struct {
	Begin int `xml:"begin,attr"`
	End   int `xml:"end,attr"`
}

// frameElem keeps its span bounds as strings: frames with missing or
// non-numeric bounds are dropped during construction, not decode errors.
type frameElem struct {
	Begin        string
	End          string
	Label        string
	Discontinuos string
	Metaphorical string
	FE           string

	// Attrs holds the attribute local names in document order.
	Attrs []string
}

// UnmarshalXML collects the frame attributes by hand. The decoder cannot
// be left to do it because the full attribute name list is needed for the
// document tagset. The discontinuos attribute is misspelled in the
// WebAnno schema and is read as written there.
func (f *frameElem) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		f.Attrs = append(f.Attrs, a.Name.Local)

		switch a.Name.Local {
		case "begin":
			f.Begin = a.Value
		case "end":
			f.End = a.Value
		case "Label":
			f.Label = a.Value
		case "discontinuos":
			f.Discontinuos = a.Value
		case "metaphorical":
			f.Metaphorical = a.Value
		case "FE":
			f.FE = a.Value
		}
	}

	return d.Skip()
}

type linkElem struct {
	Id     string `xml:"id,attr"`
	Target string `xml:"target,attr"`
	Role   string `xml:"role,attr"`
}

// feElem bounds stay strings until a link resolution needs them.
type feElem struct {
	Id    string `xml:"id,attr"`
	Begin string `xml:"begin,attr"`
	End   string `xml:"end,attr"`
}

// ParseFile reads and parses the WebAnno XMI export at path.
func ParseFile(path string) (*annotation.Document, Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Report{}, &ParseError{Name: path, Reason: "cannot read file", Err: err}
	}
	defer f.Close()

	return Parse(f, path)
}

// Parse builds the document model from a WebAnno XMI export. The name is
// used in errors only.
func Parse(r io.Reader, name string) (*annotation.Document, Report, error) {
	var file xmiFile
	if err := xml.NewDecoder(r).Decode(&file); err != nil {
		return nil, Report{}, &ParseError{Name: name, Reason: "malformed XMI", Err: err}
	}

	if len(file.Sofas) == 0 {
		return nil, Report{}, &ParseError{Name: name, Reason: "no sofa element, text payload missing"}
	}

	if len(file.Frames) == 0 {
		return nil, Report{}, &ParseError{Name: name, Reason: "no frame elements, tagset cannot be derived"}
	}

	// Offsets in the export count characters, not bytes.
	text := []rune(file.Sofas[0].Text)

	// Index the link target elements by id.
	elements := make(map[string]feElem, len(file.Elements))
	for _, el := range file.Elements {
		elements[el.Id] = el
	}

	rep := Report{}

	links := annotation.Links{}
	for _, l := range file.Links {
		el, ok := elements[l.Target]
		if !ok {
			return nil, rep, &LinkResolutionError{Name: name, Link: l.Id, Target: l.Target, Reason: "no such element"}
		}

		begin, err := strconv.Atoi(el.Begin)
		if err != nil {
			return nil, rep, &LinkResolutionError{Name: name, Link: l.Id, Target: l.Target, Reason: "malformed element bounds"}
		}

		end, err := strconv.Atoi(el.End)
		if err != nil {
			return nil, rep, &LinkResolutionError{Name: name, Link: l.Id, Target: l.Target, Reason: "malformed element bounds"}
		}

		links = append(links, annotation.Link{Id: l.Id, Target: slice(text, begin, end), Role: l.Role})
	}
	rep.Links = len(links)

	frames := annotation.Frames{}
	for _, f := range file.Frames {
		begin, err := strconv.Atoi(f.Begin)
		if err != nil {
			rep.DroppedFrames++
			continue
		}

		end, err := strconv.Atoi(f.End)
		if err != nil {
			rep.DroppedFrames++
			continue
		}

		frames = append(frames, annotation.Frame{
			Begin:         begin,
			End:           end,
			Text:          slice(text, begin, end),
			Label:         f.Label,
			Discontinuous: f.Discontinuos,
			Metaphorical:  f.Metaphorical,
			Links:         frameLinks(links, f.FE),
		})
	}
	rep.Frames = len(frames)

	sentences := []annotation.Sentence{}
	for i, s := range file.Sentences {
		sentence := annotation.Sentence{
			Id:    i + 1,
			Begin: s.Begin,
			End:   s.End,
			Text:  slice(text, s.Begin, s.End),
		}

		for _, f := range frames {
			if f.Begin >= s.Begin && f.End <= s.End {
				sentence.Frames = append(sentence.Frames, f)
			}
		}

		sentences = append(sentences, sentence)
	}
	rep.Sentences = len(sentences)

	doc := &annotation.Document{
		Text:      file.Sofas[0].Text,
		Tagset:    file.Frames[0].Attrs,
		Sentences: sentences,
	}

	return doc, rep, nil
}

// frameLinks resolves the space-separated id list of a frame's FE
// attribute against the built links. Unknown ids stay unmatched, link
// order follows the document's link order.
func frameLinks(links annotation.Links, fe string) annotation.Links {
	ids := strings.Fields(fe)

	ls := annotation.Links{}
	for _, l := range links {
		for _, id := range ids {
			if l.Id == id {
				ls = append(ls, l)
				break
			}
		}
	}

	return ls
}

// slice returns the text between the rune offsets begin and end, clamped
// to the text bounds.
func slice(text []rune, begin, end int) string {
	if begin < 0 {
		begin = 0
	}

	if end > len(text) {
		end = len(text)
	}

	if begin >= end {
		return ""
	}

	return string(text[begin:end])
}
