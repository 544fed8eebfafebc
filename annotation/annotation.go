package annotation

import "fmt"

// Document is the in-memory form of one parsed annotation file.
// A Document and its entities are built once and never mutated.
type Document struct {
	// Text is the full annotated source text.
	Text string

	// Tagset lists the attribute names found on the frame elements.
	// Informational, nothing downstream depends on it.
	Tagset []string

	// Sentences in source order, ids starting at 1.
	Sentences []Sentence
}

// Sentence is a frame-bearing segment of the document text.
type Sentence struct {
	// Id is the 1-based position of the sentence in the document.
	Id int

	// Begin and End delimit the sentence in the document text.
	Begin int
	End   int

	// The text slice [Begin, End)
	Text string

	// Frames whose span lies fully inside the sentence range.
	Frames Frames
}

// Equal reports whether both sentences cover the same range and carry the
// same frame set. Frame order is irrelevant.
func (s Sentence) Equal(other Sentence) bool {
	if s.Begin != other.Begin {
		return false
	}

	if s.End != other.End {
		return false
	}

	return s.Frames.Equal(other.Frames)
}

// Frame is one semantic annotation unit spanning a text range.
type Frame struct {
	Begin int
	End   int

	// The text slice [Begin, End), derived from the document text.
	Text string

	// Label is the semantic category of the frame.
	Label string

	// Discontinuous and Metaphorical hold the source attribute values
	// verbatim.
	Discontinuous string
	Metaphorical  string

	Links Links
}

// Equal reports whether two frames carry the same annotation. Text is
// derived from the span and not compared. Link order is irrelevant.
func (f Frame) Equal(other Frame) bool {
	if f.Begin != other.Begin {
		return false
	}

	if f.End != other.End {
		return false
	}

	if f.Label != other.Label {
		return false
	}

	if f.Discontinuous != other.Discontinuous {
		return false
	}

	if f.Metaphorical != other.Metaphorical {
		return false
	}

	return f.Links.Equal(other.Links)
}

// Frames is a collection of Frame
type Frames []Frame

// Contains reports whether an equal frame is present.
func (fs Frames) Contains(f Frame) bool {
	for _, o := range fs {
		if o.Equal(f) {
			return true
		}
	}

	return false
}

// FindSpan returns the first frame covering exactly [begin, end).
func (fs Frames) FindSpan(begin, end int) (Frame, bool) {
	for _, o := range fs {
		if o.Begin == begin && o.End == end {
			return o, true
		}
	}

	return Frame{}, false
}

// Equal reports whether both collections hold the same frame set: nothing
// in one missing from the other, in either direction.
func (fs Frames) Equal(other Frames) bool {
	for _, f := range fs {
		if !other.Contains(f) {
			return false
		}
	}

	for _, f := range other {
		if !fs.Contains(f) {
			return false
		}
	}

	return true
}

// Link relates a frame to a target text span with a semantic role.
type Link struct {
	// Id as assigned by the source file. Two files assign ids
	// independently, so Id takes no part in equality.
	Id string

	// Target is the resolved text of the linked element, not its id.
	Target string

	// Role is the semantic role of the link.
	Role string
}

// Equal reports whether target and role match. Id is ignored.
func (l Link) Equal(other Link) bool {
	return l.Target == other.Target && l.Role == other.Role
}

func (l Link) String() string {
	return fmt.Sprintf("%s (%s)", l.Target, l.Role)
}

// Links is a collection of Link
type Links []Link

// Contains reports whether an equal link is present.
func (ls Links) Contains(l Link) bool {
	for _, o := range ls {
		if o.Equal(l) {
			return true
		}
	}

	return false
}

// Equal reports whether both collections hold the same link set: nothing
// in one missing from the other, in either direction.
func (ls Links) Equal(other Links) bool {
	for _, l := range ls {
		if !other.Contains(l) {
			return false
		}
	}

	for _, l := range other {
		if !ls.Contains(l) {
			return false
		}
	}

	return true
}

// Strings returns the display form of every link.
func (ls Links) Strings() []string {
	sl := []string{}
	for _, l := range ls {
		sl = append(sl, l.String())
	}

	return sl
}
