package xmi

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

const sampleXMI = `<?xml version="1.0" encoding="UTF-8"?>
<xmi:XMI xmlns:xmi="http://www.omg.org/XMI" xmlns:cas="http:///uima/cas.ecore" xmlns:type4="http:///de/tudarmstadt/ukp/dkpro/core/api/segmentation/type.ecore" xmlns:custom="http:///webanno/custom.ecore" xmi:version="2.0">
	<cas:NULL xmi:id="0"/>
	<cas:Sofa xmi:id="1" sofaNum="1" sofaID="_InitialView" mimeType="text" sofaString="The old house stood. It was on a hill."/>
	<type4:Sentence xmi:id="10" sofa="1" begin="0" end="20"/>
	<type4:Sentence xmi:id="11" sofa="1" begin="21" end="38"/>
	<custom:FE xmi:id="30" sofa="1" begin="4" end="13"/>
	<custom:FELink xmi:id="40" sofa="1" target="30" role="Theme"/>
	<custom:Frame xmi:id="20" sofa="1" begin="14" end="19" Label="Position" discontinuos="false" metaphorical="false" FE="40"/>
	<cas:View sofa="1" members="10 11 20 30 40"/>
</xmi:XMI>`

func TestParse(t *testing.T) {
	doc, rep, err := Parse(strings.NewReader(sampleXMI), "a.xmi")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if rep.Sentences != 2 || rep.Frames != 1 || rep.Links != 1 || rep.DroppedFrames != 0 {
		t.Fatalf("expected report {2 1 0 1}, got %+v", rep)
	}

	if doc.Text != "The old house stood. It was on a hill." {
		t.Errorf("unexpected text %q", doc.Text)
	}

	expectedTagset := []string{"id", "sofa", "begin", "end", "Label", "discontinuos", "metaphorical", "FE"}
	if !reflect.DeepEqual(doc.Tagset, expectedTagset) {
		t.Errorf("expected tagset %v, got %v", expectedTagset, doc.Tagset)
	}

	if len(doc.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(doc.Sentences))
	}

	s1 := doc.Sentences[0]
	if s1.Id != 1 || s1.Begin != 0 || s1.End != 20 {
		t.Errorf("unexpected first sentence %+v", s1)
	}

	if s1.Text != "The old house stood." {
		t.Errorf("expected sentence text %q, got %q", "The old house stood.", s1.Text)
	}

	if len(s1.Frames) != 1 {
		t.Fatalf("expected 1 frame in first sentence, got %d", len(s1.Frames))
	}

	f := s1.Frames[0]
	if f.Begin != 14 || f.End != 19 || f.Text != "stood" {
		t.Errorf("unexpected frame span %+v", f)
	}

	if f.Label != "Position" || f.Discontinuous != "false" || f.Metaphorical != "false" {
		t.Errorf("unexpected frame attributes %+v", f)
	}

	if len(f.Links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(f.Links))
	}

	l := f.Links[0]
	if l.Id != "40" || l.Target != "old house" || l.Role != "Theme" {
		t.Errorf("unexpected link %+v", l)
	}

	s2 := doc.Sentences[1]
	if s2.Text != "It was on a hill." {
		t.Errorf("expected sentence text %q, got %q", "It was on a hill.", s2.Text)
	}

	if len(s2.Frames) != 0 {
		t.Errorf("expected no frames in second sentence, got %d", len(s2.Frames))
	}
}

func TestParseNoSofa(t *testing.T) {
	src := `<XMI><Sentence begin="0" end="1"/><Frame begin="0" end="1"/></XMI>`

	_, _, err := Parse(strings.NewReader(src), "a.xmi")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParseNoFrames(t *testing.T) {
	src := `<XMI><Sofa sofaString="Some text."/><Sentence begin="0" end="10"/></XMI>`

	_, _, err := Parse(strings.NewReader(src), "a.xmi")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestParseMalformedXML(t *testing.T) {
	_, _, err := Parse(strings.NewReader(`<XMI><Sofa sofaString="x"`), "a.xmi")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}

	if perr.Unwrap() == nil {
		t.Errorf("expected wrapped decoder error")
	}
}

func TestParseMissingLinkTarget(t *testing.T) {
	src := `<XMI>
		<Sofa sofaString="Some text."/>
		<Sentence begin="0" end="10"/>
		<FELink id="40" target="99" role="Agent"/>
		<Frame begin="0" end="4" Label="X" FE="40"/>
	</XMI>`

	_, _, err := Parse(strings.NewReader(src), "a.xmi")

	var lerr *LinkResolutionError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LinkResolutionError, got %v", err)
	}

	if lerr.Target != "99" {
		t.Errorf("expected target 99, got %s", lerr.Target)
	}
}

func TestParseMalformedElementBounds(t *testing.T) {
	src := `<XMI>
		<Sofa sofaString="Some text."/>
		<Sentence begin="0" end="10"/>
		<FE id="30" begin="x" end="4"/>
		<FELink id="40" target="30" role="Agent"/>
		<Frame begin="0" end="4" Label="X" FE="40"/>
	</XMI>`

	_, _, err := Parse(strings.NewReader(src), "a.xmi")

	var lerr *LinkResolutionError
	if !errors.As(err, &lerr) {
		t.Fatalf("expected LinkResolutionError, got %v", err)
	}
}

func TestParseDroppedFrames(t *testing.T) {
	src := `<XMI>
		<Sofa sofaString="Some text here."/>
		<Sentence begin="0" end="15"/>
		<Frame begin="0" end="4" Label="Kept"/>
		<Frame begin="x" end="4" Label="BadBegin"/>
		<Frame begin="5" Label="NoEnd"/>
	</XMI>`

	doc, rep, err := Parse(strings.NewReader(src), "a.xmi")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if rep.Frames != 1 {
		t.Errorf("expected 1 frame, got %d", rep.Frames)
	}

	if rep.DroppedFrames != 2 {
		t.Errorf("expected 2 dropped frames, got %d", rep.DroppedFrames)
	}

	if len(doc.Sentences[0].Frames) != 1 || doc.Sentences[0].Frames[0].Label != "Kept" {
		t.Errorf("expected only the well-formed frame to survive, got %+v", doc.Sentences[0].Frames)
	}
}

func TestParseFrameWithoutLinks(t *testing.T) {
	src := `<XMI>
		<Sofa sofaString="Some text."/>
		<Sentence begin="0" end="10"/>
		<Frame begin="0" end="4" Label="X"/>
	</XMI>`

	doc, _, err := Parse(strings.NewReader(src), "a.xmi")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f := doc.Sentences[0].Frames[0]
	if len(f.Links) != 0 {
		t.Errorf("expected no links, got %v", f.Links)
	}

	if f.Label != "X" || f.Discontinuous != "" {
		t.Errorf("expected absent attributes to decode empty, got %+v", f)
	}
}

func TestParseUnknownLinkIds(t *testing.T) {
	src := `<XMI>
		<Sofa sofaString="Some text."/>
		<Sentence begin="0" end="10"/>
		<FE id="30" begin="0" end="4"/>
		<FELink id="40" target="30" role="Agent"/>
		<Frame begin="0" end="4" Label="X" FE="40 41 "/>
	</XMI>`

	doc, _, err := Parse(strings.NewReader(src), "a.xmi")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f := doc.Sentences[0].Frames[0]
	if len(f.Links) != 1 {
		t.Fatalf("expected unknown link ids to stay unmatched, got %v", f.Links)
	}

	if f.Links[0].Target != "Some" {
		t.Errorf("expected link target %q, got %q", "Some", f.Links[0].Target)
	}
}

func TestParseRuneOffsets(t *testing.T) {
	src := `<XMI>
		<Sofa sofaString="El niño comió la paella."/>
		<Sentence begin="0" end="24"/>
		<Frame begin="3" end="7" Label="Eater"/>
	</XMI>`

	doc, _, err := Parse(strings.NewReader(src), "a.xmi")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	f := doc.Sentences[0].Frames[0]
	if f.Text != "niño" {
		t.Errorf("expected frame text %q, got %q", "niño", f.Text)
	}

	if doc.Sentences[0].Text != "El niño comió la paella." {
		t.Errorf("unexpected sentence text %q", doc.Sentences[0].Text)
	}
}

func TestParseClampedBounds(t *testing.T) {
	src := `<XMI>
		<Sofa sofaString="Short."/>
		<Sentence begin="0" end="999"/>
		<Frame begin="0" end="999" Label="X"/>
	</XMI>`

	doc, _, err := Parse(strings.NewReader(src), "a.xmi")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if doc.Sentences[0].Text != "Short." {
		t.Errorf("expected clamped sentence text %q, got %q", "Short.", doc.Sentences[0].Text)
	}

	if doc.Sentences[0].Frames[0].Text != "Short." {
		t.Errorf("expected clamped frame text %q, got %q", "Short.", doc.Sentences[0].Frames[0].Text)
	}
}

func TestParseFrameOutsideAnySentence(t *testing.T) {
	src := `<XMI>
		<Sofa sofaString="One two. Three four."/>
		<Sentence begin="0" end="8"/>
		<Sentence begin="9" end="20"/>
		<Frame begin="4" end="14" Label="Straddling"/>
	</XMI>`

	doc, rep, err := Parse(strings.NewReader(src), "a.xmi")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// The frame is built but belongs to no sentence.
	if rep.Frames != 1 {
		t.Errorf("expected 1 frame, got %d", rep.Frames)
	}

	for _, s := range doc.Sentences {
		if len(s.Frames) != 0 {
			t.Errorf("expected no frames in sentence %d, got %d", s.Id, len(s.Frames))
		}
	}
}

func TestParseFileMissing(t *testing.T) {
	_, _, err := ParseFile("testdata/does-not-exist.xmi")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
