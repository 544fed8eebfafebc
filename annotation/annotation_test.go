package annotation

import "testing"

func TestLinkEqual(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Link
		expected bool
	}{
		{"same", Link{Id: "1", Target: "house", Role: "Agent"}, Link{Id: "1", Target: "house", Role: "Agent"}, true},
		{"id ignored", Link{Id: "1", Target: "house", Role: "Agent"}, Link{Id: "99", Target: "house", Role: "Agent"}, true},
		{"target differs", Link{Id: "1", Target: "house", Role: "Agent"}, Link{Id: "1", Target: "tree", Role: "Agent"}, false},
		{"role differs", Link{Id: "1", Target: "house", Role: "Agent"}, Link{Id: "1", Target: "house", Role: "Theme"}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Equal(c.b); got != c.expected {
				t.Errorf("expected %t, got %t", c.expected, got)
			}
		})
	}
}

func TestLinkString(t *testing.T) {
	l := Link{Id: "7", Target: "the house", Role: "Goal"}

	expected := "the house (Goal)"
	if got := l.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestLinksEqual(t *testing.T) {
	agent := Link{Id: "1", Target: "house", Role: "Agent"}
	theme := Link{Id: "2", Target: "tree", Role: "Theme"}

	cases := []struct {
		name     string
		a, b     Links
		expected bool
	}{
		{"both empty", Links{}, Links{}, true},
		{"order irrelevant", Links{agent, theme}, Links{theme, agent}, true},
		{"id irrelevant", Links{agent}, Links{{Id: "42", Target: "house", Role: "Agent"}}, true},
		{"missing one way", Links{agent, theme}, Links{agent}, false},
		{"missing other way", Links{agent}, Links{agent, theme}, false},
		{"duplicates collapse", Links{agent, agent}, Links{agent}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.a.Equal(c.b); got != c.expected {
				t.Errorf("expected %t, got %t", c.expected, got)
			}
		})
	}
}

func TestLinksStrings(t *testing.T) {
	ls := Links{
		{Id: "1", Target: "house", Role: "Agent"},
		{Id: "2", Target: "tree", Role: "Theme"},
	}

	got := ls.Strings()
	if len(got) != 2 {
		t.Fatalf("expected 2 strings, got %d", len(got))
	}

	if got[0] != "house (Agent)" || got[1] != "tree (Theme)" {
		t.Errorf("expected [house (Agent) tree (Theme)], got %v", got)
	}
}

func TestFrameEqual(t *testing.T) {
	base := Frame{
		Begin:         0,
		End:           5,
		Text:          "House",
		Label:         "Dwelling",
		Discontinuous: "false",
		Metaphorical:  "false",
		Links:         Links{{Id: "1", Target: "roof", Role: "Part"}},
	}

	other := base
	other.Text = "different derived text"
	if !base.Equal(other) {
		t.Errorf("expected text to be excluded from equality")
	}

	other = base
	other.Links = Links{{Id: "9", Target: "roof", Role: "Part"}}
	if !base.Equal(other) {
		t.Errorf("expected link ids to be excluded from equality")
	}

	other = base
	other.Label = "Building"
	if base.Equal(other) {
		t.Errorf("expected label difference to break equality")
	}

	other = base
	other.Metaphorical = "true"
	if base.Equal(other) {
		t.Errorf("expected metaphorical difference to break equality")
	}

	other = base
	other.Links = Links{{Id: "1", Target: "door", Role: "Part"}}
	if base.Equal(other) {
		t.Errorf("expected link difference to break equality")
	}
}

func TestFramesContains(t *testing.T) {
	f := Frame{Begin: 0, End: 5, Label: "X"}
	fs := Frames{f}

	if !fs.Contains(Frame{Begin: 0, End: 5, Label: "X", Text: "other"}) {
		t.Errorf("expected frame with differing derived text to be contained")
	}

	if fs.Contains(Frame{Begin: 0, End: 5, Label: "Y"}) {
		t.Errorf("expected frame with differing label not to be contained")
	}
}

func TestFramesFindSpan(t *testing.T) {
	fs := Frames{
		{Begin: 0, End: 5, Label: "A"},
		{Begin: 6, End: 9, Label: "B"},
	}

	f, ok := fs.FindSpan(6, 9)
	if !ok {
		t.Fatalf("expected span [6, 9) to be found")
	}

	if f.Label != "B" {
		t.Errorf("expected label B, got %s", f.Label)
	}

	if _, ok := fs.FindSpan(6, 10); ok {
		t.Errorf("expected span [6, 10) not to be found")
	}
}

func TestSentenceEqual(t *testing.T) {
	fa := Frame{Begin: 0, End: 5, Label: "A"}
	fb := Frame{Begin: 6, End: 9, Label: "B"}

	s1 := Sentence{Id: 1, Begin: 0, End: 10, Frames: Frames{fa, fb}}
	s2 := Sentence{Id: 2, Begin: 0, End: 10, Frames: Frames{fb, fa}}

	if !s1.Equal(s2) {
		t.Errorf("expected sentences with reordered frames to be equal")
	}

	s3 := Sentence{Id: 1, Begin: 0, End: 11, Frames: Frames{fa, fb}}
	if s1.Equal(s3) {
		t.Errorf("expected sentences with differing ranges not to be equal")
	}

	s4 := Sentence{Id: 1, Begin: 0, End: 10, Frames: Frames{fa}}
	if s1.Equal(s4) {
		t.Errorf("expected sentences with differing frame sets not to be equal")
	}
}
