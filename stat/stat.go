package stat

import (
	"github.com/revelaction/annodiff/annotation"
	"github.com/revelaction/annodiff/xmi"
)

type Handler struct {
	stats Stats
}

// Stats aggregates entity counts over one or more parsed documents.
type Stats struct {
	Files         int
	Sentences     int
	Frames        int
	Links         int
	DroppedFrames int

	// Labels counts frames per label, Roles counts links per role,
	// both over sentence-owned frames.
	Labels map[string]int
	Roles  map[string]int

	FramesPerSentenceDis map[int]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		Labels:               map[string]int{},
		Roles:                map[string]int{},
		FramesPerSentenceDis: map[int]int{},
	}

	return &Handler{
		stats: stats,
	}
}

func (h *Handler) Aggregate(doc *annotation.Document, rep xmi.Report) {
	h.stats.Files++
	h.stats.Sentences += rep.Sentences
	h.stats.Frames += rep.Frames
	h.stats.Links += rep.Links
	h.stats.DroppedFrames += rep.DroppedFrames

	for _, sentence := range doc.Sentences {
		h.stats.FramesPerSentenceDis[len(sentence.Frames)]++

		for _, frame := range sentence.Frames {
			h.stats.Labels[frame.Label]++

			for _, link := range frame.Links {
				h.stats.Roles[link.Role]++
			}
		}
	}
}
