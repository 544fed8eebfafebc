package inspect

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/revelaction/annodiff/annotation"
	"github.com/revelaction/annodiff/compare"
	"github.com/revelaction/annodiff/render"
	"github.com/revelaction/annodiff/xmi"

	"github.com/c-bata/go-prompt"
)

var commands = []prompt.Suggest{
	{Text: "sent", Description: "show a sentence from both documents"},
	{Text: "frames", Description: "show the frames of a sentence"},
	{Text: "diff", Description: "show differences, optionally for one sentence"},
	{Text: "tagset", Description: "show the annotation attributes of both documents"},
	{Text: "stat", Description: "show document counts"},
	{Text: "quit", Description: "leave the prompt"},
}

type Handler struct {
	DocA *annotation.Document
	DocB *annotation.Document

	RepA xmi.Report
	RepB xmi.Report

	Result *compare.Result

	Renderer *render.TableRenderer
}

func NewHandler(docA, docB *annotation.Document, repA, repB xmi.Report, res *compare.Result) *Handler {
	return &Handler{
		DocA:     docA,
		DocB:     docB,
		RepA:     repA,
		RepB:     repB,
		Result:   res,
		Renderer: render.NewTableRenderer(os.Stdout),
	}
}

func (h *Handler) Run() error {

	fmt.Println("🔎 sent <n>, frames <n>, diff [n], tagset, stat, 🔧 quit")

	// initialize prompt history
	history := []string{}

	for {

		in := prompt.Input("      🔎 ", h.completer,
			prompt.OptionTitle("annodiff inspect"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		if in == "quit" {
			return nil
		}

		history = append(history, in)

		if err := h.eval(in); err != nil {
			fmt.Printf("❌ %v\n", err)
		}
	}
}

func (h *Handler) eval(in string) error {

	tokens := strings.Fields(in)
	if len(tokens) == 0 {
		return nil
	}

	switch tokens[0] {
	case "sent":
		n, err := h.ordinal(tokens)
		if err != nil {
			return err
		}

		h.printSentence(n)
	case "frames":
		n, err := h.ordinal(tokens)
		if err != nil {
			return err
		}

		h.printFrames(n)
	case "diff":
		return h.printDiff(tokens)
	case "tagset":
		h.printTagset()
	case "stat":
		h.printStat()
	default:
		return fmt.Errorf("unknown command %q", tokens[0])
	}

	return nil
}

// ordinal validates the 1-based sentence number argument against both
// documents.
func (h *Handler) ordinal(tokens []string) (int, error) {
	if len(tokens) < 2 {
		return 0, errors.New("no sentence number given")
	}

	n, err := strconv.Atoi(tokens[1])
	if err != nil {
		return 0, fmt.Errorf("not a sentence number: %q", tokens[1])
	}

	if n < 1 || n > len(h.DocA.Sentences) || n > len(h.DocB.Sentences) {
		return 0, fmt.Errorf("sentence %d out of range", n)
	}

	return n, nil
}

func (h *Handler) printSentence(n int) {
	fmt.Printf("📖 %s  %s\n", h.Result.NameA, render.Sentence(h.DocA.Sentences[n-1], true))
	fmt.Printf("📖 %s  %s\n", h.Result.NameB, render.Sentence(h.DocB.Sentences[n-1], true))
}

func (h *Handler) printFrames(n int) {
	fmt.Printf("🏷 %s\n", h.Result.NameA)
	for _, f := range h.DocA.Sentences[n-1].Frames {
		fmt.Printf("   %s\n", render.Frame(f))
	}

	fmt.Printf("🏷 %s\n", h.Result.NameB)
	for _, f := range h.DocB.Sentences[n-1].Frames {
		fmt.Printf("   %s\n", render.Frame(f))
	}
}

func (h *Handler) printDiff(tokens []string) error {

	res := h.Result

	if len(tokens) > 1 {
		n, err := strconv.Atoi(tokens[1])
		if err != nil {
			return fmt.Errorf("not a sentence number: %q", tokens[1])
		}

		filtered := &compare.Result{NameA: res.NameA, NameB: res.NameB, Records: []compare.Record{}}
		for _, r := range res.Records {
			if r.Sentence == n {
				filtered.Records = append(filtered.Records, r)
			}
		}

		res = filtered
	}

	return h.Renderer.Render(res)
}

func (h *Handler) printTagset() {
	fmt.Printf("🔖 %s: %s\n", h.Result.NameA, strings.Join(h.DocA.Tagset, " "))
	fmt.Printf("🔖 %s: %s\n", h.Result.NameB, strings.Join(h.DocB.Tagset, " "))
}

func (h *Handler) printStat() {
	fmt.Printf("📖 %s: %d sentences, %d frames (%d dropped), %d links\n", h.Result.NameA, h.RepA.Sentences, h.RepA.Frames, h.RepA.DroppedFrames, h.RepA.Links)
	fmt.Printf("📖 %s: %d sentences, %d frames (%d dropped), %d links\n", h.Result.NameB, h.RepB.Sentences, h.RepB.Frames, h.RepB.DroppedFrames, h.RepB.Links)
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {

	s := []prompt.Suggest{}
	befCursor := in.TextBeforeCursor()

	// Only one character in line
	if "" == befCursor {
		return s
	}

	tokens := strings.Split(befCursor, " ")
	if len(tokens) > 1 {
		return s
	}

	for _, c := range commands {
		if strings.HasPrefix(c.Text, tokens[0]) {
			s = append(s, c)
		}
	}

	return s
}
