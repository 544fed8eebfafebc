package main

import (
	"fmt"
	"sort"

	"github.com/revelaction/annodiff/stat"
	"github.com/revelaction/annodiff/xmi"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"
)

func newStatCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "aggregate annotation counts over XMI exports",
		ArgsUsage: "<file>...",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				_ = cli.ShowSubcommandHelp(c)
				return cli.Exit("expected at least 1 argument: <file>...", 2)
			}

			return statCommand(c.Args().Slice(), ui)
		},
	}
}

func statCommand(paths []string, ui UI) error {

	hdl := stat.NewHandler()

	// Start progress indicator
	uiprogress.Start()                   // start rendering
	bar := uiprogress.AddBar(len(paths)) // Add a new bar
	bar.AppendCompleted()
	bar.PrependElapsed()
	bar.Set(1)
	// Append file name to the progress bar
	bar.AppendFunc(func(b *uiprogress.Bar) string {
		return paths[b.Current()-1]
	})

	for _, path := range paths {

		doc, rep, err := xmi.ParseFile(path)
		if err != nil {
			return err
		}

		hdl.Aggregate(doc, rep)

		bar.Incr()
	}

	// stop rendering
	uiprogress.Stop()

	printStats(hdl.Get(), ui)

	return nil
}

func printStats(stats stat.Stats, ui UI) {

	fmt.Fprintf(ui.Out, "📖 %d files, %d sentences, %d frames, %d links\n", stats.Files, stats.Sentences, stats.Frames, stats.Links)

	if stats.DroppedFrames > 0 {
		fmt.Fprintf(ui.Out, "⚠  %d frames dropped for malformed bounds\n", stats.DroppedFrames)
	}

	fmt.Fprintln(ui.Out, "🏷 labels")
	for _, label := range sortedKeys(stats.Labels) {
		fmt.Fprintf(ui.Out, "%6d  %s\n", stats.Labels[label], label)
	}

	fmt.Fprintln(ui.Out, "🔖 roles")
	for _, role := range sortedKeys(stats.Roles) {
		fmt.Fprintf(ui.Out, "%6d  %s\n", stats.Roles[role], role)
	}

	fmt.Fprintln(ui.Out, "📖 frames per sentence")

	nums := make([]int, 0, len(stats.FramesPerSentenceDis))
	for n := range stats.FramesPerSentenceDis {
		nums = append(nums, n)
	}
	sort.Ints(nums)

	for _, n := range nums {
		fmt.Fprintf(ui.Out, "%6d  %d sentences\n", n, stats.FramesPerSentenceDis[n])
	}
}

// sortedKeys orders by count descending, ties alphabetically.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if m[keys[i]] != m[keys[j]] {
			return m[keys[i]] > m[keys[j]]
		}

		return keys[i] < keys[j]
	})

	return keys
}
