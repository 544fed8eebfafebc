package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/revelaction/annodiff/compare"
	"github.com/revelaction/annodiff/render"
	"github.com/revelaction/annodiff/storage"
	"github.com/revelaction/annodiff/xmi"

	"github.com/urfave/cli/v2"
)

type CompareOptions struct {
	Format  string
	Strict  bool
	NoColor bool
	Store   string
	Quiet   bool
}

func newCompareCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "compare the frame annotations of two XMI exports",
		ArgsUsage: "<file-a> <file-b> <output>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format, one of " + strings.Join(render.SupportedFormats(), ", "),
				Value:   render.Defaultformat,
				EnvVars: []string{"ANNODIFF_FORMAT"},
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail when the documents disagree in sentence count",
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"c"},
				Usage:   "disable colored output",
			},
			&cli.StringFlag{
				Name:    "store",
				Usage:   "append the result to the run store at the given path",
				EnvVars: []string{"ANNODIFF_STORE"},
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "suppress the parse reports",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				_ = cli.ShowSubcommandHelp(c)
				return cli.Exit("expected 3 arguments: <file-a> <file-b> <output>", 2)
			}

			opts := CompareOptions{
				Format:  c.String("format"),
				Strict:  c.Bool("strict"),
				NoColor: c.Bool("no-color"),
				Store:   c.String("store"),
				Quiet:   c.Bool("quiet"),
			}

			return compareCommand(opts, c.Args().Get(0), c.Args().Get(1), c.Args().Get(2), ui)
		},
	}
}

func compareCommand(opts CompareOptions, pathA, pathB, outPath string, ui UI) error {

	docA, repA, err := xmi.ParseFile(pathA)
	if err != nil {
		return err
	}

	docB, repB, err := xmi.ParseFile(pathB)
	if err != nil {
		return err
	}

	if !opts.Quiet {
		reportParse(pathA, repA, ui)
		reportParse(pathB, repB, ui)
	}

	// The file names given on the command line name the value columns.
	cp := compare.NewComparer(pathA, pathB)
	cp.Strict = opts.Strict

	res, err := cp.Compare(docA, docB)
	if err != nil {
		return err
	}

	// The table renderer reports the truncation itself.
	if res.Truncated > 0 && opts.Format != "table" {
		fmt.Fprintf(ui.Err, "⚠  %d sentences beyond the shorter document were not compared\n", res.Truncated)
	}

	w := ui.Out
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()

		w = f
	}

	r, err := render.For(opts.Format, w, !opts.NoColor)
	if err != nil {
		return err
	}

	if err := r.Render(res); err != nil {
		return err
	}

	if opts.Store == "" {
		return nil
	}

	repo, err := NewRunRepository(opts.Store)
	if err != nil {
		return err
	}
	defer repo.Close()

	id, err := repo.Write(storage.NewRun(res))
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "🔖 stored as run %d\n", id)

	return nil
}

// reportParse prints the entity counts of one parsed file.
func reportParse(path string, rep xmi.Report, ui UI) {
	fmt.Fprintf(ui.Out, "📖 %s: %d sentences, %d frames, %d links\n", path, rep.Sentences, rep.Frames, rep.Links)

	if rep.DroppedFrames > 0 {
		fmt.Fprintf(ui.Err, "⚠  %s: dropped %d frames with malformed bounds\n", path, rep.DroppedFrames)
	}
}
