package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/revelaction/annodiff/render"

	"github.com/urfave/cli/v2"
)

func storeFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "store",
		Usage:   "path of the run store, a directory or a sqlite file",
		EnvVars: []string{"ANNODIFF_STORE"},
	}
}

func newRunsCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "list the stored comparison runs",
		Flags: []cli.Flag{storeFlag()},
		Action: func(c *cli.Context) error {
			return runsCommand(c.String("store"), ui)
		},
	}
}

func runsCommand(store string, ui UI) error {

	repo, err := NewRunRepository(store)
	if err != nil {
		return err
	}
	defer repo.Close()

	runs, err := repo.List()
	if err != nil {
		return err
	}

	for _, run := range runs {
		fmt.Fprintf(ui.Out, "🔖 %3d  %s  %s | %s  %d records\n", run.Id, run.CreatedAt.Format("2006-01-02 15:04"), run.NameA, run.NameB, run.NumRecords)
	}

	return nil
}

func newRunCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "print one stored comparison run",
		ArgsUsage: "<id>",
		Flags: []cli.Flag{
			storeFlag(),
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "output format, one of " + strings.Join(render.SupportedFormats(), ", "),
				Value:   "table",
				EnvVars: []string{"ANNODIFF_FORMAT"},
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Aliases: []string{"c"},
				Usage:   "disable colored output",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				_ = cli.ShowSubcommandHelp(c)
				return cli.Exit("expected 1 argument: <id>", 2)
			}

			id, err := strconv.Atoi(c.Args().First())
			if err != nil {
				return fmt.Errorf("not a run id: %q", c.Args().First())
			}

			return runCommand(c.String("store"), id, c.String("format"), !c.Bool("no-color"), ui)
		},
	}
}

func runCommand(store string, id int, format string, hasColor bool, ui UI) error {

	repo, err := NewRunRepository(store)
	if err != nil {
		return err
	}
	defer repo.Close()

	run, err := repo.Read(id)
	if err != nil {
		return err
	}

	res := run.Result()

	// The table renderer reports the truncation itself.
	if res.Truncated > 0 && format != "table" {
		fmt.Fprintf(ui.Err, "⚠  %d sentences beyond the shorter document were not compared\n", res.Truncated)
	}

	r, err := render.For(format, ui.Out, hasColor)
	if err != nil {
		return err
	}

	return r.Render(res)
}
