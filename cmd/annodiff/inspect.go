package main

import (
	"github.com/revelaction/annodiff/compare"
	"github.com/revelaction/annodiff/inspect"
	"github.com/revelaction/annodiff/xmi"

	"github.com/urfave/cli/v2"
)

func newInspectCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "explore two XMI exports in an interactive prompt",
		ArgsUsage: "<file-a> <file-b>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "fail when the documents disagree in sentence count",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				_ = cli.ShowSubcommandHelp(c)
				return cli.Exit("expected 2 arguments: <file-a> <file-b>", 2)
			}

			return inspectCommand(c.Args().Get(0), c.Args().Get(1), c.Bool("strict"), ui)
		},
	}
}

func inspectCommand(pathA, pathB string, strict bool, ui UI) error {

	docA, repA, err := xmi.ParseFile(pathA)
	if err != nil {
		return err
	}

	docB, repB, err := xmi.ParseFile(pathB)
	if err != nil {
		return err
	}

	cp := compare.NewComparer(pathA, pathB)
	cp.Strict = strict

	res, err := cp.Compare(docA, docB)
	if err != nil {
		return err
	}

	// now present the REPL
	h := inspect.NewHandler(docA, docB, repA, repB, res)
	return h.Run()
}
