package main

import (
	"fmt"

	"github.com/revelaction/annodiff/xmi"

	"github.com/urfave/cli/v2"
)

func newTagsetCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "tagset",
		Usage:     "print the frame attribute names of an XMI export",
		ArgsUsage: "<file>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				_ = cli.ShowSubcommandHelp(c)
				return cli.Exit("expected 1 argument: <file>", 2)
			}

			return tagsetCommand(c.Args().First(), ui)
		},
	}
}

func tagsetCommand(path string, ui UI) error {

	doc, _, err := xmi.ParseFile(path)
	if err != nil {
		return err
	}

	for _, attr := range doc.Tagset {
		fmt.Fprintf(ui.Out, "🔖 %s\n", attr)
	}

	return nil
}
