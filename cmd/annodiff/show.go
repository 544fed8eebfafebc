package main

import (
	"fmt"

	"github.com/revelaction/annodiff/render"
	"github.com/revelaction/annodiff/xmi"

	"github.com/urfave/cli/v2"
)

func newShowCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print the sentences of an XMI export with frame spans highlighted",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "sent",
				Aliases: []string{"s"},
				Usage:   "show only the given sentence, with its frames",
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
				return cli.Exit("expected 1 argument: <file>", 2)
			}

			return showCommand(c.Args().First(), c.Int("sent"), !c.Bool("no-color"), ui)
		},
	}
}

func showCommand(path string, sentId int, hasColor bool, ui UI) error {

	doc, _, err := xmi.ParseFile(path)
	if err != nil {
		return err
	}

	if sentId > 0 {
		if sentId > len(doc.Sentences) {
			return fmt.Errorf("sentence %d out of range, %s has %d sentences", sentId, path, len(doc.Sentences))
		}

		s := doc.Sentences[sentId-1]
		fmt.Fprintf(ui.Out, "📖 %d %s\n", s.Id, render.Sentence(s, hasColor))
		for _, f := range s.Frames {
			fmt.Fprintf(ui.Out, "   %s\n", render.Frame(f))
		}

		return nil
	}

	for _, s := range doc.Sentences {
		fmt.Fprintf(ui.Out, "📖 %d %s\n", s.Id, render.Sentence(s, hasColor))
	}

	return nil
}
