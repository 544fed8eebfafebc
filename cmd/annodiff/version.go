package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func versionPrinter(c *cli.Context) {
	fmt.Fprintf(c.App.Writer, "annodiff version %s (commit: %s)\n", BuildTag, BuildCommit)
}

func newVersionCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the version",
		Action: func(c *cli.Context) error {
			return versionCommand(ui)
		},
	}
}

func versionCommand(ui UI) error {
	_, err := fmt.Fprintf(ui.Out, "annodiff version %s (commit: %s)\n", BuildTag, BuildCommit)
	return err
}
