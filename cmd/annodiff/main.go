package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/revelaction/annodiff/compare"

	"github.com/urfave/cli/v2"
)

// Build information, set at build time with ldflags.
var (
	BuildTag    = "dev"
	BuildCommit = "unknown"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)

		var countErr *compare.SentenceCountError
		if errors.As(err, &countErr) {
			fmt.Fprintln(ui.Err, "the documents cannot be aligned, rerun without --strict to compare the shared prefix")
		}

		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "annodiff: %v\n", err)
}

func newApp(ui UI) *cli.App {
	cli.VersionPrinter = versionPrinter

	return &cli.App{
		Name:      "annodiff",
		Usage:     "compare the frame annotations of WebAnno XMI exports",
		Version:   BuildTag,
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Commands: []*cli.Command{
			newCompareCommand(ui),
			newShowCommand(ui),
			newStatCommand(ui),
			newTagsetCommand(ui),
			newInspectCommand(ui),
			newRunsCommand(ui),
			newRunCommand(ui),
			newVersionCommand(ui),
		},
	}
}
