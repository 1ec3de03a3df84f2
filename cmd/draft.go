package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/finsuite/finsuite"
	"github.com/google/subcommands"
)

// draftCmd holds the flags for the 'draft' subcommand.
type draftCmd struct {
	out   string
	print bool
}

func (*draftCmd) Name() string     { return "draft" }
func (*draftCmd) Synopsis() string { return "compose the management discussion draft" }
func (*draftCmd) Usage() string {
	return `fos draft [-o <file>] [-p]

  Composes the management discussion and analysis draft from the imported
  statements and writes it to a file. Use -p to print it instead.

Usage Examples:
$ fos draft
$ fos draft -p
`
}

func (c *draftCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", finsuite.DraftFilename, "Output file for the draft.")
	f.BoolVar(&c.print, "p", false, "Print the draft to stdout instead of writing a file.")
}

func (c *draftCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}
	draft := w.Draft()
	if draft == "" {
		fmt.Fprintln(os.Stderr, "No statements imported, nothing to draft.")
		return subcommands.ExitFailure
	}
	if c.print {
		printMarkdown(draft)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.out, []byte(draft+"\n"), 0644); err != nil {
		return fail(err)
	}
	fmt.Printf("Draft written to %s\n", c.out)
	return subcommands.ExitSuccess
}
