package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a CSV of financial statements" }
func (*importCmd) Usage() string {
	return `fos import [-f <file>]

  Imports a CSV export of periodic financial statements into the workspace,
  replacing the previous table. Reads stdin when no file is given.

Usage Examples:
$ fos import -f statements.csv
$ cat statements.csv | fos import
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "CSV file to import. Defaults to stdin.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if c.file != "" {
		file, err := os.Open(c.file)
		if err != nil {
			return fail(err)
		}
		defer file.Close()
		r = file
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return fail(err)
	}

	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}
	if err := w.ImportStatements(string(text)); err != nil {
		return fail(err)
	}
	if st := save(w); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Imported %d rows, %d columns\n", len(w.Table.Rows), len(w.Table.Columns))
	return subcommands.ExitSuccess
}
