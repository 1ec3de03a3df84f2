// Package cmd implements the CLI application to run a company's finance
// workspace: import statements, derive indicators, keep the books and
// compose the management discussion draft.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/finsuite/finsuite"
	"github.com/google/subcommands"
)

// Commands lists every subcommand a main package should register.
var Commands = []subcommands.Command{
	&importCmd{},
	&kpiCmd{},
	&draftCmd{},
	&expenseCmd{},
	&invoiceCmd{},
	&budgetCmd{},
	&cashCmd{},
	&payableCmd{},
	&receivableCmd{},
	&goalCmd{},
	&payrollCmd{},
	&assetCmd{},
	&reportCmd{},
	&taxCmd{},
	&fxCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var workspaceDir = flag.String("workspace", ".finsuite", "Path to the workspace folder")

// OpenWorkspace opens the application workspace from the configured folder.
func OpenWorkspace() (*finsuite.Workspace, error) {
	store, err := finsuite.OpenDirStore(*workspaceDir)
	if err != nil {
		return nil, err
	}
	return finsuite.OpenWorkspace(store)
}

// save persists the workspace, reporting the error in CLI style.
func save(w *finsuite.Workspace) subcommands.ExitStatus {
	if err := w.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving workspace: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// fail prints err and returns the failure status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitFailure
}

// usageError prints err and returns the usage error status.
func usageError(err error) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, "Error:", err)
	return subcommands.ExitUsageError
}
