package cmd

import (
	"context"
	"flag"

	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
)

// kpiCmd holds the flags for the 'kpi' subcommand.
type kpiCmd struct{}

func (*kpiCmd) Name() string     { return "kpi" }
func (*kpiCmd) Synopsis() string { return "display the key performance indicators" }
func (*kpiCmd) Usage() string {
	return `fos kpi

  Displays the indicators derived from the two latest imported statement
  periods: revenue, growth, margins and cost ratios.
`
}

func (*kpiCmd) SetFlags(_ *flag.FlagSet) {}

func (c *kpiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.KPIMarkdown(w.KPIs()))
	return subcommands.ExitSuccess
}
