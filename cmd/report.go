package cmd

import (
	"context"
	"flag"

	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct{}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display the derived financial statements" }
func (*reportCmd) Usage() string {
	return `fos report

  Displays the profit and loss, balance sheet and cash flow statements
  derived from the books.
`
}

func (*reportCmd) SetFlags(_ *flag.FlagSet) {}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.StatementsMarkdown(w.ProfitAndLoss(), w.BalanceSheet(), w.CashFlow()))
	return subcommands.ExitSuccess
}
