package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finsuite/finsuite"
	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
)

// cashCmd holds the flags for the 'cash' subcommand.
type cashCmd struct {
	date    string
	inflow  string
	outflow string
	rm      string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "project cash in and out" }
func (*cashCmd) Usage() string {
	return `fos cash [-date <date> -in <amount> -out <amount>] [-rm <id>]

  Records a cash projection, or lists projections with the running balance
  when no flags are given. Warns when the balance goes negative.

Usage Examples:
$ fos cash -date 2024-05-01 -in 20000 -out 32000
$ fos cash
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Projection date.")
	f.StringVar(&c.inflow, "in", "0", "Expected cash in.")
	f.StringVar(&c.outflow, "out", "0", "Expected cash out.")
	f.StringVar(&c.rm, "rm", "", "Remove the projection with this id.")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.rm != "":
		if err := w.Cash.Remove(c.rm); err != nil {
			return fail(err)
		}
	case c.date != "":
		inflow, err := finsuite.ParseMoney(c.inflow, w.Currency)
		if err != nil {
			return usageError(err)
		}
		outflow, err := finsuite.ParseMoney(c.outflow, w.Currency)
		if err != nil {
			return usageError(err)
		}
		id, err := w.Cash.Add(finsuite.Projection{Date: c.date, Inflow: inflow, Outflow: outflow})
		if err != nil {
			return usageError(err)
		}
		fmt.Println("Recorded projection", id)
	default:
		printMarkdown(renderer.RenderCash(w.Cash))
		return subcommands.ExitSuccess
	}
	return save(w)
}
