package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finsuite/finsuite"
	"github.com/google/subcommands"
)

// fxCmd holds the flags for the 'fx' subcommand.
type fxCmd struct {
	update  bool
	ccy     string
	convert string
	to      string
}

func (*fxCmd) Name() string     { return "fx" }
func (*fxCmd) Synopsis() string { return "list exchange rates and convert amounts" }
func (*fxCmd) Usage() string {
	return `fos fx [-update] [-ccy <code>] [-convert <amount> -to <code>]

  Lists the USD-based exchange rates, refreshes them from the daily
  reference rates, converts an amount, or changes the workspace display
  currency.

Usage Examples:
$ fos fx
$ fos fx -update
$ fos fx -convert 1500 -to EUR
$ fos fx -ccy EUR
`
}

func (c *fxCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "update", false, "Refresh rates from the daily reference rates.")
	f.StringVar(&c.ccy, "ccy", "", "Set the workspace display currency.")
	f.StringVar(&c.convert, "convert", "", "Amount to convert from the workspace currency.")
	f.StringVar(&c.to, "to", "", "Target currency for -convert.")
}

func (c *fxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	fx := finsuite.NewFXTable()
	if c.update {
		if err := fx.Refresh(nil); err != nil {
			return fail(err)
		}
	}

	switch {
	case c.ccy != "":
		w.Currency = c.ccy
		if st := save(w); st != subcommands.ExitSuccess {
			return st
		}
		fmt.Println("Display currency set to", c.ccy)
	case c.convert != "":
		if c.to == "" {
			return usageError(fmt.Errorf("missing -to currency"))
		}
		amount, err := finsuite.ParseMoney(c.convert, w.Currency)
		if err != nil {
			return usageError(err)
		}
		fmt.Println(fx.Convert(amount, c.to))
	default:
		for _, cur := range fx.Currencies() {
			fmt.Printf("%s\t%.4f\n", cur, fx.Rate(cur))
		}
	}
	return subcommands.ExitSuccess
}
