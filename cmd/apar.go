package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finsuite/finsuite"
	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
)

// payableCmd holds the flags for the 'payable' subcommand.
type payableCmd struct {
	vendor string
	amount string
	due    string
	rm     string
}

func (*payableCmd) Name() string     { return "payable" }
func (*payableCmd) Synopsis() string { return "track what the company owes" }
func (*payableCmd) Usage() string {
	return `fos payable [-vendor <name> -amount <amount>] [-rm <id>]

  Records an account payable, or lists payables and receivables when no
  flags are given.

Usage Examples:
$ fos payable -vendor "Cloud Hosting Co" -amount 3200 -due 2024-05-15
$ fos payable
`
}

func (c *payableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.vendor, "vendor", "", "Vendor owed.")
	f.StringVar(&c.amount, "amount", "", "Amount owed.")
	f.StringVar(&c.due, "due", "", "Due date.")
	f.StringVar(&c.rm, "rm", "", "Remove the payable with this id.")
}

func (c *payableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.rm != "":
		if err := w.Payables.Remove(c.rm); err != nil {
			return fail(err)
		}
	case c.vendor != "":
		amount, err := finsuite.ParseMoney(c.amount, w.Currency)
		if err != nil {
			return usageError(err)
		}
		id, err := w.Payables.Add(finsuite.Payable{Vendor: c.vendor, Amount: amount, Due: c.due})
		if err != nil {
			return usageError(err)
		}
		fmt.Println("Recorded payable", id)
	default:
		printMarkdown(renderer.RenderAPAR(w.Payables, w.Receivables))
		return subcommands.ExitSuccess
	}
	return save(w)
}

// receivableCmd holds the flags for the 'receivable' subcommand.
type receivableCmd struct {
	client string
	amount string
	due    string
	rm     string
}

func (*receivableCmd) Name() string     { return "receivable" }
func (*receivableCmd) Synopsis() string { return "track what clients owe the company" }
func (*receivableCmd) Usage() string {
	return `fos receivable [-client <name> -amount <amount>] [-rm <id>]

  Records an account receivable, or lists payables and receivables when no
  flags are given.

Usage Examples:
$ fos receivable -client "Globex" -amount 5400 -due 2024-05-30
$ fos receivable
`
}

func (c *receivableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client owing.")
	f.StringVar(&c.amount, "amount", "", "Amount due.")
	f.StringVar(&c.due, "due", "", "Due date.")
	f.StringVar(&c.rm, "rm", "", "Remove the receivable with this id.")
}

func (c *receivableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.rm != "":
		if err := w.Receivables.Remove(c.rm); err != nil {
			return fail(err)
		}
	case c.client != "":
		amount, err := finsuite.ParseMoney(c.amount, w.Currency)
		if err != nil {
			return usageError(err)
		}
		id, err := w.Receivables.Add(finsuite.Receivable{Client: c.client, Amount: amount, Due: c.due})
		if err != nil {
			return usageError(err)
		}
		fmt.Println("Recorded receivable", id)
	default:
		printMarkdown(renderer.RenderAPAR(w.Payables, w.Receivables))
		return subcommands.ExitSuccess
	}
	return save(w)
}
