package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finsuite/finsuite"
	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
)

// expenseCmd holds the flags for the 'expense' subcommand.
type expenseCmd struct {
	date     string
	category string
	amount   string
	vendor   string
	notes    string
	approve  string
	reject   string
	rm       string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record and review expenses" }
func (*expenseCmd) Usage() string {
	return `fos expense [-date <date> -amount <amount> -category <cat>] [-approve <id>] [-reject <id>] [-rm <id>]

  Records a pending expense, moves one through approval, or lists the book
  when no flags are given.

Usage Examples:
$ fos expense -date 2024-04-02 -amount 1250 -category Software -vendor "Acme SaaS"
$ fos expense -approve 01HZXK...
$ fos expense
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", "", "Expense date.")
	f.StringVar(&c.category, "category", "", "Expense category.")
	f.StringVar(&c.amount, "amount", "", "Expense amount.")
	f.StringVar(&c.vendor, "vendor", "", "Vendor name.")
	f.StringVar(&c.notes, "notes", "", "Free-form notes.")
	f.StringVar(&c.approve, "approve", "", "Approve the expense with this id.")
	f.StringVar(&c.reject, "reject", "", "Reject the expense with this id.")
	f.StringVar(&c.rm, "rm", "", "Remove the expense with this id.")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.rm != "":
		if err := w.Expenses.Remove(c.rm); err != nil {
			return fail(err)
		}
	case c.approve != "":
		if err := w.Expenses.Approve(c.approve); err != nil {
			return fail(err)
		}
	case c.reject != "":
		if err := w.Expenses.Reject(c.reject); err != nil {
			return fail(err)
		}
	case c.date != "" || c.amount != "":
		amount, err := finsuite.ParseMoney(c.amount, w.Currency)
		if err != nil {
			return usageError(err)
		}
		id, err := w.Expenses.Add(finsuite.Expense{
			Date:     c.date,
			Category: c.category,
			Amount:   amount,
			Vendor:   c.vendor,
			Notes:    c.notes,
		})
		if err != nil {
			return usageError(err)
		}
		fmt.Println("Recorded expense", id)
	default:
		printMarkdown(renderer.RenderExpenses(w.Expenses))
		return subcommands.ExitSuccess
	}
	return save(w)
}
