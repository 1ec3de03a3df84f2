package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finsuite/finsuite"
	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
)

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	period  string
	revenue string
	cogs    string
	opex    string
	rm      string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "plan budgets and view variance" }
func (*budgetCmd) Usage() string {
	return `fos budget [-period <period> -revenue <amount> -cogs <amount> -opex <amount>] [-rm <id>]

  Plans a budget for a period, or lists budgets with their variance against
  the actual net income when no flags are given.

Usage Examples:
$ fos budget -period 2024-Q3 -revenue 150000 -cogs 45000 -opex 60000
$ fos budget
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "", "Budgeted period.")
	f.StringVar(&c.revenue, "revenue", "0", "Budgeted revenue.")
	f.StringVar(&c.cogs, "cogs", "0", "Budgeted cost of goods sold.")
	f.StringVar(&c.opex, "opex", "0", "Budgeted operating expenses.")
	f.StringVar(&c.rm, "rm", "", "Remove the budget with this id.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.rm != "":
		if err := w.Budgets.Remove(c.rm); err != nil {
			return fail(err)
		}
	case c.period != "":
		budget := finsuite.Budget{Period: c.period}
		for _, p := range []struct {
			s string
			m *finsuite.Money
		}{
			{c.revenue, &budget.Revenue},
			{c.cogs, &budget.COGS},
			{c.opex, &budget.Opex},
		} {
			m, err := finsuite.ParseMoney(p.s, w.Currency)
			if err != nil {
				return usageError(err)
			}
			*p.m = m
		}
		id, err := w.Budgets.Add(budget)
		if err != nil {
			return usageError(err)
		}
		fmt.Println("Planned budget", id)
	default:
		printMarkdown(renderer.RenderBudgets(w.Budgets, w.ProfitAndLoss().NetIncome))
		return subcommands.ExitSuccess
	}
	return save(w)
}
