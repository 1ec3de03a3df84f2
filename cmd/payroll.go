package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/finsuite/finsuite"
	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
)

// payrollCmd holds the flags for the 'payroll' subcommand.
type payrollCmd struct {
	name   string
	salary string
	cycle  string
	rm     string
}

func (*payrollCmd) Name() string     { return "payroll" }
func (*payrollCmd) Synopsis() string { return "manage employees and pay runs" }
func (*payrollCmd) Usage() string {
	return `fos payroll [-name <name> -salary <annual> [-cycle Monthly|Bi-Weekly|Weekly]] [-rm <id>]

  Adds an employee with an annual salary, or lists the payroll with the
  per-pay-run amounts when no flags are given.

Usage Examples:
$ fos payroll -name "Dana Smith" -salary 96000 -cycle Bi-Weekly
$ fos payroll
`
}

func (c *payrollCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Employee name.")
	f.StringVar(&c.salary, "salary", "0", "Annual salary.")
	f.StringVar(&c.cycle, "cycle", string(finsuite.PayMonthly), "Pay cycle: Monthly, Bi-Weekly or Weekly.")
	f.StringVar(&c.rm, "rm", "", "Remove the employee with this id.")
}

func (c *payrollCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.rm != "":
		if err := w.Payroll.Remove(c.rm); err != nil {
			return fail(err)
		}
	case c.name != "":
		salary, err := finsuite.ParseMoney(c.salary, w.Currency)
		if err != nil {
			return usageError(err)
		}
		id, err := w.Payroll.Add(finsuite.Employee{
			Name:     c.name,
			Salary:   salary,
			PayCycle: finsuite.PayCycle(c.cycle),
		})
		if err != nil {
			return usageError(err)
		}
		fmt.Println("Added employee", id)
	default:
		printMarkdown(renderer.RenderPayroll(w.Payroll))
		return subcommands.ExitSuccess
	}
	return save(w)
}
