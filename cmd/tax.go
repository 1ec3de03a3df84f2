package cmd

import (
	"context"
	"flag"

	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// taxCmd holds the flags for the 'tax' subcommand.
type taxCmd struct {
	rate     string
	filings  bool
	payroll  bool
	salesTax bool
	corpTax  bool
	check    bool
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "estimate taxes and track compliance" }
func (*taxCmd) Usage() string {
	return `fos tax [-rate <ratio>] [-check -filings -payroll -salestax -corptax]

  Displays the tax estimate on net income and the compliance checklist.
  Use -rate to change the flat rate, -check to update the checklist.

Usage Examples:
$ fos tax
$ fos tax -rate 0.19
$ fos tax -check -filings -payroll
`
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.rate, "rate", "", "Flat tax rate as a ratio, e.g. 0.21.")
	f.BoolVar(&c.check, "check", false, "Replace the compliance checklist with the flags below.")
	f.BoolVar(&c.filings, "filings", false, "Annual filings up to date.")
	f.BoolVar(&c.payroll, "payroll", false, "Payroll taxes withheld and deposited.")
	f.BoolVar(&c.salesTax, "salestax", false, "Sales tax collected and remitted.")
	f.BoolVar(&c.corpTax, "corptax", false, "Corporate estimated payments scheduled.")
}

func (c *taxCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	changed := false
	if c.rate != "" {
		rate, err := decimal.NewFromString(c.rate)
		if err != nil {
			return usageError(err)
		}
		w.TaxRate = rate
		changed = true
	}
	if c.check {
		w.Compliance.Filings = c.filings
		w.Compliance.Payroll = c.payroll
		w.Compliance.SalesTax = c.salesTax
		w.Compliance.CorpTax = c.corpTax
		changed = true
	}
	if changed {
		if st := save(w); st != subcommands.ExitSuccess {
			return st
		}
	}

	net := w.ProfitAndLoss().NetIncome
	printMarkdown(renderer.TaxMarkdown(net, w.EstimatedTax(), w.Compliance))
	return subcommands.ExitSuccess
}
