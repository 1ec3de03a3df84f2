package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/finsuite/finsuite"
	"github.com/finsuite/finsuite/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// invoiceCmd holds the flags for the 'invoice' subcommand.
type invoiceCmd struct {
	client string
	date   string
	due    string
	items  string
	send   string
	paid   string
	paidOn string
	rm     string
}

func (*invoiceCmd) Name() string     { return "invoice" }
func (*invoiceCmd) Synopsis() string { return "issue and track invoices" }
func (*invoiceCmd) Usage() string {
	return `fos invoice [-client <name> -date <date> -items <desc:qty:price,...>] [-paid <id>] [-rm <id>]

  Issues a draft invoice, marks one paid, or lists the book when no flags
  are given. Revenue is recognized on paid invoices only.

Usage Examples:
$ fos invoice -client "Acme, Inc." -date 2024-04-02 -items "Consulting:10:150,Support:1:500"
$ fos invoice -paid 01HZXK... -on 2024-04-30
$ fos invoice
`
}

func (c *invoiceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.client, "client", "", "Client to bill.")
	f.StringVar(&c.date, "date", "", "Invoice date.")
	f.StringVar(&c.due, "due", "", "Due date.")
	f.StringVar(&c.items, "items", "", "Line items, as desc:qty:price pairs separated by commas.")
	f.StringVar(&c.paid, "paid", "", "Mark the invoice with this id as paid.")
	f.StringVar(&c.paidOn, "on", "", "Payment date, used with -paid.")
	f.StringVar(&c.rm, "rm", "", "Remove the invoice with this id.")
}

// parseItems parses the desc:qty:price line item list.
func parseItems(s, cur string) ([]finsuite.LineItem, error) {
	var items []finsuite.LineItem
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.Split(part, ":")
		if len(fields) != 3 {
			return nil, fmt.Errorf("invalid line item %q, want desc:qty:price", part)
		}
		qty, err := decimal.NewFromString(fields[1])
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in %q: %w", part, err)
		}
		price, err := finsuite.ParseMoney(fields[2], cur)
		if err != nil {
			return nil, fmt.Errorf("invalid price in %q: %w", part, err)
		}
		items = append(items, finsuite.LineItem{Description: fields[0], Quantity: qty, UnitPrice: price})
	}
	return items, nil
}

func (c *invoiceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	w, err := OpenWorkspace()
	if err != nil {
		return fail(err)
	}

	switch {
	case c.rm != "":
		if err := w.Invoices.Remove(c.rm); err != nil {
			return fail(err)
		}
	case c.paid != "":
		if err := w.Invoices.MarkPaid(c.paid, c.paidOn); err != nil {
			return fail(err)
		}
	case c.client != "":
		items, err := parseItems(c.items, w.Currency)
		if err != nil {
			return usageError(err)
		}
		id, err := w.Invoices.Add(finsuite.Invoice{
			Client:   c.client,
			Date:     c.date,
			Due:      c.due,
			Items:    items,
			Currency: w.Currency,
		})
		if err != nil {
			return usageError(err)
		}
		fmt.Println("Issued invoice", id)
	default:
		printMarkdown(renderer.RenderInvoices(w.Invoices))
		return subcommands.ExitSuccess
	}
	return save(w)
}
