package finsuite

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// InvoiceStatus tracks the billing lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "Draft"
	InvoiceSent  InvoiceStatus = "Sent"
	InvoicePaid  InvoiceStatus = "Paid"
)

// LineItem is one billed position of an invoice.
type LineItem struct {
	Description string          `json:"desc"`
	Quantity    decimal.Decimal `json:"qty"`
	UnitPrice   Money           `json:"price"`
}

// Total returns quantity times unit price, exact.
func (it LineItem) Total() Money { return it.UnitPrice.Mul(it.Quantity) }

// Invoice is a client invoice made of line items. Its total is always derived
// from the items, never stored.
type Invoice struct {
	ID       string        `json:"id"`
	Date     string        `json:"date"`
	Due      string        `json:"due,omitempty"`
	Client   string        `json:"client"`
	Items    []LineItem    `json:"items"`
	Status   InvoiceStatus `json:"status"`
	Currency string        `json:"currency"`
	Notes    string        `json:"notes,omitempty"`
	PaidOn   string        `json:"paidOn,omitempty"`
}

// Total sums the line items.
func (inv Invoice) Total() Money {
	total := M(0, inv.Currency)
	for _, it := range inv.Items {
		total = total.Add(it.Total())
	}
	return total
}

// InvoiceBook is an identity-keyed collection of invoices in entry order.
type InvoiceBook struct {
	entries []Invoice
}

func NewInvoiceBook() *InvoiceBook { return &InvoiceBook{} }

// Add records a new invoice and returns its generated id. Status defaults
// to Draft.
func (b *InvoiceBook) Add(inv Invoice) (string, error) {
	if inv.Client == "" {
		return "", fmt.Errorf("invoice needs a client")
	}
	inv.ID = NewID()
	if inv.Status == "" {
		inv.Status = InvoiceDraft
	}
	b.entries = append(b.entries, inv)
	return inv.ID, nil
}

// MarkPaid records the payment date and flips the invoice to Paid.
func (b *InvoiceBook) MarkPaid(id, on string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries[i].Status = InvoicePaid
			b.entries[i].PaidOn = on
			return nil
		}
	}
	return fmt.Errorf("unknown invoice %q", id)
}

// Remove deletes the invoice with the given id.
func (b *InvoiceBook) Remove(id string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown invoice %q", id)
}

// Entries returns the invoices in entry order.
func (b *InvoiceBook) Entries() []Invoice {
	out := make([]Invoice, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *InvoiceBook) Len() int { return len(b.entries) }

// Revenue sums the totals of paid invoices.
func (b *InvoiceBook) Revenue() Money {
	var total Money
	for _, inv := range b.entries {
		if inv.Status == InvoicePaid {
			total = total.Add(inv.Total())
		}
	}
	return total
}

// Outstanding sums the totals of unpaid invoices, the receivables side of the
// balance sheet.
func (b *InvoiceBook) Outstanding() Money {
	var total Money
	for _, inv := range b.entries {
		if inv.Status != InvoicePaid {
			total = total.Add(inv.Total())
		}
	}
	return total
}
