package finsuite

import "fmt"

// Payable is an amount owed to a vendor.
type Payable struct {
	ID     string `json:"id"`
	Vendor string `json:"vendor"`
	Amount Money  `json:"amount"`
	Due    string `json:"due,omitempty"`
}

// Receivable is an amount owed by a client.
type Receivable struct {
	ID     string `json:"id"`
	Client string `json:"client"`
	Amount Money  `json:"amount"`
	Due    string `json:"due,omitempty"`
}

// PayableBook tracks open payables in entry order.
type PayableBook struct {
	entries []Payable
}

func NewPayableBook() *PayableBook { return &PayableBook{} }

// Add records a new payable and returns its generated id.
func (b *PayableBook) Add(p Payable) (string, error) {
	if p.Vendor == "" {
		return "", fmt.Errorf("payable needs a vendor")
	}
	p.ID = NewID()
	b.entries = append(b.entries, p)
	return p.ID, nil
}

// Remove deletes the payable with the given id, typically once settled.
func (b *PayableBook) Remove(id string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown payable %q", id)
}

// Entries returns the payables in entry order.
func (b *PayableBook) Entries() []Payable {
	out := make([]Payable, len(b.entries))
	copy(out, b.entries)
	return out
}

// Total sums all open payables.
func (b *PayableBook) Total() Money {
	var total Money
	for _, p := range b.entries {
		total = total.Add(p.Amount)
	}
	return total
}

// ReceivableBook tracks open receivables in entry order.
type ReceivableBook struct {
	entries []Receivable
}

func NewReceivableBook() *ReceivableBook { return &ReceivableBook{} }

// Add records a new receivable and returns its generated id.
func (b *ReceivableBook) Add(r Receivable) (string, error) {
	if r.Client == "" {
		return "", fmt.Errorf("receivable needs a client")
	}
	r.ID = NewID()
	b.entries = append(b.entries, r)
	return r.ID, nil
}

// Remove deletes the receivable with the given id.
func (b *ReceivableBook) Remove(id string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown receivable %q", id)
}

// Entries returns the receivables in entry order.
func (b *ReceivableBook) Entries() []Receivable {
	out := make([]Receivable, len(b.entries))
	copy(out, b.entries)
	return out
}

// Total sums all open receivables.
func (b *ReceivableBook) Total() Money {
	var total Money
	for _, r := range b.entries {
		total = total.Add(r.Amount)
	}
	return total
}
