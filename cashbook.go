package finsuite

import "fmt"

// Projection is one expected cash movement: money coming in and going out on
// a given date.
type Projection struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Inflow  Money  `json:"inflow"`
	Outflow Money  `json:"outflow"`
}

// CashBook is an identity-keyed collection of cash projections in entry order.
type CashBook struct {
	entries []Projection
}

func NewCashBook() *CashBook { return &CashBook{} }

// Add records a new projection and returns its generated id. Date is
// mandatory.
func (b *CashBook) Add(p Projection) (string, error) {
	if p.Date == "" {
		return "", fmt.Errorf("projection needs a date")
	}
	p.ID = NewID()
	b.entries = append(b.entries, p)
	return p.ID, nil
}

// Remove deletes the projection with the given id.
func (b *CashBook) Remove(id string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown projection %q", id)
}

// Entries returns the projections in entry order.
func (b *CashBook) Entries() []Projection {
	out := make([]Projection, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *CashBook) Len() int { return len(b.entries) }

// Balance returns the running sum of inflows less outflows.
func (b *CashBook) Balance() Money {
	var total Money
	for _, p := range b.entries {
		total = total.Add(p.Inflow).Sub(p.Outflow)
	}
	return total
}

// LowCash reports a projected negative balance.
func (b *CashBook) LowCash() bool { return b.Balance().IsNegative() }
