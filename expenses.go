package finsuite

import "fmt"

// ExpenseStatus tracks the approval workflow of an expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "Pending"
	ExpenseApproved ExpenseStatus = "Approved"
	ExpenseRejected ExpenseStatus = "Rejected"
)

// Expense is a single recorded business expense.
type Expense struct {
	ID       string        `json:"id"`
	Date     string        `json:"date"`
	Category string        `json:"category"`
	Amount   Money         `json:"amount"`
	Vendor   string        `json:"vendor,omitempty"`
	Notes    string        `json:"notes,omitempty"`
	Status   ExpenseStatus `json:"status"`
}

// ExpenseBook is an identity-keyed collection of expenses, kept in entry
// order for display.
type ExpenseBook struct {
	entries []Expense
}

func NewExpenseBook() *ExpenseBook { return &ExpenseBook{} }

// Add records a new pending expense and returns its generated id.
// Date and a non-zero amount are mandatory.
func (b *ExpenseBook) Add(e Expense) (string, error) {
	if e.Date == "" {
		return "", fmt.Errorf("expense needs a date")
	}
	if e.Amount.IsZero() {
		return "", fmt.Errorf("expense needs an amount")
	}
	e.ID = NewID()
	e.Status = ExpensePending
	b.entries = append(b.entries, e)
	return e.ID, nil
}

// Approve marks the expense as approved.
func (b *ExpenseBook) Approve(id string) error { return b.setStatus(id, ExpenseApproved) }

// Reject marks the expense as rejected; it no longer counts in totals.
func (b *ExpenseBook) Reject(id string) error { return b.setStatus(id, ExpenseRejected) }

func (b *ExpenseBook) setStatus(id string, s ExpenseStatus) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries[i].Status = s
			return nil
		}
	}
	return fmt.Errorf("unknown expense %q", id)
}

// Remove deletes the expense with the given id.
func (b *ExpenseBook) Remove(id string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown expense %q", id)
}

// Entries returns the expenses in entry order.
func (b *ExpenseBook) Entries() []Expense {
	out := make([]Expense, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *ExpenseBook) Len() int { return len(b.entries) }

// Total sums every expense that was not rejected.
func (b *ExpenseBook) Total() Money {
	var total Money
	for _, e := range b.entries {
		if e.Status == ExpenseRejected {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}
