package finsuite

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PayCycle is how often an employee is paid.
type PayCycle string

const (
	PayMonthly  PayCycle = "Monthly"
	PayBiWeekly PayCycle = "Bi-Weekly"
	PayWeekly   PayCycle = "Weekly"
)

// periodsPerYear returns the number of pay runs in a year for the cycle.
// Anything unrecognized counts as weekly, the dashboard's historical default.
func (c PayCycle) periodsPerYear() int64 {
	switch c {
	case PayMonthly:
		return 12
	case PayBiWeekly:
		return 26
	default:
		return 52
	}
}

// Employee is one payroll entry with an annual salary.
type Employee struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Salary   Money    `json:"salary"` // annual
	PayCycle PayCycle `json:"payCycle"`
}

// PerPay returns the gross amount of a single pay run.
func (e Employee) PerPay() Money {
	return Money{
		value: e.Salary.Amount().Div(decimal.NewFromInt(e.PayCycle.periodsPerYear())),
		cur:   e.Salary.Currency(),
	}
}

// PayrollBook tracks employees in entry order.
type PayrollBook struct {
	entries []Employee
}

func NewPayrollBook() *PayrollBook { return &PayrollBook{} }

// Add records a new employee and returns its generated id. Name is mandatory;
// the pay cycle defaults to monthly.
func (b *PayrollBook) Add(e Employee) (string, error) {
	if e.Name == "" {
		return "", fmt.Errorf("employee needs a name")
	}
	e.ID = NewID()
	if e.PayCycle == "" {
		e.PayCycle = PayMonthly
	}
	b.entries = append(b.entries, e)
	return e.ID, nil
}

// Remove deletes the employee with the given id.
func (b *PayrollBook) Remove(id string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown employee %q", id)
}

// Entries returns the employees in entry order.
func (b *PayrollBook) Entries() []Employee {
	out := make([]Employee, len(b.entries))
	copy(out, b.entries)
	return out
}

// AnnualCost sums all annual salaries.
func (b *PayrollBook) AnnualCost() Money {
	var total Money
	for _, e := range b.entries {
		total = total.Add(e.Salary)
	}
	return total
}
