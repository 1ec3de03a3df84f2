package finsuite

import (
	"strings"
	"testing"
)

func usd(v float64) Money { return M(v, "USD") }

func TestExpenseBook(t *testing.T) {
	b := NewExpenseBook()

	id1, err := b.Add(Expense{Date: "2024-04-02", Category: "Software", Amount: usd(1200)})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	id2, err := b.Add(Expense{Date: "2024-04-03", Category: "Travel", Amount: usd(800)})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	if got := b.Entries()[0].Status; got != ExpensePending {
		t.Errorf("new expense status = %q, want %q", got, ExpensePending)
	}

	if err := b.Approve(id1); err != nil {
		t.Fatalf("Approve() failed: %v", err)
	}
	if err := b.Reject(id2); err != nil {
		t.Fatalf("Reject() failed: %v", err)
	}

	// Rejected expenses drop out of the total.
	if got := b.Total(); !got.Equal(usd(1200)) {
		t.Errorf("Total() = %v, want %v", got, usd(1200))
	}

	if err := b.Remove(id1); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() after remove = %d, want 1", b.Len())
	}
	if err := b.Remove("no-such-id"); err == nil {
		t.Error("Remove() with unknown id should fail")
	}
}

func TestExpenseBookValidation(t *testing.T) {
	b := NewExpenseBook()
	if _, err := b.Add(Expense{Amount: usd(10)}); err == nil {
		t.Error("Add() without a date should fail")
	}
	if _, err := b.Add(Expense{Date: "2024-04-02"}); err == nil {
		t.Error("Add() without an amount should fail")
	}
}

func TestInvoiceBook(t *testing.T) {
	b := NewInvoiceBook()

	items := []LineItem{
		{Description: "Consulting", Quantity: newDecimal(10), UnitPrice: usd(150)},
		{Description: "Support", Quantity: newDecimal(1), UnitPrice: usd(500)},
	}
	id, err := b.Add(Invoice{Client: "Acme, Inc.", Date: "2024-04-02", Items: items, Currency: "USD"})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := b.Entries()[0].Status; got != InvoiceDraft {
		t.Errorf("new invoice status = %q, want %q", got, InvoiceDraft)
	}
	if got := b.Entries()[0].Total(); !got.Equal(usd(2000)) {
		t.Errorf("Total() = %v, want %v", got, usd(2000))
	}

	// Unpaid invoices count as outstanding, not revenue.
	if got := b.Revenue(); !got.IsZero() {
		t.Errorf("Revenue() = %v, want zero before payment", got)
	}
	if got := b.Outstanding(); !got.Equal(usd(2000)) {
		t.Errorf("Outstanding() = %v, want %v", got, usd(2000))
	}

	if err := b.MarkPaid(id, "2024-04-30"); err != nil {
		t.Fatalf("MarkPaid() failed: %v", err)
	}
	if got := b.Revenue(); !got.Equal(usd(2000)) {
		t.Errorf("Revenue() = %v, want %v after payment", got, usd(2000))
	}
	if got := b.Outstanding(); !got.IsZero() {
		t.Errorf("Outstanding() = %v, want zero after payment", got)
	}
	if got := b.Entries()[0].PaidOn; got != "2024-04-30" {
		t.Errorf("PaidOn = %q, want 2024-04-30", got)
	}

	if _, err := b.Add(Invoice{Date: "2024-04-02"}); err == nil {
		t.Error("Add() without a client should fail")
	}
}

func TestBudgetVariance(t *testing.T) {
	testCases := []struct {
		name   string
		actual Money
		budget Money
		want   Percent
	}{
		{"over budget", usd(120), usd(100), 0.2},
		{"under budget", usd(80), usd(100), -0.2},
		{"on budget", usd(100), usd(100), 0},
		{"zero budget has no variance", usd(50), usd(0), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Variance(tc.actual, tc.budget); !got.Equal(tc.want) {
				t.Errorf("Variance(%v, %v) = %v, want %v", tc.actual, tc.budget, got, tc.want)
			}
		})
	}
}

func TestBudgetBook(t *testing.T) {
	b := NewBudgetBook()
	if _, err := b.Add(Budget{Period: "2024-Q3", Revenue: usd(150000), COGS: usd(45000), Opex: usd(60000)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := b.Add(Budget{}); err == nil {
		t.Error("Add() without a period should fail")
	}

	if got := b.Entries()[0].Net(); !got.Equal(usd(45000)) {
		t.Errorf("Net() = %v, want %v", got, usd(45000))
	}
	if got := b.TotalCOGS(); !got.Equal(usd(45000)) {
		t.Errorf("TotalCOGS() = %v, want %v", got, usd(45000))
	}

	vs := b.VarianceAgainst(usd(54000))
	if len(vs) != 1 {
		t.Fatalf("VarianceAgainst() returned %d rows, want 1", len(vs))
	}
	if want := Percent(0.2); !vs[0].Variance.Equal(want) {
		t.Errorf("Variance = %v, want %v", vs[0].Variance, want)
	}
}

func TestCashBook(t *testing.T) {
	b := NewCashBook()
	if _, err := b.Add(Projection{Date: "2024-05-01", Inflow: usd(20000), Outflow: usd(15000)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := b.Balance(); !got.Equal(usd(5000)) {
		t.Errorf("Balance() = %v, want %v", got, usd(5000))
	}
	if b.LowCash() {
		t.Error("LowCash() = true with a positive balance")
	}

	if _, err := b.Add(Projection{Date: "2024-06-01", Outflow: usd(12000)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := b.Balance(); !got.Equal(usd(-7000)) {
		t.Errorf("Balance() = %v, want %v", got, usd(-7000))
	}
	if !b.LowCash() {
		t.Error("LowCash() = false with a negative balance")
	}

	if _, err := b.Add(Projection{}); err == nil {
		t.Error("Add() without a date should fail")
	}
}

func TestPayableReceivableBooks(t *testing.T) {
	ap := NewPayableBook()
	if _, err := ap.Add(Payable{Vendor: "Cloud Hosting Co", Amount: usd(3200)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := ap.Add(Payable{Vendor: "Insurance", Amount: usd(800)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := ap.Total(); !got.Equal(usd(4000)) {
		t.Errorf("payable Total() = %v, want %v", got, usd(4000))
	}

	ar := NewReceivableBook()
	id, err := ar.Add(Receivable{Client: "Globex", Amount: usd(5400)})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := ar.Total(); !got.Equal(usd(5400)) {
		t.Errorf("receivable Total() = %v, want %v", got, usd(5400))
	}
	if err := ar.Remove(id); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if got := ar.Total(); !got.IsZero() {
		t.Errorf("receivable Total() = %v, want zero after remove", got)
	}
}

func TestGoalBook(t *testing.T) {
	b := NewGoalBook()
	id, err := b.Add(Goal{Name: "Runway 18 months", Target: usd(500000), Progress: 140})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := b.Entries()[0].Progress; got != 100 {
		t.Errorf("progress = %d, want clamped to 100", got)
	}
	if err := b.SetProgress(id, -5); err != nil {
		t.Fatalf("SetProgress() failed: %v", err)
	}
	if got := b.Entries()[0].Progress; got != 0 {
		t.Errorf("progress = %d, want clamped to 0", got)
	}
	if _, err := b.Add(Goal{}); err == nil {
		t.Error("Add() without a name should fail")
	}
}

func TestPayroll(t *testing.T) {
	testCases := []struct {
		cycle   PayCycle
		salary  float64
		wantPer string
	}{
		{PayMonthly, 96000, "8000"},
		{PayBiWeekly, 96000, "3692.3076923076923077"}, // 96000 / 26
		{PayWeekly, 52000, "1000"},
		{PayCycle("Fortnightly"), 52000, "1000"}, // unknown cycles run weekly
	}
	for _, tc := range testCases {
		e := Employee{Name: "Dana", Salary: usd(tc.salary), PayCycle: tc.cycle}
		if got := e.PerPay().Amount().String(); got != tc.wantPer {
			t.Errorf("PerPay() with %q = %s, want %s", tc.cycle, got, tc.wantPer)
		}
	}

	b := NewPayrollBook()
	if _, err := b.Add(Employee{Name: "Dana", Salary: usd(96000)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := b.Entries()[0].PayCycle; got != PayMonthly {
		t.Errorf("default cycle = %q, want %q", got, PayMonthly)
	}
	if _, err := b.Add(Employee{Name: "Sam", Salary: usd(60000), PayCycle: PayWeekly}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := b.AnnualCost(); !got.Equal(usd(156000)) {
		t.Errorf("AnnualCost() = %v, want %v", got, usd(156000))
	}
	if _, err := b.Add(Employee{}); err == nil {
		t.Error("Add() without a name should fail")
	}
}

func TestAssets(t *testing.T) {
	testCases := []struct {
		name string
		cost float64
		life int
		want string
	}{
		{"straight line", 24000, 3, "8000"},
		{"zero life counts as one year", 5000, 0, "5000"},
		{"negative life counts as one year", 5000, -2, "5000"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := Asset{Name: "thing", Cost: usd(tc.cost), LifeYears: tc.life}
			if got := a.YearlyDepreciation().Amount().String(); got != tc.want {
				t.Errorf("YearlyDepreciation() = %s, want %s", got, tc.want)
			}
		})
	}

	b := NewAssetBook()
	if _, err := b.Add(Asset{Name: "Workstations", Cost: usd(24000), LifeYears: 3}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if _, err := b.Add(Asset{Name: "Server", Cost: usd(6000), LifeYears: 2}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if got := b.TotalDepreciation(); !got.Equal(usd(11000)) {
		t.Errorf("TotalDepreciation() = %v, want %v", got, usd(11000))
	}
}

func TestGeneratedIDsAreUsable(t *testing.T) {
	b := NewExpenseBook()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id, err := b.Add(Expense{Date: "2024-01-01", Amount: usd(1)})
		if err != nil {
			t.Fatalf("Add() failed: %v", err)
		}
		if len(id) != 26 {
			t.Fatalf("id %q has length %d, want 26", id, len(id))
		}
		if strings.ToUpper(id) != id {
			t.Errorf("id %q is not uppercase Crockford", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}
