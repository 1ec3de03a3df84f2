package finsuite

import (
	"testing"

	"github.com/shopspring/decimal"
)

// setupBooks builds the books behind the statement tests: one paid and one
// sent invoice, a budget, approved and rejected expenses, and cash
// projections.
func setupBooks(t *testing.T) (*InvoiceBook, *BudgetBook, *ExpenseBook, *CashBook, *ReceivableBook, *PayableBook) {
	t.Helper()

	invoices := NewInvoiceBook()
	paid, err := invoices.Add(Invoice{Client: "Acme", Date: "2024-04-01", Items: []LineItem{
		{Description: "Consulting", Quantity: newDecimal(1), UnitPrice: usd(50000)},
	}})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := invoices.MarkPaid(paid, "2024-04-20"); err != nil {
		t.Fatalf("MarkPaid() failed: %v", err)
	}
	if _, err := invoices.Add(Invoice{Client: "Globex", Date: "2024-04-05", Items: []LineItem{
		{Description: "Support", Quantity: newDecimal(1), UnitPrice: usd(8000)},
	}}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	budgets := NewBudgetBook()
	if _, err := budgets.Add(Budget{Period: "2024-Q2", Revenue: usd(60000), COGS: usd(15000), Opex: usd(20000)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	expenses := NewExpenseBook()
	if _, err := expenses.Add(Expense{Date: "2024-04-02", Category: "Software", Amount: usd(12000)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	rejected, err := expenses.Add(Expense{Date: "2024-04-03", Category: "Travel", Amount: usd(3000)})
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := expenses.Reject(rejected); err != nil {
		t.Fatalf("Reject() failed: %v", err)
	}

	cash := NewCashBook()
	if _, err := cash.Add(Projection{Date: "2024-05-01", Inflow: usd(10000), Outflow: usd(4000)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	ar := NewReceivableBook()
	if _, err := ar.Add(Receivable{Client: "Initech", Amount: usd(2500)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	ap := NewPayableBook()
	if _, err := ap.Add(Payable{Vendor: "Cloud Hosting Co", Amount: usd(3200)}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	return invoices, budgets, expenses, cash, ar, ap
}

func TestNewProfitAndLoss(t *testing.T) {
	invoices, budgets, expenses, _, _, _ := setupBooks(t)
	pnl := NewProfitAndLoss(invoices, budgets, expenses)

	// Revenue recognized on the paid invoice only; the sent one stays out.
	if !pnl.Revenue.Equal(usd(50000)) {
		t.Errorf("Revenue = %v, want %v", pnl.Revenue, usd(50000))
	}
	if !pnl.COGS.Equal(usd(15000)) {
		t.Errorf("COGS = %v, want budgeted %v", pnl.COGS, usd(15000))
	}
	if !pnl.Opex.Equal(usd(12000)) {
		t.Errorf("Opex = %v, want %v without the rejected expense", pnl.Opex, usd(12000))
	}
	if !pnl.GrossProfit.Equal(usd(35000)) {
		t.Errorf("GrossProfit = %v, want %v", pnl.GrossProfit, usd(35000))
	}
	if !pnl.OperatingIncome.Equal(usd(23000)) {
		t.Errorf("OperatingIncome = %v, want %v", pnl.OperatingIncome, usd(23000))
	}
	if !pnl.NetIncome.Equal(pnl.OperatingIncome) {
		t.Errorf("NetIncome = %v, want equal to operating income", pnl.NetIncome)
	}
}

func TestNewBalanceSheet(t *testing.T) {
	invoices, _, _, cash, ar, ap := setupBooks(t)
	bs := NewBalanceSheet(cash, invoices, ar, ap)

	// Cash: 6000 projected + 50000 collected revenue.
	if !bs.Cash.Equal(usd(56000)) {
		t.Errorf("Cash = %v, want %v", bs.Cash, usd(56000))
	}
	// AR: 8000 outstanding invoice + 2500 recorded receivable.
	if !bs.Receivables.Equal(usd(10500)) {
		t.Errorf("Receivables = %v, want %v", bs.Receivables, usd(10500))
	}
	if !bs.Payables.Equal(usd(3200)) {
		t.Errorf("Payables = %v, want %v", bs.Payables, usd(3200))
	}
	// Equity balances assets less liabilities: 56000 + 10500 - 3200.
	if !bs.Equity.Equal(usd(63300)) {
		t.Errorf("Equity = %v, want %v", bs.Equity, usd(63300))
	}
}

func TestNewCashFlowStatement(t *testing.T) {
	invoices, budgets, expenses, _, _, _ := setupBooks(t)
	cf := NewCashFlowStatement(NewProfitAndLoss(invoices, budgets, expenses))

	if !cf.Operations.Equal(usd(23000)) {
		t.Errorf("Operations = %v, want %v", cf.Operations, usd(23000))
	}
	if !cf.Investing.IsZero() || !cf.Financing.IsZero() {
		t.Errorf("Investing/Financing = %v/%v, want zero", cf.Investing, cf.Financing)
	}
	if !cf.NetChange.Equal(cf.Operations) {
		t.Errorf("NetChange = %v, want equal to operations", cf.NetChange)
	}
}

func TestEstimateTax(t *testing.T) {
	testCases := []struct {
		name string
		net  Money
		want Money
	}{
		{"positive net", usd(100000), usd(21000)},
		{"negative net floors at zero", usd(-50000), usd(0)},
		{"zero net", usd(0), usd(0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EstimateTax(tc.net, DefaultTaxRate); !got.Equal(tc.want) {
				t.Errorf("EstimateTax(%v) = %v, want %v", tc.net, got, tc.want)
			}
		})
	}

	// A custom rate applies as-is.
	rate := decimal.NewFromFloat(0.19)
	if got := EstimateTax(usd(100000), rate); !got.Equal(usd(19000)) {
		t.Errorf("EstimateTax() at 19%% = %v, want %v", got, usd(19000))
	}
}
