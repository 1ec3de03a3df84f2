package renderer

import "github.com/finsuite/finsuite"

// RenderExpenses renders the expense book to a markdown string.
func RenderExpenses(b *finsuite.ExpenseBook) string {
	return renderTemplate("expenses", "expenses.md", nil, b)
}

// RenderInvoices renders the invoice book to a markdown string.
func RenderInvoices(b *finsuite.InvoiceBook) string {
	partials := map[string]string{
		"invoice_items": "invoice_items.md",
	}
	return renderTemplate("invoices", "invoices.md", partials, b)
}

// RenderBudgets renders the budget book with the variance of each budget
// against the actual net income from the books.
func RenderBudgets(b *finsuite.BudgetBook, actualNet finsuite.Money) string {
	data := struct {
		Entries []finsuite.BudgetVariance
		Actual  finsuite.Money
	}{b.VarianceAgainst(actualNet), actualNet}
	return renderTemplate("budgets", "budgets.md", nil, data)
}

// RenderCash renders the cash projections with the running balance verdict.
func RenderCash(b *finsuite.CashBook) string {
	return renderTemplate("cash", "cash.md", nil, b)
}

// RenderAPAR renders payables and receivables side by side.
func RenderAPAR(ap *finsuite.PayableBook, ar *finsuite.ReceivableBook) string {
	data := struct {
		Payables    *finsuite.PayableBook
		Receivables *finsuite.ReceivableBook
	}{ap, ar}
	return renderTemplate("apar", "apar.md", nil, data)
}

// RenderGoals renders the goal book with progress bars.
func RenderGoals(b *finsuite.GoalBook) string {
	return renderTemplate("goals", "goals.md", nil, b)
}

// RenderPayroll renders the payroll book.
func RenderPayroll(b *finsuite.PayrollBook) string {
	return renderTemplate("payroll", "payroll.md", nil, b)
}

// RenderAssets renders the asset register with yearly depreciation.
func RenderAssets(b *finsuite.AssetBook) string {
	return renderTemplate("assets", "assets.md", nil, b)
}
