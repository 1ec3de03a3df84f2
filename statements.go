package finsuite

// Derived statements aggregate the bookkeeping books into the classic
// trio. The formulas are deliberately simplified: revenue is recognized on
// paid invoices only, budgeted COGS stands in for actual cost of goods, and
// every non-rejected expense counts as an operating expense.

// ProfitAndLoss is a single-period income statement derived from the books.
type ProfitAndLoss struct {
	Revenue         Money
	COGS            Money
	Opex            Money
	GrossProfit     Money
	OperatingIncome Money
	NetIncome       Money
}

// NewProfitAndLoss derives the income statement from invoices, budgets and
// expenses.
func NewProfitAndLoss(invoices *InvoiceBook, budgets *BudgetBook, expenses *ExpenseBook) ProfitAndLoss {
	revenue := invoices.Revenue()
	cogs := budgets.TotalCOGS()
	opex := expenses.Total()
	gross := revenue.Sub(cogs)
	operating := gross.Sub(opex)
	return ProfitAndLoss{
		Revenue:         revenue,
		COGS:            cogs,
		Opex:            opex,
		GrossProfit:     gross,
		OperatingIncome: operating,
		NetIncome:       operating,
	}
}

// BalanceSheet is a snapshot of cash, receivables, payables and the equity
// that balances them.
type BalanceSheet struct {
	Cash        Money
	Receivables Money
	Payables    Money
	Equity      Money
}

// NewBalanceSheet derives the balance sheet from the cash book, invoices and
// the AR/AP books.
func NewBalanceSheet(cash *CashBook, invoices *InvoiceBook, receivables *ReceivableBook, payables *PayableBook) BalanceSheet {
	cashPos := cash.Balance().Add(invoices.Revenue())
	ar := invoices.Outstanding().Add(receivables.Total())
	ap := payables.Total()
	return BalanceSheet{
		Cash:        cashPos,
		Receivables: ar,
		Payables:    ap,
		Equity:      cashPos.Add(ar).Sub(ap),
	}
}

// CashFlowStatement splits the period's cash change by activity. Investing
// and financing stay zero until those books exist.
type CashFlowStatement struct {
	Operations Money
	Investing  Money
	Financing  Money
	NetChange  Money
}

// NewCashFlowStatement derives the cash flow statement from the income
// statement.
func NewCashFlowStatement(pnl ProfitAndLoss) CashFlowStatement {
	return CashFlowStatement{
		Operations: pnl.NetIncome,
		NetChange:  pnl.NetIncome,
	}
}
