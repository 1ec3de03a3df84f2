package finsuite

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Storage keys, one per persisted concern.
const (
	keyRows       = "csv_rows"
	keyMeta       = "csv_meta"
	keyExpenses   = "expenses"
	keyInvoices   = "invoices"
	keyBudgets    = "budgets"
	keyCash       = "cash"
	keyPayables   = "payables"
	keyReceivable = "receivables"
	keyGoals      = "goals"
	keyPayroll    = "payroll"
	keyAssets     = "assets"
	keyTaxRate    = "tax_rate"
	keyCompliance = "compliance"
	keyCurrency   = "ccy"
)

// Workspace is a company's complete working set: the imported statement
// table and every book, loaded from a Store on open and written back on
// save. Commands open a workspace, mutate it, and save.
type Workspace struct {
	store Store

	Table       *Table
	Expenses    *ExpenseBook
	Invoices    *InvoiceBook
	Budgets     *BudgetBook
	Cash        *CashBook
	Payables    *PayableBook
	Receivables *ReceivableBook
	Goals       *GoalBook
	Payroll     *PayrollBook
	Assets      *AssetBook
	TaxRate     decimal.Decimal
	Compliance  Compliance
	Currency    string
}

// OpenWorkspace loads every persisted concern from store. Keys that have
// never been written start out empty, so a fresh store is a valid empty
// workspace.
func OpenWorkspace(store Store) (*Workspace, error) {
	w := &Workspace{
		store:       store,
		Table:       &Table{},
		Expenses:    &ExpenseBook{},
		Invoices:    &InvoiceBook{},
		Budgets:     &BudgetBook{},
		Cash:        &CashBook{},
		Payables:    &PayableBook{},
		Receivables: &ReceivableBook{},
		Goals:       &GoalBook{},
		Payroll:     &PayrollBook{},
		Assets:      &AssetBook{},
		TaxRate:     DefaultTaxRate,
		Currency:    "USD",
	}
	load := func(key string, v any) error {
		err := store.Get(key, v)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	var meta tableMeta
	for _, step := range []struct {
		key string
		v   any
	}{
		{keyRows, &w.Table.Rows},
		{keyMeta, &meta},
		{keyExpenses, w.Expenses},
		{keyInvoices, w.Invoices},
		{keyBudgets, w.Budgets},
		{keyCash, w.Cash},
		{keyPayables, w.Payables},
		{keyReceivable, w.Receivables},
		{keyGoals, w.Goals},
		{keyPayroll, w.Payroll},
		{keyAssets, w.Assets},
		{keyTaxRate, &w.TaxRate},
		{keyCompliance, &w.Compliance},
		{keyCurrency, &w.Currency},
	} {
		if err := load(step.key, step.v); err != nil {
			return nil, fmt.Errorf("cannot open workspace: %w", err)
		}
	}
	w.Table.Columns = meta.Columns
	return w, nil
}

// Save writes every concern back to the store.
func (w *Workspace) Save() error {
	for _, step := range []struct {
		key string
		v   any
	}{
		{keyRows, w.Table.Rows},
		{keyMeta, tableMeta{Columns: w.Table.Columns}},
		{keyExpenses, w.Expenses},
		{keyInvoices, w.Invoices},
		{keyBudgets, w.Budgets},
		{keyCash, w.Cash},
		{keyPayables, w.Payables},
		{keyReceivable, w.Receivables},
		{keyGoals, w.Goals},
		{keyPayroll, w.Payroll},
		{keyAssets, w.Assets},
		{keyTaxRate, w.TaxRate},
		{keyCompliance, w.Compliance},
		{keyCurrency, w.Currency},
	} {
		if err := w.store.Set(step.key, step.v); err != nil {
			return fmt.Errorf("cannot save workspace: %w", err)
		}
	}
	return nil
}

// ImportStatements parses raw CSV text and replaces the statement table.
// On a parse error the previous table is kept untouched.
func (w *Workspace) ImportStatements(text string) error {
	t, err := ParseTable(text)
	if err != nil {
		return err
	}
	w.Table = t
	return nil
}

// KPIs derives the metric report from the current statement table.
func (w *Workspace) KPIs() *KPIReport {
	return ComputeKPIs(w.Table)
}

// Draft composes the narrative draft from the current statement table.
func (w *Workspace) Draft() string {
	return BuildDraft(w.KPIs(), len(w.Table.Rows) > 0)
}

// ProfitAndLoss builds the simplified income statement from the books.
func (w *Workspace) ProfitAndLoss() ProfitAndLoss {
	return NewProfitAndLoss(w.Invoices, w.Budgets, w.Expenses)
}

// BalanceSheet builds the simplified balance sheet from the books.
func (w *Workspace) BalanceSheet() BalanceSheet {
	return NewBalanceSheet(w.Cash, w.Invoices, w.Receivables, w.Payables)
}

// CashFlow builds the simplified cash flow statement from the books.
func (w *Workspace) CashFlow() CashFlowStatement {
	return NewCashFlowStatement(w.ProfitAndLoss())
}

// EstimatedTax applies the workspace tax rate to net income, floored at zero.
func (w *Workspace) EstimatedTax() Money {
	return EstimateTax(w.ProfitAndLoss().NetIncome, w.TaxRate)
}
