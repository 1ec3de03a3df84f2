package renderer

import (
	"bytes"

	"github.com/finsuite/finsuite"
	md "github.com/nao1215/markdown"
)

// StatementsMarkdown renders the three derived statements as one report.
func StatementsMarkdown(pnl finsuite.ProfitAndLoss, bs finsuite.BalanceSheet, cf finsuite.CashFlowStatement) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Reports")

	doc.H2("Profit & Loss")
	doc.Table(md.TableSet{
		Header: []string{"Line", "Amount"},
		Rows: [][]string{
			{"Revenue", pnl.Revenue.String()},
			{"COGS", pnl.COGS.String()},
			{"Gross profit", pnl.GrossProfit.String()},
			{"Operating expenses", pnl.Opex.String()},
			{"Operating income", pnl.OperatingIncome.String()},
			{"Net income", pnl.NetIncome.String()},
		},
	})

	doc.H2("Balance Sheet")
	doc.Table(md.TableSet{
		Header: []string{"Line", "Amount"},
		Rows: [][]string{
			{"Cash", bs.Cash.String()},
			{"Accounts receivable", bs.Receivables.String()},
			{"Accounts payable", bs.Payables.String()},
			{"Equity", bs.Equity.String()},
		},
	})

	doc.H2("Cash Flow")
	doc.Table(md.TableSet{
		Header: []string{"Activity", "Amount"},
		Rows: [][]string{
			{"Operations", cf.Operations.String()},
			{"Investing", cf.Investing.String()},
			{"Financing", cf.Financing.String()},
			{"Net change", cf.NetChange.String()},
		},
	})

	return doc.String()
}

// TaxMarkdown renders the tax estimate and the compliance checklist.
func TaxMarkdown(net, estimated finsuite.Money, c finsuite.Compliance) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Tax & Compliance")
	doc.PlainText("Net income: " + net.String())
	doc.PlainText("Estimated tax: " + estimated.String())

	doc.H2("Compliance checklist")
	doc.CheckBox([]md.CheckBoxSet{
		{Checked: c.Filings, Text: "Annual filings up to date"},
		{Checked: c.Payroll, Text: "Payroll taxes withheld and deposited"},
		{Checked: c.SalesTax, Text: "Sales tax collected and remitted"},
		{Checked: c.CorpTax, Text: "Corporate estimated payments scheduled"},
	})

	return doc.String()
}
