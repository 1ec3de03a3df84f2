package finsuite

import "github.com/shopspring/decimal"

// DefaultTaxRate is the flat corporate rate applied when none is configured.
var DefaultTaxRate = decimal.NewFromFloat(0.21)

// EstimateTax returns a flat-rate estimate on net income, floored at zero:
// a loss yields no tax, not a refund.
func EstimateTax(net Money, rate decimal.Decimal) Money {
	tax := Money{value: net.Amount().Mul(rate), cur: net.Currency()}
	if tax.IsNegative() {
		return M(0, net.Currency())
	}
	return tax
}

// Compliance is the checklist of recurring filing obligations.
type Compliance struct {
	Filings  bool `json:"filings"`
	Payroll  bool `json:"payroll"`
	SalesTax bool `json:"salesTax"`
	CorpTax  bool `json:"corpTax"`
}
