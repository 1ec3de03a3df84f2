package finsuite

import "fmt"

// Budget is a planned revenue/COGS/opex figure for one period.
type Budget struct {
	ID      string `json:"id"`
	Period  string `json:"period"`
	Revenue Money  `json:"revenue"`
	COGS    Money  `json:"cogs"`
	Opex    Money  `json:"opex"`
}

// Net returns the budgeted net income (revenue less COGS less opex).
func (b Budget) Net() Money { return b.Revenue.Sub(b.COGS).Sub(b.Opex) }

// BudgetBook is an identity-keyed collection of budgets in entry order.
type BudgetBook struct {
	entries []Budget
}

func NewBudgetBook() *BudgetBook { return &BudgetBook{} }

// Add records a new budget and returns its generated id. Period is mandatory.
func (b *BudgetBook) Add(budget Budget) (string, error) {
	if budget.Period == "" {
		return "", fmt.Errorf("budget needs a period")
	}
	budget.ID = NewID()
	b.entries = append(b.entries, budget)
	return budget.ID, nil
}

// Remove deletes the budget with the given id.
func (b *BudgetBook) Remove(id string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown budget %q", id)
}

// Entries returns the budgets in entry order.
func (b *BudgetBook) Entries() []Budget {
	out := make([]Budget, len(b.entries))
	copy(out, b.entries)
	return out
}

func (b *BudgetBook) Len() int { return len(b.entries) }

// TotalCOGS sums the budgeted cost of goods across all periods.
func (b *BudgetBook) TotalCOGS() Money {
	var total Money
	for _, budget := range b.entries {
		total = total.Add(budget.COGS)
	}
	return total
}

// Variance returns (actual-budget)/budget, or zero when the budget is zero.
func Variance(actual, budget Money) Percent {
	if budget.IsZero() {
		return 0
	}
	return Percent(actual.Sub(budget).Amount().Div(budget.Amount()).InexactFloat64())
}

// BudgetVariance is one row of the variance table: a budgeted period and the
// deviation of the actual net income from its budgeted net.
type BudgetVariance struct {
	Budget   Budget
	Variance Percent
}

// VarianceAgainst compares a single actual net income figure against every
// budgeted period. The one-vs-all comparison mirrors the dashboard's
// simplified single-period view; matching budget periods to corresponding
// actual periods would need product guidance first.
func (b *BudgetBook) VarianceAgainst(actualNet Money) []BudgetVariance {
	out := make([]BudgetVariance, 0, len(b.entries))
	for _, budget := range b.entries {
		out = append(out, BudgetVariance{
			Budget:   budget,
			Variance: Variance(actualNet, budget.Net()),
		})
	}
	return out
}
