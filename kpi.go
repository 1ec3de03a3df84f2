package finsuite

import "math"

// Metric names exposed in a KPI report. Currency metrics are absolute
// amounts; the rest are ratios of the latest period's revenue (or growth
// against the previous period).
const (
	MetricRevenue         = "revenue"
	MetricNetIncome       = "netIncome"
	MetricCOGS            = "cogs"
	MetricOpex            = "opex"
	MetricGrossProfit     = "grossProfit"
	MetricGrossMargin     = "grossMargin"
	MetricOperatingIncome = "operatingIncome"
	MetricOperatingMargin = "operatingMargin"
	MetricNetMargin       = "netMargin"
	MetricRevenueGrowth   = "revenueGrowth"
	MetricCOGSRatio       = "cogsRatio"
	MetricOpexRatio       = "opexRatio"
)

// KPIMeta labels the two periods a report compares. Labels are the raw period
// cells; they are empty when the table has no recognizable period column.
type KPIMeta struct {
	LatestPeriod string `json:"latestPeriod"`
	PrevPeriod   string `json:"prevPeriod"`
}

// KPIReport is a pure function of a statement table: the raw metric values
// (NaN marks anything that could not be computed), their display rendering,
// and the period labels. Recomputing on the same table yields an identical
// report.
type KPIReport struct {
	Values    map[string]float64 `json:"values"`
	Formatted map[string]string  `json:"formatted"`
	Meta      KPIMeta            `json:"meta"`
}

// ComputeKPIs derives the standard metric set from the two most recent
// periods of the table. An empty table yields a report with empty maps and
// empty period labels; it is a defined state, not an error.
func ComputeKPIs(t *Table) *KPIReport {
	report := &KPIReport{
		Values:    map[string]float64{},
		Formatted: map[string]string{},
	}
	if t == nil || len(t.Rows) == 0 {
		return report
	}

	// All records share the header's key set, so resolving once per table is
	// representative.
	roles := ResolveRoles(t.Columns)
	sorted := t.SortByPeriod(roles[RolePeriod])

	latest := sorted.Rows[len(sorted.Rows)-1]
	prev := Record{}
	if len(sorted.Rows) >= 2 {
		prev = sorted.Rows[len(sorted.Rows)-2]
	}

	cell := func(rec Record, role Role) float64 {
		col, ok := roles[role]
		if !ok {
			return math.NaN()
		}
		return ParseAmount(rec[col])
	}

	revenue := cell(latest, RoleRevenue)
	prevRevenue := cell(prev, RoleRevenue)
	cogs := cell(latest, RoleCOGS)
	opex := cell(latest, RoleOpex)
	netIncome := cell(latest, RoleNetIncome)

	nan := math.NaN()

	grossProfit := nan
	if isFinite(revenue) && isFinite(cogs) {
		grossProfit = revenue - cogs
	}
	grossMargin := nan
	if isFinite(revenue) && revenue != 0 {
		grossMargin = grossProfit / revenue
	}
	operatingIncome := nan
	if isFinite(revenue) && isFinite(cogs) && isFinite(opex) {
		operatingIncome = revenue - cogs - opex
	}
	operatingMargin := nan
	if isFinite(revenue) && revenue != 0 {
		operatingMargin = operatingIncome / revenue
	}
	netMargin := nan
	if isFinite(revenue) && revenue != 0 && isFinite(netIncome) {
		netMargin = netIncome / revenue
	}
	revenueGrowth := nan
	if isFinite(revenue) && isFinite(prevRevenue) && prevRevenue != 0 {
		revenueGrowth = (revenue - prevRevenue) / prevRevenue
	}
	cogsRatio := nan
	if isFinite(revenue) && revenue != 0 && isFinite(cogs) {
		cogsRatio = cogs / revenue
	}
	opexRatio := nan
	if isFinite(revenue) && revenue != 0 && isFinite(opex) {
		opexRatio = opex / revenue
	}

	report.Values = map[string]float64{
		MetricRevenue:         revenue,
		MetricNetIncome:       netIncome,
		MetricCOGS:            cogs,
		MetricOpex:            opex,
		MetricGrossProfit:     grossProfit,
		MetricGrossMargin:     grossMargin,
		MetricOperatingIncome: operatingIncome,
		MetricOperatingMargin: operatingMargin,
		MetricNetMargin:       netMargin,
		MetricRevenueGrowth:   revenueGrowth,
		MetricCOGSRatio:       cogsRatio,
		MetricOpexRatio:       opexRatio,
	}
	report.Formatted = map[string]string{
		MetricRevenue:         FormatCurrency(revenue),
		MetricNetIncome:       FormatCurrency(netIncome),
		MetricCOGS:            FormatCurrency(cogs),
		MetricOpex:            FormatCurrency(opex),
		MetricGrossProfit:     FormatCurrency(grossProfit),
		MetricOperatingIncome: FormatCurrency(operatingIncome),
		MetricGrossMargin:     FormatRatio(grossMargin),
		MetricOperatingMargin: FormatRatio(operatingMargin),
		MetricNetMargin:       FormatRatio(netMargin),
		MetricRevenueGrowth:   FormatRatio(revenueGrowth),
		MetricCOGSRatio:       FormatRatio(cogsRatio),
		MetricOpexRatio:       FormatRatio(opexRatio),
	}

	if col, ok := roles[RolePeriod]; ok {
		report.Meta.LatestPeriod = latest[col]
		report.Meta.PrevPeriod = prev[col]
	}
	return report
}

// HasData reports whether the report was computed from at least one row.
func (k *KPIReport) HasData() bool { return len(k.Values) > 0 }
