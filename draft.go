package finsuite

import (
	"fmt"
	"strings"
)

// DraftFilename is the conventional name used when exporting a draft.
const DraftFilename = "mdna-draft.txt"

// BuildDraft composes a management discussion and analysis draft from a KPI
// report. The rendering is deterministic: the same report and hasRows flag
// always produce byte-identical text. Without statement rows there is nothing
// to discuss and the draft is empty.
//
// Driver clauses trigger on the raw metric values; a NaN comparison is always
// false, so an uncomputable metric never produces commentary.
func BuildDraft(k *KPIReport, hasRows bool) string {
	if !hasRows {
		return ""
	}

	latest := k.Meta.LatestPeriod
	if latest == "" {
		latest = "Latest"
	}
	prior := k.Meta.PrevPeriod
	if prior == "" {
		prior = "Prior"
	}

	growth := k.Values[MetricRevenueGrowth]
	direction := "was flat"
	switch {
	case growth > 0:
		direction = "increased"
	case growth < 0:
		direction = "decreased"
	}

	var paragraphs []string
	paragraphs = append(paragraphs, fmt.Sprintf(
		"Overview: For %s, the company reported revenue of %s. Revenue %s %s compared to %s.",
		latest, FormatCurrency(k.Values[MetricRevenue]), direction, FormatRatio(growth), prior))

	paragraphs = append(paragraphs, fmt.Sprintf(
		"Profitability: Gross margin was %s, reflecting COGS of %s and gross profit of %s. "+
			"Operating margin was %s, with operating expenses at %s of revenue. "+
			"Net margin was %s with net income of %s.",
		FormatRatio(k.Values[MetricGrossMargin]),
		FormatCurrency(k.Values[MetricCOGS]),
		FormatCurrency(k.Values[MetricGrossProfit]),
		FormatRatio(k.Values[MetricOperatingMargin]),
		FormatRatio(k.Values[MetricOpexRatio]),
		FormatRatio(k.Values[MetricNetMargin]),
		FormatCurrency(k.Values[MetricNetIncome])))

	var drivers []string
	if k.Values[MetricRevenueGrowth] > 0.05 {
		drivers = append(drivers, "volume growth in core offerings")
	}
	if k.Values[MetricOpexRatio] > 0.35 {
		drivers = append(drivers, "higher operating expenses, including investments in growth and G&A")
	}
	if k.Values[MetricGrossMargin] < 0.4 {
		drivers = append(drivers, "pressure on unit economics and input costs")
	}
	if len(drivers) > 0 {
		paragraphs = append(paragraphs,
			"Drivers: The period was influenced by "+strings.Join(drivers, " and ")+".")
	}

	paragraphs = append(paragraphs,
		"Outlook: Management will focus on disciplined execution, improving unit economics, "+
			"and efficient allocation of operating expenses while maintaining growth initiatives.")

	lines := append([]string{
		"# Management Discussion and Analysis",
		"Period: " + latest,
		"",
	}, paragraphs...)
	return strings.Join(lines, "\n")
}
