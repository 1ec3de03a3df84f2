package renderer

import (
	"bytes"
	"fmt"

	"github.com/finsuite/finsuite"
	md "github.com/nao1215/markdown"
)

// KPIMarkdown renders the metric report as the dashboard card grid, one row
// per indicator.
func KPIMarkdown(k *finsuite.KPIReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Key performance indicators")
	doc.PlainText("Calculated from your latest two periods.")

	if !k.HasData() {
		doc.PlainText("Import a CSV to view KPIs.")
		return doc.String()
	}

	growthNote := fmt.Sprintf("%s → %s", k.Meta.PrevPeriod, k.Meta.LatestPeriod)
	table := md.TableSet{
		Header: []string{"Indicator", "Value", "Note"},
		Rows: [][]string{
			{"Revenue (latest)", k.Formatted[finsuite.MetricRevenue], k.Meta.LatestPeriod},
			{"Revenue growth", k.Formatted[finsuite.MetricRevenueGrowth], growthNote},
			{"Gross margin", k.Formatted[finsuite.MetricGrossMargin], ""},
			{"Operating margin", k.Formatted[finsuite.MetricOperatingMargin], ""},
			{"Net margin", k.Formatted[finsuite.MetricNetMargin], ""},
			{"COGS as % of revenue", k.Formatted[finsuite.MetricCOGSRatio], ""},
			{"Operating expenses %", k.Formatted[finsuite.MetricOpexRatio], ""},
			{"Net income (latest)", k.Formatted[finsuite.MetricNetIncome], k.Meta.LatestPeriod},
		},
	}
	doc.Table(table)

	return doc.String()
}
