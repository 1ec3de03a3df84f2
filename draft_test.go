package finsuite

import (
	"strings"
	"testing"
)

func TestBuildDraft(t *testing.T) {
	k := ComputeKPIs(setupStatements(t))
	draft := BuildDraft(k, true)

	wantSubstrings := []string{
		"# Management Discussion and Analysis",
		"Period: 2024-Q2",
		"the company reported revenue of $120,000",
		"increased 20.0% compared to 2024-Q1",
		"Gross margin was 62.5%",
		"COGS of $45,000 and gross profit of $75,000",
		"Net margin was 20.8% with net income of $25,000",
		// growth 20% > 5% triggers the volume driver; opex 25% and gross
		// margin 62.5% stay quiet.
		"volume growth in core offerings",
		"Outlook: Management will focus on disciplined execution",
	}
	for _, s := range wantSubstrings {
		if !strings.Contains(draft, s) {
			t.Errorf("draft missing %q\n---\n%s", s, draft)
		}
	}
	for _, s := range []string{
		"higher operating expenses, including investments in growth and G&A",
		"pressure on unit economics and input costs",
	} {
		if strings.Contains(draft, s) {
			t.Errorf("draft unexpectedly contains %q", s)
		}
	}
}

func TestBuildDraftDeterministic(t *testing.T) {
	k := ComputeKPIs(setupStatements(t))
	if a, b := BuildDraft(k, true), BuildDraft(k, true); a != b {
		t.Error("BuildDraft is not deterministic for the same report")
	}
}

func TestBuildDraftNoRows(t *testing.T) {
	if got := BuildDraft(ComputeKPIs(&Table{}), false); got != "" {
		t.Errorf("BuildDraft() = %q, want empty without rows", got)
	}
}

func TestBuildDraftDirections(t *testing.T) {
	parse := func(t *testing.T, csv string) *KPIReport {
		t.Helper()
		table, err := ParseTable(csv)
		if err != nil {
			t.Fatalf("ParseTable() failed: %v", err)
		}
		return ComputeKPIs(table)
	}

	t.Run("decreased", func(t *testing.T) {
		k := parse(t, "Period,Revenue\n2024-Q1,100000\n2024-Q2,90000\n")
		draft := BuildDraft(k, true)
		if !strings.Contains(draft, "decreased -10.0% compared to 2024-Q1") {
			t.Errorf("draft missing decrease wording:\n%s", draft)
		}
	})

	t.Run("flat", func(t *testing.T) {
		k := parse(t, "Period,Revenue\n2024-Q1,100000\n2024-Q2,100000\n")
		draft := BuildDraft(k, true)
		if !strings.Contains(draft, "was flat 0.0% compared to 2024-Q1") {
			t.Errorf("draft missing flat wording:\n%s", draft)
		}
	})

	t.Run("unknown growth is flat with a dash", func(t *testing.T) {
		k := parse(t, "Period,Revenue\n2024-Q1,\n2024-Q2,120000\n")
		draft := BuildDraft(k, true)
		if !strings.Contains(draft, "was flat — compared to 2024-Q1") {
			t.Errorf("draft missing dashed growth:\n%s", draft)
		}
	})

	t.Run("missing period labels fall back", func(t *testing.T) {
		k := parse(t, "Revenue\n100000\n120000\n")
		draft := BuildDraft(k, true)
		if !strings.Contains(draft, "Period: Latest") {
			t.Errorf("draft missing Latest fallback:\n%s", draft)
		}
		if !strings.Contains(draft, "compared to Prior") {
			t.Errorf("draft missing Prior fallback:\n%s", draft)
		}
	})

	t.Run("all drivers", func(t *testing.T) {
		// growth 50%, gross margin 30%, opex ratio 40%.
		k := parse(t, "Period,Revenue,COGS,OperatingExpenses\n2024-Q1,100000,70000,40000\n2024-Q2,150000,105000,60000\n")
		draft := BuildDraft(k, true)
		want := "Drivers: The period was influenced by volume growth in core offerings" +
			" and higher operating expenses, including investments in growth and G&A" +
			" and pressure on unit economics and input costs."
		if !strings.Contains(draft, want) {
			t.Errorf("draft missing combined drivers:\n%s", draft)
		}
	})
}
