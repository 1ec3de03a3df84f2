package finsuite

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
)

// periodLayouts are the layouts tried, in order, when interpreting a period
// cell as a point in time.
var periodLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"2006-01",
	"Jan 2006",
	"January 2006",
	"Jan 2, 2006",
	"2006",
}

// quarterPattern matches "2024-Q1", "2024 Q1", "2024Q1" and "Q1 2024".
var quarterPattern = regexp.MustCompile(`^(?:(\d{4})[-\s]?Q([1-4])|Q([1-4])[-\s]?(\d{4}))$`)

// ParsePeriod interprets a period cell as an instant usable as a sort key.
// Quarter labels resolve to the first day of the quarter. It reports false
// for anything it cannot interpret; callers fall back to positional order.
func ParsePeriod(cell string) (time.Time, bool) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return time.Time{}, false
	}

	if m := quarterPattern.FindStringSubmatch(strings.ToUpper(s)); m != nil {
		year, quarter := m[1], m[2]
		if year == "" {
			year, quarter = m[4], m[3]
		}
		y, _ := strconv.Atoi(year)
		q, _ := strconv.Atoi(quarter)
		month := time.Month(3*(q-1) + 1)
		return time.Date(y, month, 1, 0, 0, 0, 0, time.UTC), true
	}

	for _, layout := range periodLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortByPeriod returns the table with rows ordered chronologically by the
// given period column. A cell that does not parse keeps its original position
// as the sort key, so malformed periods never move relative to their
// neighbors. The sort is stable; ties keep input order. An empty periodColumn
// returns the receiver unchanged.
func (t *Table) SortByPeriod(periodColumn string) *Table {
	if periodColumn == "" {
		return t
	}

	type keyed struct {
		row Record
		key int64
	}
	rows := make([]keyed, len(t.Rows))
	for i, r := range t.Rows {
		k := int64(i)
		if ts, ok := ParsePeriod(r[periodColumn]); ok {
			k = ts.UnixMilli()
		}
		rows[i] = keyed{row: r, key: k}
	}
	slices.SortStableFunc(rows, func(a, b keyed) int { return cmp.Compare(a.key, b.key) })

	sorted := &Table{Columns: t.Columns, Rows: make([]Record, len(rows))}
	for i, k := range rows {
		sorted.Rows[i] = k.row
	}
	return sorted
}
