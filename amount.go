package finsuite

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
)

// Dash is the display placeholder for a value that could not be computed.
const Dash = "—"

// ParseAmount converts a free-form statement cell into a number. The currency
// symbol "$", comma separators and whitespace are stripped before standard
// decimal parsing. Any non-numeric residue yields NaN, never an error, so a
// partially filled spreadsheet still produces a best-effort report.
func ParseAmount(cell string) float64 {
	s := strings.Map(func(r rune) rune {
		if r == '$' || r == ',' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cell)
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// isFinite reports whether v is a usable number (not NaN, not infinite).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FormatCurrency renders v as a whole-dollar USD amount ("$120,000").
// NaN renders as the dash placeholder.
func FormatCurrency(v float64) string {
	if !isFinite(v) {
		return Dash
	}
	f := *money.GetCurrency(money.USD).Formatter()
	f.Fraction = 0
	return f.Format(int64(math.Round(v)))
}

// FormatRatio renders a ratio as a percentage with one decimal ("20.0%").
// NaN renders as the dash placeholder.
func FormatRatio(v float64) string {
	if !isFinite(v) {
		return Dash
	}
	return fmt.Sprintf("%.1f%%", v*100)
}
