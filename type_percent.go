package finsuite

import "fmt"

// Percent is a ratio rendered as a percentage, e.g. a budget variance.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

// String renders the ratio with one decimal, the dashboard convention.
func (p Percent) String() string {
	return fmt.Sprintf("%.1f%%", float64(p)*100)
}

// SignedString renders the ratio with an explicit sign; zero is "-".
func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.1f%%", float64(p)*100)
	if res == "+0.0%" {
		return "-"
	}
	return res
}
