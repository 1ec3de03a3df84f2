package finsuite

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		cell string
		want float64
	}{
		{"100", 100},
		{"-42.5", -42.5},
		{"$1,234.56", 1234.56},
		{" 1 200 ", 1200},
		{"1e3", 1000},
		{"", math.NaN()},
		{"   ", math.NaN()},
		{"n/a", math.NaN()},
		{"12a", math.NaN()},
		{"Inf", math.NaN()},
	}

	for _, tc := range testCases {
		got := ParseAmount(tc.cell)
		if math.IsNaN(tc.want) {
			if !math.IsNaN(got) {
				t.Errorf("ParseAmount(%q) = %v, want NaN", tc.cell, got)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.cell, got, tc.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	testCases := []struct {
		v    float64
		want string
	}{
		{120000, "$120,000"},
		{1234.56, "$1,235"},
		{-500, "-$500"},
		{0, "$0"},
		{math.NaN(), Dash},
		{math.Inf(1), Dash},
	}

	for _, tc := range testCases {
		if got := FormatCurrency(tc.v); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	testCases := []struct {
		v    float64
		want string
	}{
		{0.2, "20.0%"},
		{0.625, "62.5%"},
		{-0.05, "-5.0%"},
		{0, "0.0%"},
		{math.NaN(), Dash},
	}

	for _, tc := range testCases {
		if got := FormatRatio(tc.v); got != tc.want {
			t.Errorf("FormatRatio(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}
