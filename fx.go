package finsuite

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// FXTable holds exchange rates quoted against the US dollar: one unit of USD
// buys Rate(c) units of currency c. Conversions between two non-dollar
// currencies cross through USD.
type FXTable struct {
	rates map[string]float64
}

// NewFXTable returns a table seeded with the built-in quotes, usable offline.
func NewFXTable() *FXTable {
	return &FXTable{rates: map[string]float64{
		"USD": 1,
		"EUR": 0.92,
		"GBP": 0.79,
		"JPY": 155,
	}}
}

// Currencies lists the known currency codes in lexical order.
func (f *FXTable) Currencies() []string {
	codes := make([]string, 0, len(f.rates))
	for c := range f.rates {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Rate returns how many units of cur one USD buys, or 1 for an unknown code.
func (f *FXTable) Rate(cur string) float64 {
	if r, ok := f.rates[cur]; ok && r > 0 {
		return r
	}
	return 1
}

// Convert re-quotes m in currency to, crossing through USD.
func (f *FXTable) Convert(m Money, to string) Money {
	factor := decimal.NewFromFloat(f.Rate(to) / f.Rate(m.cur))
	return Money{value: m.value.Mul(factor), cur: to}
}

// frankfurter serves daily ECB reference rates as plain JSON.
const frankfurterLatest = "https://api.frankfurter.app/latest?from=USD"

// Refresh replaces the built-in quotes with today's reference rates. On any
// error the current table is left untouched.
func (f *FXTable) Refresh(client *http.Client) error {
	if client == nil {
		client = daily()
	}
	var jobj any
	if err := jwget(client, frankfurterLatest, &jobj); err != nil {
		return fmt.Errorf("error fetching rates: %w", err)
	}
	jval, err := jsonpath.Get("$.rates", jobj)
	if err != nil {
		return fmt.Errorf("error parsing rates: %w", err)
	}
	jrates, ok := jval.(map[string]any)
	if !ok {
		return fmt.Errorf("error parsing rates: not an object: %v", jval)
	}
	rates := map[string]float64{"USD": 1}
	for cur, jrate := range jrates {
		rate, ok := jrate.(float64)
		if !ok || rate <= 0 {
			continue
		}
		rates[cur] = rate
	}
	f.rates = rates
	return nil
}
