package finsuite

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Asset is a fixed asset depreciated straight-line over its useful life.
type Asset struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Cost      Money  `json:"cost"`
	LifeYears int    `json:"lifeYears"`
	Start     string `json:"start,omitempty"`
}

// YearlyDepreciation returns cost divided by useful life. A missing or zero
// life counts as one year, matching the dashboard's permissive input handling.
func (a Asset) YearlyDepreciation() Money {
	life := a.LifeYears
	if life <= 0 {
		life = 1
	}
	return Money{
		value: a.Cost.Amount().Div(decimal.NewFromInt(int64(life))),
		cur:   a.Cost.Currency(),
	}
}

// AssetBook tracks fixed assets in entry order.
type AssetBook struct {
	entries []Asset
}

func NewAssetBook() *AssetBook { return &AssetBook{} }

// Add records a new asset and returns its generated id. Name is mandatory.
func (b *AssetBook) Add(a Asset) (string, error) {
	if a.Name == "" {
		return "", fmt.Errorf("asset needs a name")
	}
	a.ID = NewID()
	b.entries = append(b.entries, a)
	return a.ID, nil
}

// Remove deletes the asset with the given id.
func (b *AssetBook) Remove(id string) error {
	for i := range b.entries {
		if b.entries[i].ID == id {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown asset %q", id)
}

// Entries returns the assets in entry order.
func (b *AssetBook) Entries() []Asset {
	out := make([]Asset, len(b.entries))
	copy(out, b.entries)
	return out
}

// TotalDepreciation sums the yearly depreciation across all assets.
func (b *AssetBook) TotalDepreciation() Money {
	var total Money
	for _, a := range b.entries {
		total = total.Add(a.YearlyDepreciation())
	}
	return total
}
