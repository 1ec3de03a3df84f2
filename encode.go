package finsuite

import "encoding/json"

// Every book persists as a plain JSON array of its entries, and the table as
// its rows plus a small metadata object for the ordered column list (JSON
// objects cannot preserve key order on their own).

func (b *ExpenseBook) MarshalJSON() ([]byte, error)    { return json.Marshal(b.entries) }
func (b *ExpenseBook) UnmarshalJSON(d []byte) error    { return json.Unmarshal(d, &b.entries) }
func (b *InvoiceBook) MarshalJSON() ([]byte, error)    { return json.Marshal(b.entries) }
func (b *InvoiceBook) UnmarshalJSON(d []byte) error    { return json.Unmarshal(d, &b.entries) }
func (b *BudgetBook) MarshalJSON() ([]byte, error)     { return json.Marshal(b.entries) }
func (b *BudgetBook) UnmarshalJSON(d []byte) error     { return json.Unmarshal(d, &b.entries) }
func (b *CashBook) MarshalJSON() ([]byte, error)       { return json.Marshal(b.entries) }
func (b *CashBook) UnmarshalJSON(d []byte) error       { return json.Unmarshal(d, &b.entries) }
func (b *PayableBook) MarshalJSON() ([]byte, error)    { return json.Marshal(b.entries) }
func (b *PayableBook) UnmarshalJSON(d []byte) error    { return json.Unmarshal(d, &b.entries) }
func (b *ReceivableBook) MarshalJSON() ([]byte, error) { return json.Marshal(b.entries) }
func (b *ReceivableBook) UnmarshalJSON(d []byte) error { return json.Unmarshal(d, &b.entries) }
func (b *GoalBook) MarshalJSON() ([]byte, error)       { return json.Marshal(b.entries) }
func (b *GoalBook) UnmarshalJSON(d []byte) error       { return json.Unmarshal(d, &b.entries) }
func (b *PayrollBook) MarshalJSON() ([]byte, error)    { return json.Marshal(b.entries) }
func (b *PayrollBook) UnmarshalJSON(d []byte) error    { return json.Unmarshal(d, &b.entries) }
func (b *AssetBook) MarshalJSON() ([]byte, error)      { return json.Marshal(b.entries) }
func (b *AssetBook) UnmarshalJSON(d []byte) error      { return json.Unmarshal(d, &b.entries) }

// tableMeta is the persisted column metadata of the statement table.
type tableMeta struct {
	Columns []string `json:"columns"`
}
