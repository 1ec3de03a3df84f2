package finsuite

import "strings"

// Role identifies the semantic meaning of a statement column.
type Role int

const (
	RoleRevenue Role = iota
	RoleCOGS
	RoleOpex
	RoleNetIncome
	RolePeriod
)

func (r Role) String() string {
	switch r {
	case RoleRevenue:
		return "revenue"
	case RoleCOGS:
		return "cogs"
	case RoleOpex:
		return "opex"
	case RoleNetIncome:
		return "netIncome"
	case RolePeriod:
		return "period"
	default:
		return "unknown"
	}
}

// roleAliases lists the accepted header spellings per role. Matching is an
// exact case-insensitive comparison on trimmed names, and the first alias
// with a matching column wins, so alias order breaks ties, not column order.
// Kept as one named table rather than scattered literals so tests can pin it.
var roleAliases = []struct {
	role    Role
	aliases []string
}{
	{RoleRevenue, []string{"revenue", "sales", "total revenue"}},
	{RoleCOGS, []string{"cogs", "cost of goods sold", "cost of sales"}},
	{RoleOpex, []string{"operatingexpenses", "operating expenses", "opex"}},
	{RoleNetIncome, []string{"netincome", "net income", "profit", "earnings"}},
	{RolePeriod, []string{"period", "date", "quarter", "month", "year"}},
}

// RoleMap maps each role to the actual column name it resolved to. A role
// with no matching column is simply absent; lookups then return "" and every
// downstream computation degrades to an absent value instead of erroring.
type RoleMap map[Role]string

// ResolveRoles maps semantic roles to the table's actual column names.
// The case-insensitive index is built once from the ordered column list, so a
// later duplicate column overwrites an earlier one, consistent with how
// duplicate headers behave in a Record.
func ResolveRoles(columns []string) RoleMap {
	index := make(map[string]string, len(columns))
	for _, c := range columns {
		index[strings.ToLower(strings.TrimSpace(c))] = c
	}

	m := make(RoleMap, len(roleAliases))
	for _, ra := range roleAliases {
		for _, alias := range ra.aliases {
			if col, ok := index[alias]; ok {
				m[ra.role] = col
				break
			}
		}
	}
	return m
}
