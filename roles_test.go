package finsuite

import "testing"

func TestResolveRoles(t *testing.T) {
	testCases := []struct {
		name    string
		columns []string
		want    map[Role]string
	}{
		{
			name:    "canonical names",
			columns: []string{"Period", "Revenue", "COGS", "OperatingExpenses", "NetIncome"},
			want: map[Role]string{
				RolePeriod:    "Period",
				RoleRevenue:   "Revenue",
				RoleCOGS:      "COGS",
				RoleOpex:      "OperatingExpenses",
				RoleNetIncome: "NetIncome",
			},
		},
		{
			name:    "aliases and mixed case",
			columns: []string{"Quarter", "Sales", "Cost of Goods Sold", "opex", "PROFIT"},
			want: map[Role]string{
				RolePeriod:    "Quarter",
				RoleRevenue:   "Sales",
				RoleCOGS:      "Cost of Goods Sold",
				RoleOpex:      "opex",
				RoleNetIncome: "PROFIT",
			},
		},
		{
			name:    "alias order wins over column order",
			columns: []string{"Sales", "Revenue"},
			// "revenue" is the first alias, so it beats "sales" even though
			// Sales appears first in the table.
			want: map[Role]string{RoleRevenue: "Revenue"},
		},
		{
			name:    "trimmed header names",
			columns: []string{"  revenue  ", " date "},
			want: map[Role]string{
				RoleRevenue: "  revenue  ",
				RolePeriod:  " date ",
			},
		},
		{
			name:    "unknown columns resolve nothing",
			columns: []string{"foo", "bar"},
			want:    map[Role]string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ResolveRoles(tc.columns)
			if len(got) != len(tc.want) {
				t.Fatalf("ResolveRoles() = %v, want %v", got, tc.want)
			}
			for role, col := range tc.want {
				if got[role] != col {
					t.Errorf("role %v = %q, want %q", role, got[role], col)
				}
			}
		})
	}
}
