package database

import "testing"

func TestSqliteDSNCasePragma(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"mobil_market.db", "mobil_market.db?_case_sensitive_like=1"},
		{"file:shop.db?cache=shared", "file:shop.db?cache=shared&_case_sensitive_like=1"},
		{"shop.db?_case_sensitive_like=0", "shop.db?_case_sensitive_like=0"},
	}

	for _, c := range cases {
		if got := sqliteDSN(c.in); got != c.want {
			t.Errorf("sqliteDSN(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
