package leave

import "testing"

func TestIsPrivilegeType(t *testing.T) {
	aliases := []string{"paid leave", "Paid Leave", "PL", "pl", "Privilege Leave", " privilege leave "}
	for _, label := range aliases {
		if !IsPrivilegeType(label) {
			t.Errorf("IsPrivilegeType(%q) = false, want true", label)
		}
	}

	others := []string{"Sick Leave", "Unpaid Leave", "", "paidleave"}
	for _, label := range others {
		if IsPrivilegeType(label) {
			t.Errorf("IsPrivilegeType(%q) = true, want false", label)
		}
	}
}

func TestResolveType(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"pl", TypePrivilegeLeave},
		{"Paid Leave", TypePrivilegeLeave},
		{"privilege leave", TypePrivilegeLeave},
		{"Unpaid Leave", TypeUnpaidLeave},
		{" Sick Leave ", TypeSickLeave},
		{"Custom Leave", "Custom Leave"},
	}
	for _, c := range cases {
		if got := ResolveType(c.input); got != c.want {
			t.Errorf("ResolveType(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}
