package leave

import "strings"

// Canonical leave type labels. The privilege-leave bucket travels under
// several historical names in stored rows; ResolveType folds them together.
const (
	TypePrivilegeLeave = "Privilege Leave"
	TypeUnpaidLeave    = "Unpaid Leave"
	TypeSickLeave      = "Sick Leave"
	TypeCasualLeave    = "Casual Leave"
)

var privilegeAliases = map[string]struct{}{
	"paid leave":      {},
	"pl":              {},
	"privilege leave": {},
}

// IsPrivilegeType reports whether the given label is an alias of the
// privilege/paid-leave type (case-insensitive).
func IsPrivilegeType(label string) bool {
	_, ok := privilegeAliases[strings.ToLower(strings.TrimSpace(label))]
	return ok
}

// ResolveType maps a stored leave-type label to its canonical name. Unknown
// labels pass through unchanged.
func ResolveType(label string) string {
	if IsPrivilegeType(label) {
		return TypePrivilegeLeave
	}
	return strings.TrimSpace(label)
}
