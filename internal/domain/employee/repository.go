package employee

import (
	"context"
	"time"
)

// EmployeeRepository defines data access for employee master records.
// Employee identity and profile rows are owned by the user/identity
// subsystem; this interface is the read boundary into them.
type EmployeeRepository interface {
	// ListActive returns every active employee, ordered by full name.
	ListActive(ctx context.Context) ([]Employee, error)

	// GetByID retrieves one employee.
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetJoinDate resolves the employee's join date, preferring the profile
	// row and falling back to the text column on the employee row. The
	// fallback value is accepted only when it is a strict YYYY-MM-DD date.
	// Returns nil when no source yields a usable date.
	GetJoinDate(ctx context.Context, userID string) (*time.Time, error)
}
