package leave

import (
	"context"
	"time"
)

// LeaveRequestRepository reads and writes leave request rows. The approval
// workflow itself belongs to an external collaborator; this subsystem reads
// approved rows and inserts new pending ones.
type LeaveRequestRepository interface {
	// GetApprovedInRange returns approved requests whose [start_date,
	// end_date] overlaps [start, end].
	GetApprovedInRange(ctx context.Context, start, end time.Time) ([]LeaveRequest, error)

	// Create inserts a new request row.
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
}

// LeaveBalanceRepository persists (user, leave type, financial year) balance
// rows. Rows are created lazily and reconciled in place; nothing here ever
// deletes one.
type LeaveBalanceRepository interface {
	// GetByUserAndYear returns all balance rows for a user in a financial year.
	GetByUserAndYear(ctx context.Context, userID, financialYear string) ([]LeaveBalance, error)

	// Create inserts a balance row. The (user_id, leave_type, financial_year)
	// unique key makes concurrent creation collapse to one row.
	Create(ctx context.Context, balance LeaveBalance) (LeaveBalance, error)

	// UpdateBalance overwrites the stored balance figure for one row.
	UpdateBalance(ctx context.Context, id string, balance float64) error
}
