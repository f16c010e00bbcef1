package leave

import (
	"context"
)

// LeaveService reconciles balances and accepts new leave requests. Accrual
// runs on every balance read, so callers always see a figure consistent
// with "now" without any background job.
type LeaveService interface {
	// GetBalances returns all of the user's balances for the current
	// financial year, with the privilege-leave row reconciled against the
	// accrual computed from the join date.
	GetBalances(ctx context.Context, userID string) ([]LeaveBalanceResponse, error)

	// RequestLeave validates and creates a new pending leave request.
	RequestLeave(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
}
