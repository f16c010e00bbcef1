package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrBalanceNotFound      = errors.New("leave balance not found")
	ErrInvalidDateRange     = errors.New("end date is before start date")
)

// InsufficientBalanceError rejects a paid-leave request that exceeds the
// reconciled balance. The message carries both numbers so the caller can
// surface them verbatim.
type InsufficientBalanceError struct {
	LeaveType string
	Balance   float64
	Requested float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: %.2f days available, %.2f days requested",
		e.LeaveType, e.Balance, e.Requested)
}
