package audit

import "time"

// Entry is one audit-log record. Writes are best effort: a failed insert is
// logged by the caller and never blocks the primary operation.
type Entry struct {
	ID          string
	UserID      string
	Action      string
	EntityType  string
	EntityID    string
	PerformedBy string
	Details     string
	CreatedAt   time.Time
}

const (
	ActionPayslipCreated  = "payslip_created"
	ActionPayslipUpdated  = "payslip_updated"
	ActionPayslipReleased = "payslip_released"
	ActionPayslipLocked   = "payslip_locked"
)
