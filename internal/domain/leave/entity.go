package leave

import (
	"time"
)

// RequestStatus enum
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Session granularity of a leave request. Session is honored when a new
// request is validated against the balance; the attendance classifier's
// coverage expansion deliberately ignores it.
type Session string

const (
	SessionFullDay    Session = "Full Day"
	SessionFirstHalf  Session = "First Half"
	SessionSecondHalf Session = "Second Half"
)

type LeaveRequest struct {
	ID        string
	UserID    string
	LeaveType string
	StartDate time.Time
	EndDate   time.Time
	Session   Session
	Status    RequestStatus
	Reason    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveBalance is one (user, leave type, financial year) balance row.
// Balance = OpeningBalance + accrued - Availed - Lapse; the stored Balance
// column carries the last reconciled value.
type LeaveBalance struct {
	ID             string
	UserID         string
	LeaveType      string
	FinancialYear  string
	OpeningBalance float64
	Availed        float64
	Lapse          float64
	Balance        float64
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// IsProbation is computed per read and never persisted.
	IsProbation bool
}
