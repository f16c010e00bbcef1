package payslip

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. Released and locked are one-way transitions.
type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusReleased Status = "released"
	StatusLocked   Status = "locked"
)

// Payslip is one employee's pay for one (month, year). Unique on
// (user_id, month, year); Id is the surrogate primary key.
type Payslip struct {
	ID     string
	UserID string
	Month  int
	Year   int

	// Earnings
	BasicPay         decimal.Decimal
	HRA              decimal.Decimal
	SpecialAllowance decimal.Decimal
	Bonus            decimal.Decimal
	Incentives       decimal.Decimal
	OtherEarnings    decimal.Decimal
	TotalEarnings    decimal.Decimal

	// Deductions. Employer-side PF/ESI legs are informational and excluded
	// from TotalDeductions.
	PFEmployee      decimal.Decimal
	PFEmployer      decimal.Decimal
	ESIEmployee     decimal.Decimal
	ESIEmployer     decimal.Decimal
	ProfessionalTax decimal.Decimal
	TDS             decimal.Decimal
	OtherDeductions decimal.Decimal
	TotalDeductions decimal.Decimal

	NetPay decimal.Decimal

	PaidDays          float64
	LOPDays           float64
	AttendanceSummary json.RawMessage

	// Externally observable identifiers; never blanked by partial updates
	// once the slip is locked.
	PayslipID      *string
	DocumentURL    *string
	CompanyName    *string
	CompanyAddress *string
	IssueDate      *time.Time

	Status     Status
	IsLocked   bool
	ReleasedAt *time.Time
	ReleasedBy *string
	LockedAt   *time.Time
	LockedBy   *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
