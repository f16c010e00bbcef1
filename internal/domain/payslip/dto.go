package payslip

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GeneratePayslipsRequest struct {
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	GeneratedBy string  `json:"-"`
	UserID      *string `json:"user_id,omitempty"` // nil = all employees
}

func (r *GeneratePayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: fmt.Sprintf("must be between 2000 and %d", currentYear+1)})
	}
	if validator.IsEmpty(r.GeneratedBy) {
		errs = append(errs, validator.ValidationError{Field: "generated_by", Message: "actor is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpsertPayslipRequest carries one fully computed payslip. Override permits
// writing over a locked row; only administrative callers set it.
type UpsertPayslipRequest struct {
	UserID string `json:"user_id"`
	Month  int    `json:"month"`
	Year   int    `json:"year"`

	BasicPay         decimal.Decimal `json:"basic_pay"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Bonus            decimal.Decimal `json:"bonus"`
	Incentives       decimal.Decimal `json:"incentives"`
	OtherEarnings    decimal.Decimal `json:"other_earnings"`

	PFEmployee      decimal.Decimal `json:"pf_employee"`
	PFEmployer      decimal.Decimal `json:"pf_employer"`
	ESIEmployee     decimal.Decimal `json:"esi_employee"`
	ESIEmployer     decimal.Decimal `json:"esi_employer"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`

	PaidDays          float64         `json:"paid_days"`
	LOPDays           float64         `json:"lop_days"`
	AttendanceSummary json.RawMessage `json:"attendance_summary,omitempty"`

	Status   string `json:"status,omitempty"`
	Override bool   `json:"override,omitempty"`

	PerformedBy string `json:"-"`
}

func (r *UpsertPayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}
	if r.Status != "" && !validator.IsInSlice(r.Status, []string{
		string(StatusDraft), string(StatusPending), string(StatusReleased), string(StatusLocked),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be draft, pending, released or locked"})
	}
	if r.PaidDays < 0 || r.LOPDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "paid_days", Message: "day counts must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePayslipRequest is a partial field-level update. Identifier columns
// follow keep-if-locked semantics in the repository.
type UpdatePayslipRequest struct {
	ID             string           `json:"-"`
	PayslipID      *string          `json:"payslip_id,omitempty"`
	DocumentURL    *string          `json:"document_url,omitempty"`
	Status         *string          `json:"status,omitempty"`
	CompanyName    *string          `json:"company_name,omitempty"`
	CompanyAddress *string          `json:"company_address,omitempty"`
	IssueDate      *string          `json:"issue_date,omitempty"`
	OtherEarnings  *decimal.Decimal `json:"other_earnings,omitempty"`
	OtherDeduction *decimal.Decimal `json:"other_deductions,omitempty"`
}

func (r *UpdatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{
		string(StatusDraft), string(StatusPending), string(StatusReleased), string(StatusLocked),
	}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be draft, pending, released or locked"})
	}
	if r.IssueDate != nil {
		if _, ok := validator.IsValidDate(*r.IssueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "issue_date", Message: "must be a valid YYYY-MM-DD date"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayslipResponse struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`

	BasicPay         decimal.Decimal `json:"basic_pay"`
	HRA              decimal.Decimal `json:"hra"`
	SpecialAllowance decimal.Decimal `json:"special_allowance"`
	Bonus            decimal.Decimal `json:"bonus"`
	Incentives       decimal.Decimal `json:"incentives"`
	OtherEarnings    decimal.Decimal `json:"other_earnings"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`

	PFEmployee      decimal.Decimal `json:"pf_employee"`
	PFEmployer      decimal.Decimal `json:"pf_employer"`
	ESIEmployee     decimal.Decimal `json:"esi_employee"`
	ESIEmployer     decimal.Decimal `json:"esi_employer"`
	ProfessionalTax decimal.Decimal `json:"professional_tax"`
	TDS             decimal.Decimal `json:"tds"`
	OtherDeductions decimal.Decimal `json:"other_deductions"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`

	NetPay decimal.Decimal `json:"net_pay"`

	PaidDays          float64         `json:"paid_days"`
	LOPDays           float64         `json:"lop_days"`
	AttendanceSummary json.RawMessage `json:"attendance_summary,omitempty"`

	PayslipID      *string `json:"payslip_id,omitempty"`
	DocumentURL    *string `json:"document_url,omitempty"`
	CompanyName    *string `json:"company_name,omitempty"`
	CompanyAddress *string `json:"company_address,omitempty"`
	IssueDate      *string `json:"issue_date,omitempty"`

	Status     string  `json:"status"`
	IsLocked   bool    `json:"is_locked"`
	ReleasedAt *string `json:"released_at,omitempty"`
	ReleasedBy *string `json:"released_by,omitempty"`
	LockedAt   *string `json:"locked_at,omitempty"`
	LockedBy   *string `json:"locked_by,omitempty"`
}

type ListPayslipsRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *ListPayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2000 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
