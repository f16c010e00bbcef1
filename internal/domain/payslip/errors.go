package payslip

import "errors"

var (
	ErrPayslipNotFound        = errors.New("payslip not found")
	ErrPayslipLocked          = errors.New("payslip is locked and cannot be modified without override")
	ErrPayslipAlreadyReleased = errors.New("payslip has already been released")
	ErrPayslipAlreadyLocked   = errors.New("payslip has already been locked")
	ErrNoAttendanceData       = errors.New("no attendance data aggregated for employee in period")
)
