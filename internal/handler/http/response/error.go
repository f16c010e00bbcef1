package response

import (
	"errors"
	"net/http"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/employee"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payslip"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Insufficient balance carries computed numbers in its message
	var insufficientErr *leave.InsufficientBalanceError
	if errors.As(err, &insufficientErr) {
		BadRequest(w, insufficientErr.Error(), nil)
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, "End date is before start date", nil)

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrPayslipLocked):
		Locked(w, "Payslip is locked; set the override flag to modify it")
	case errors.Is(err, payslip.ErrPayslipAlreadyReleased):
		Conflict(w, "Payslip has already been released")
	case errors.Is(err, payslip.ErrPayslipAlreadyLocked):
		Conflict(w, "Payslip has already been locked")
	case errors.Is(err, payslip.ErrNoAttendanceData):
		NotFound(w, "No attendance data for employee in the requested period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
