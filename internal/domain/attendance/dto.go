package attendance

import (
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

type RangeReportRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r *RangeReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid YYYY-MM-DD date"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MonthlyReportRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	currentYear := time.Now().Year()
	if r.Year < 2000 || r.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: fmt.Sprintf("must be between 2000 and %d", currentYear+1)})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceDayResponse struct {
	UserID       string  `json:"user_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	ClockIn      *string `json:"clock_in,omitempty"`
	ClockOut     *string `json:"clock_out,omitempty"`
	TotalHours   float64 `json:"total_hours"`
	ShiftType    *string `json:"shift_type,omitempty"`
	LeaveType    *string `json:"leave_type,omitempty"`
	Status       string  `json:"status"`
}

type RangeReportResponse struct {
	StartDate   string                  `json:"start_date"`
	EndDate     string                  `json:"end_date"`
	GeneratedAt string                  `json:"generated_at"`
	Days        []AttendanceDayResponse `json:"days"`
}

type MonthlyReportResponse struct {
	Month       int                     `json:"month"`
	Year        int                     `json:"year"`
	PeriodStart string                  `json:"period_start"`
	PeriodEnd   string                  `json:"period_end"`
	GeneratedAt string                  `json:"generated_at"`
	Days        []AttendanceDayResponse `json:"days"`
}
