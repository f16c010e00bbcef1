package leave

import (
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

type LeaveBalanceResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	LeaveType      string  `json:"leave_type"`
	FinancialYear  string  `json:"financial_year"`
	OpeningBalance float64 `json:"opening_balance"`
	Availed        float64 `json:"availed"`
	Lapse          float64 `json:"lapse"`
	Balance        float64 `json:"balance"`
	IsProbation    bool    `json:"is_probation"`
}

type CreateLeaveRequestRequest struct {
	UserID    string  `json:"user_id"`
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Session   string  `json:"session,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "is required"})
	}
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
	if r.Session != "" && !validator.IsInSlice(r.Session, []string{
		string(SessionFullDay), string(SessionFirstHalf), string(SessionSecondHalf),
	}) {
		errs = append(errs, validator.ValidationError{Field: "session", Message: "must be 'Full Day', 'First Half' or 'Second Half'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequestResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Session   string  `json:"session"`
	Status    string  `json:"status"`
	Days      float64 `json:"days"`
	Reason    *string `json:"reason,omitempty"`
}
