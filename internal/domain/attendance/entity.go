package attendance

import (
	"time"
)

// Status is the per-day attendance classification. Exactly one status is
// assigned per (employee, date); it is always derived from clock, roster and
// leave rows, never stored on its own.
type Status string

const (
	StatusPresent  Status = "present"
	StatusHalfDay  Status = "half_day"
	StatusAbsent   Status = "absent"
	StatusOnLeave  Status = "on_leave"
	StatusWeekOff  Status = "week_off"
	StatusUpcoming Status = "upcoming"
)

// ClockDay is one employee's aggregated clock activity for a single date:
// earliest clock-in, latest clock-out, summed worked hours.
type ClockDay struct {
	UserID     string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	TotalHours float64
}

// ShiftAssignment pairs an employee and date with a roster shift type.
type ShiftAssignment struct {
	UserID    string
	Date      time.Time
	ShiftType string
}

// AttendanceDay is one cell of the dense attendance grid.
type AttendanceDay struct {
	UserID       string
	EmployeeName string
	Date         time.Time
	ClockIn      *time.Time
	ClockOut     *time.Time
	TotalHours   float64
	ShiftType    *string
	LeaveType    *string
	Status       Status
}
