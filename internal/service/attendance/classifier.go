package attendance

import (
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
)

const (
	lateArrivalCutoffMinutes = 11 * 60
	fullDayHours             = 8.0
	halfDayHours             = 4.0
)

// classifyClockDay assigns a status to a day that has at least one clock-in.
// The rules are ordered; the first match wins. The late-arrival check uses
// the employee's local wall clock, everything else the aggregated hours.
func classifyClockDay(day attendance.ClockDay, loc *time.Location) attendance.Status {
	if day.ClockIn != nil {
		local := day.ClockIn.In(loc)
		if local.Hour()*60+local.Minute() > lateArrivalCutoffMinutes {
			return attendance.StatusHalfDay
		}
	}

	switch {
	case day.TotalHours >= fullDayHours:
		return attendance.StatusPresent
	case day.TotalHours >= halfDayHours:
		return attendance.StatusHalfDay
	case day.TotalHours > 0:
		return attendance.StatusPresent
	case day.ClockOut == nil:
		// Open shift: clocked in, not yet out.
		return attendance.StatusPresent
	default:
		return attendance.StatusAbsent
	}
}

// classifyNoClock assigns a status to a day with no clock activity at all.
// today is captured once per operation so a request straddling midnight
// classifies every day against the same boundary.
func classifyNoClock(date time.Time, leaveCovered bool, today time.Time) attendance.Status {
	switch {
	case leaveCovered:
		return attendance.StatusOnLeave
	case date.Weekday() == time.Saturday || date.Weekday() == time.Sunday:
		return attendance.StatusWeekOff
	case date.Before(today):
		return attendance.StatusAbsent
	default:
		return attendance.StatusUpcoming
	}
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// truncateToDay drops the time-of-day component in UTC.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
