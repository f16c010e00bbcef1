package attendance

import (
	"testing"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
)

func clockDay(clockIn time.Time, clockOut *time.Time, hours float64) attendance.ClockDay {
	return attendance.ClockDay{
		UserID:     "user",
		Date:       truncateToDay(clockIn),
		ClockIn:    &clockIn,
		ClockOut:   clockOut,
		TotalHours: hours,
	}
}

func TestClassifyClockDay(t *testing.T) {
	tuesday := time.Date(2024, 5, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		clockIn  time.Time
		clockOut *time.Time
		hours    float64
		loc      *time.Location
		want     attendance.Status
	}{
		{
			name:    "full day",
			clockIn: tuesday.Add(9 * time.Hour),
			clockOut: func() *time.Time {
				out := tuesday.Add(18*time.Hour + 30*time.Minute)
				return &out
			}(),
			hours: 9.5,
			loc:   time.UTC,
			want:  attendance.StatusPresent,
		},
		{
			name:    "late arrival beats hour count",
			clockIn: tuesday.Add(11*time.Hour + 30*time.Minute),
			clockOut: func() *time.Time {
				out := tuesday.Add(20 * time.Hour)
				return &out
			}(),
			hours: 8.5,
			loc:   time.UTC,
			want:  attendance.StatusHalfDay,
		},
		{
			name:    "exactly 11:00 is not late",
			clockIn: tuesday.Add(11 * time.Hour),
			hours:   8,
			loc:     time.UTC,
			want:    attendance.StatusPresent,
		},
		{
			name:    "between four and eight hours",
			clockIn: tuesday.Add(9 * time.Hour),
			clockOut: func() *time.Time {
				out := tuesday.Add(14 * time.Hour)
				return &out
			}(),
			hours: 5,
			loc:   time.UTC,
			want:  attendance.StatusHalfDay,
		},
		{
			name:    "short recorded day still counts",
			clockIn: tuesday.Add(9 * time.Hour),
			clockOut: func() *time.Time {
				out := tuesday.Add(11 * time.Hour)
				return &out
			}(),
			hours: 2,
			loc:   time.UTC,
			want:  attendance.StatusPresent,
		},
		{
			name:    "open shift",
			clockIn: tuesday.Add(9 * time.Hour),
			hours:   0,
			loc:     time.UTC,
			want:    attendance.StatusPresent,
		},
		{
			name:    "closed shift with no hours",
			clockIn: tuesday.Add(9 * time.Hour),
			clockOut: func() *time.Time {
				out := tuesday.Add(9 * time.Hour)
				return &out
			}(),
			hours: 0,
			loc:   time.UTC,
			want:  attendance.StatusAbsent,
		},
		{
			name: "late arrival in local timezone",
			// 05:45 UTC is 11:15 in UTC+5:30
			clockIn: tuesday.Add(5*time.Hour + 45*time.Minute),
			hours:   9,
			loc:     time.FixedZone("IST", 5*3600+1800),
			want:    attendance.StatusHalfDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day := clockDay(tt.clockIn, tt.clockOut, tt.hours)
			assert.Equal(t, tt.want, classifyClockDay(day, tt.loc))
		})
	}
}

func TestClassifyNoClock(t *testing.T) {
	today := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		name         string
		date         time.Time
		leaveCovered bool
		want         attendance.Status
	}{
		{"approved leave", today.AddDate(0, 0, -1), true, attendance.StatusOnLeave},
		{"leave wins over weekend", today.AddDate(0, 0, -4), true, attendance.StatusOnLeave},
		{"saturday", time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), false, attendance.StatusWeekOff},
		{"sunday", time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), false, attendance.StatusWeekOff},
		{"past weekday", today.AddDate(0, 0, -2), false, attendance.StatusAbsent},
		{"today", today, false, attendance.StatusUpcoming},
		{"future weekday", today.AddDate(0, 0, 1), false, attendance.StatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyNoClock(tt.date, tt.leaveCovered, today))
		})
	}
}
