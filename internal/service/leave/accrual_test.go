package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFinancialYear(t *testing.T) {
	tests := []struct {
		now       time.Time
		wantStart time.Time
		wantLabel string
	}{
		{date(2024, time.September, 15), date(2024, time.April, 1), "2024-2025"},
		{date(2024, time.April, 1), date(2024, time.April, 1), "2024-2025"},
		{date(2025, time.March, 31), date(2024, time.April, 1), "2024-2025"},
		{date(2025, time.January, 15), date(2024, time.April, 1), "2024-2025"},
		{date(2025, time.April, 2), date(2025, time.April, 1), "2025-2026"},
	}

	for _, tt := range tests {
		start, end, label := financialYear(tt.now)
		assert.Equal(t, tt.wantStart, start, "start for %s", tt.now)
		assert.Equal(t, tt.wantLabel, label, "label for %s", tt.now)
		assert.True(t, end.After(start))
		assert.Equal(t, time.March, end.Month())
	}
}

func TestMonthsTouched(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"partial month counts whole", date(2024, time.April, 1), date(2024, time.September, 15), 6},
		{"single day", date(2024, time.April, 10), date(2024, time.April, 10), 1},
		{"inverted window", date(2024, time.September, 1), date(2024, time.April, 1), 0},
		{"across year boundary", date(2024, time.December, 20), date(2025, time.February, 3), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monthsTouched(tt.start, tt.end))
		})
	}
}

func TestAccruedLeave(t *testing.T) {
	// Join 2024-04-01, checked mid-September: Apr through Sep touched.
	assert.Equal(t, 7.5, accruedLeave(date(2024, time.April, 1), date(2024, time.September, 15)))

	// A full financial year hits the yearly cap.
	assert.Equal(t, 15.0, accruedLeave(date(2020, time.January, 1), date(2025, time.March, 31)))

	// Joining in the future accrues nothing yet.
	assert.Equal(t, 0.0, accruedLeave(date(2024, time.December, 1), date(2024, time.September, 15)))
}

func TestAccruedLeave_Monotonic(t *testing.T) {
	join := date(2024, time.June, 10)

	prev := 0.0
	for now := join; now.Before(date(2025, time.April, 1)); now = now.AddDate(0, 0, 7) {
		got := accruedLeave(join, now)
		assert.GreaterOrEqual(t, got, prev, "accrual regressed at %s", now)
		assert.LessOrEqual(t, got, accrualYearlyCap)
		prev = got
	}
}

func TestIsProbation(t *testing.T) {
	join := date(2024, time.April, 1)

	assert.True(t, isProbation(join, join.AddDate(0, 0, 89)))
	assert.False(t, isProbation(join, join.AddDate(0, 0, 90)))
	assert.False(t, isProbation(join, join.AddDate(0, 0, 200)))
}
