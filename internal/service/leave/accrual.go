package leave

import (
	"fmt"
	"time"
)

const (
	accrualPerMonth    = 1.25
	accrualYearlyCap   = 15.0
	probationDays      = 90
	maxMonthIterations = 100
)

// financialYear returns the April-to-March financial year containing t,
// as [start, end] plus its "YYYY-YYYY" label named by the starting year.
func financialYear(t time.Time) (time.Time, time.Time, string) {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	start := time.Date(startYear, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(startYear+1, time.March, 31, 23, 59, 59, 0, time.UTC)
	label := fmt.Sprintf("%d-%d", startYear, startYear+1)
	return start, end, label
}

// monthsTouched counts the calendar months the window [start, end] touches,
// stepping month by month from the start's month to the end's month
// inclusive. A partial month counts as a full one. Returns 0 for an
// inverted window.
func monthsTouched(start, end time.Time) int {
	if start.After(end) {
		return 0
	}

	months := 0
	cursor := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cursor.After(last) && months < maxMonthIterations {
		months++
		cursor = cursor.AddDate(0, 1, 0)
	}
	return months
}

// accruedLeave computes the privilege leave accrued between the join date
// and now, limited to the current financial year and its yearly cap.
func accruedLeave(joinDate, now time.Time) float64 {
	fyStart, fyEnd, _ := financialYear(now)

	windowStart := fyStart
	if joinDate.After(windowStart) {
		windowStart = joinDate
	}
	windowEnd := now
	if fyEnd.Before(windowEnd) {
		windowEnd = fyEnd
	}

	accrued := float64(monthsTouched(windowStart, windowEnd)) * accrualPerMonth
	if accrued > accrualYearlyCap {
		accrued = accrualYearlyCap
	}
	return accrued
}

// isProbation reports whether fewer than 90 calendar days have elapsed since
// the join date.
func isProbation(joinDate, now time.Time) bool {
	return now.Sub(joinDate) < probationDays*24*time.Hour
}
