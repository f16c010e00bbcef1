package attendance

import (
	"context"
	"time"
)

// ClockEventRepository reads aggregated clock activity. The raw clock event
// rows are owned by the time-tracking collaborator; the classifier only ever
// consumes the per-day aggregate.
type ClockEventRepository interface {
	// GetDailySummaries returns one ClockDay per (employee, date) with at
	// least one clock-in inside [start, end] inclusive.
	GetDailySummaries(ctx context.Context, start, end time.Time) ([]ClockDay, error)
}

// ShiftRosterRepository reads shift assignments from the roster tables.
type ShiftRosterRepository interface {
	// GetAssignments returns every (employee, date) shift assignment inside
	// [start, end] inclusive.
	GetAssignments(ctx context.Context, start, end time.Time) ([]ShiftAssignment, error)
}
