package attendance

import (
	"context"
	"time"
)

// AttendanceService derives per-day attendance statuses. It owns no
// persisted state: every call recomputes the grid from clock, roster and
// leave rows as of the moment of invocation.
type AttendanceService interface {
	// ClassifyRange produces the dense grid for [start, end]: one record per
	// (active employee, date), ordered by date descending then employee name.
	ClassifyRange(ctx context.Context, req RangeReportRequest) (RangeReportResponse, error)

	// MonthlyReport produces the dense grid for one calendar month, with the
	// approved leave type attached to leave-covered days. This is the input
	// to payslip generation.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReportResponse, error)

	// ClassifyMonth is MonthlyReport without the DTO envelope; used by the
	// payslip generator.
	ClassifyMonth(ctx context.Context, month, year int, now time.Time) ([]AttendanceDay, error)
}
