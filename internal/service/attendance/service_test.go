package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/employee"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetJoinDate(_ context.Context, id string) (*time.Time, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e.JoinDate, nil
		}
	}
	return nil, nil
}

type fakeClockRepo struct {
	days []attendance.ClockDay
}

func (f *fakeClockRepo) GetDailySummaries(_ context.Context, start, end time.Time) ([]attendance.ClockDay, error) {
	var out []attendance.ClockDay
	for _, d := range f.days {
		if !d.Date.Before(start) && !d.Date.After(end) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeRosterRepo struct {
	assignments []attendance.ShiftAssignment
}

func (f *fakeRosterRepo) GetAssignments(_ context.Context, start, end time.Time) ([]attendance.ShiftAssignment, error) {
	var out []attendance.ShiftAssignment
	for _, a := range f.assignments {
		if !a.Date.Before(start) && !a.Date.After(end) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeLeaveRequestRepo struct {
	requests []leave.LeaveRequest
}

func (f *fakeLeaveRequestRepo) GetApprovedInRange(_ context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, r := range f.requests {
		if r.Status == leave.RequestStatusApproved && !r.StartDate.After(end) && !r.EndDate.Before(start) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRequestRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = "created"
	f.requests = append(f.requests, req)
	return req, nil
}

func TestClassifyRange_DenseGrid(t *testing.T) {
	ctx := context.Background()

	alice := employee.Employee{ID: "alice", FullName: "Alice", Timezone: "UTC"}
	bob := employee.Employee{ID: "bob", FullName: "Bob", Timezone: "UTC"}

	// Monday through Wednesday, all in the past.
	monday := time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC)
	clockIn := monday.Add(9 * time.Hour)
	clockOut := monday.Add(18 * time.Hour)

	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: []employee.Employee{alice, bob}},
		&fakeClockRepo{days: []attendance.ClockDay{
			{UserID: "alice", Date: monday, ClockIn: &clockIn, ClockOut: &clockOut, TotalHours: 9},
		}},
		&fakeRosterRepo{assignments: []attendance.ShiftAssignment{
			{UserID: "alice", Date: monday, ShiftType: "morning"},
		}},
		&fakeLeaveRequestRepo{requests: []leave.LeaveRequest{
			{
				UserID:    "bob",
				LeaveType: "Paid Leave",
				StartDate: monday,
				EndDate:   monday.AddDate(0, 0, 1),
				Status:    leave.RequestStatusApproved,
			},
		}},
	)

	result, err := svc.ClassifyRange(ctx, attendance.RangeReportRequest{
		StartDate: "2024-05-13",
		EndDate:   "2024-05-15",
	})
	require.NoError(t, err)

	// Dense grid: 2 employees x 3 days, date descending then name.
	require.Len(t, result.Days, 6)

	wantOrder := []struct {
		userID string
		date   string
		status string
	}{
		{"alice", "2024-05-15", "absent"},
		{"bob", "2024-05-15", "absent"},
		{"alice", "2024-05-14", "absent"},
		{"bob", "2024-05-14", "on_leave"},
		{"alice", "2024-05-13", "present"},
		{"bob", "2024-05-13", "on_leave"},
	}
	for i, want := range wantOrder {
		assert.Equal(t, want.userID, result.Days[i].UserID, "row %d user", i)
		assert.Equal(t, want.date, result.Days[i].Date, "row %d date", i)
		assert.Equal(t, want.status, result.Days[i].Status, "row %d status", i)
	}

	clocked := result.Days[4]
	require.NotNil(t, clocked.ClockIn)
	assert.Equal(t, 9.0, clocked.TotalHours)
	require.NotNil(t, clocked.ShiftType)
	assert.Equal(t, "morning", *clocked.ShiftType)

	// Leave type is resolved to its canonical label.
	onLeave := result.Days[3]
	require.NotNil(t, onLeave.LeaveType)
	assert.Equal(t, leave.TypePrivilegeLeave, *onLeave.LeaveType)
}

func TestClassifyRange_WeekendsAreWeekOff(t *testing.T) {
	ctx := context.Background()

	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: []employee.Employee{{ID: "alice", FullName: "Alice"}}},
		&fakeClockRepo{},
		&fakeRosterRepo{},
		&fakeLeaveRequestRepo{},
	)

	// Saturday and Sunday.
	result, err := svc.ClassifyRange(ctx, attendance.RangeReportRequest{
		StartDate: "2024-05-11",
		EndDate:   "2024-05-12",
	})
	require.NoError(t, err)

	require.Len(t, result.Days, 2)
	for _, day := range result.Days {
		assert.Equal(t, "week_off", day.Status)
	}
}

func TestClassifyRange_InvalidRange(t *testing.T) {
	svc := NewAttendanceService(&fakeEmployeeRepo{}, &fakeClockRepo{}, &fakeRosterRepo{}, &fakeLeaveRequestRepo{})

	_, err := svc.ClassifyRange(context.Background(), attendance.RangeReportRequest{
		StartDate: "2024-05-15",
		EndDate:   "2024-05-13",
	})
	assert.Error(t, err)
}

func TestMonthlyReport_CoversWholeMonth(t *testing.T) {
	svc := NewAttendanceService(
		&fakeEmployeeRepo{employees: []employee.Employee{{ID: "alice", FullName: "Alice"}}},
		&fakeClockRepo{},
		&fakeRosterRepo{},
		&fakeLeaveRequestRepo{},
	)

	result, err := svc.MonthlyReport(context.Background(), attendance.MonthlyReportRequest{Month: 2, Year: 2024})
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01", result.PeriodStart)
	assert.Equal(t, "2024-02-29", result.PeriodEnd)
	assert.Len(t, result.Days, 29)
}
