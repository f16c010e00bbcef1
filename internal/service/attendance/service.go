package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/employee"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
)

type attendanceService struct {
	employeeRepo employee.EmployeeRepository
	clockRepo    attendance.ClockEventRepository
	rosterRepo   attendance.ShiftRosterRepository
	leaveRepo    leave.LeaveRequestRepository
}

func NewAttendanceService(
	employeeRepo employee.EmployeeRepository,
	clockRepo attendance.ClockEventRepository,
	rosterRepo attendance.ShiftRosterRepository,
	leaveRepo leave.LeaveRequestRepository,
) attendance.AttendanceService {
	return &attendanceService{
		employeeRepo: employeeRepo,
		clockRepo:    clockRepo,
		rosterRepo:   rosterRepo,
		leaveRepo:    leaveRepo,
	}
}

func (s *attendanceService) ClassifyRange(ctx context.Context, req attendance.RangeReportRequest) (attendance.RangeReportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RangeReportResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	now := time.Now()

	days, err := s.buildGrid(ctx, start, end, now)
	if err != nil {
		return attendance.RangeReportResponse{}, err
	}

	return attendance.RangeReportResponse{
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Days:        toDayResponses(days),
	}, nil
}

func (s *attendanceService) MonthlyReport(ctx context.Context, req attendance.MonthlyReportRequest) (attendance.MonthlyReportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	now := time.Now()
	days, err := s.ClassifyMonth(ctx, req.Month, req.Year, now)
	if err != nil {
		return attendance.MonthlyReportResponse{}, err
	}

	start := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return attendance.MonthlyReportResponse{
		Month:       req.Month,
		Year:        req.Year,
		PeriodStart: dateKey(start),
		PeriodEnd:   dateKey(end),
		GeneratedAt: now.UTC().Format(time.RFC3339),
		Days:        toDayResponses(days),
	}, nil
}

func (s *attendanceService) ClassifyMonth(ctx context.Context, month, year int, now time.Time) ([]attendance.AttendanceDay, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return s.buildGrid(ctx, start, end, now)
}

// buildGrid produces the dense (employee, date) grid for [start, end]
// inclusive: every active employee gets exactly one record per date, ordered
// by date descending then employee name. now is captured once by the caller
// and reused for every past/future comparison.
func (s *attendanceService) buildGrid(ctx context.Context, start, end time.Time, now time.Time) ([]attendance.AttendanceDay, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	today := truncateToDay(now)

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	clockDays, err := s.clockRepo.GetDailySummaries(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load clock summaries: %w", err)
	}
	clockByKey := make(map[string]attendance.ClockDay, len(clockDays))
	for _, cd := range clockDays {
		clockByKey[cd.UserID+"|"+dateKey(cd.Date)] = cd
	}

	assignments, err := s.rosterRepo.GetAssignments(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift assignments: %w", err)
	}
	shiftByKey := make(map[string]string, len(assignments))
	for _, a := range assignments {
		shiftByKey[a.UserID+"|"+dateKey(a.Date)] = a.ShiftType
	}

	leaveByKey, err := s.leaveCoverage(ctx, start, end)
	if err != nil {
		return nil, err
	}

	var grid []attendance.AttendanceDay
	for date := end; !date.Before(start); date = date.AddDate(0, 0, -1) {
		for _, emp := range employees {
			key := emp.ID + "|" + dateKey(date)

			day := attendance.AttendanceDay{
				UserID:       emp.ID,
				EmployeeName: emp.FullName,
				Date:         date,
			}
			if leaveType, ok := leaveByKey[key]; ok {
				lt := leaveType
				day.LeaveType = &lt
			}
			if shiftType, ok := shiftByKey[key]; ok {
				st := shiftType
				day.ShiftType = &st
			}

			if cd, ok := clockByKey[key]; ok && cd.ClockIn != nil {
				day.ClockIn = cd.ClockIn
				day.ClockOut = cd.ClockOut
				day.TotalHours = cd.TotalHours
				day.Status = classifyClockDay(cd, emp.Location())
			} else {
				day.Status = classifyNoClock(date, day.LeaveType != nil, today)
			}

			grid = append(grid, day)
		}
	}

	return grid, nil
}

// leaveCoverage expands every approved leave request into per-day coverage.
// Each covered day maps to the canonical leave type. Session granularity is
// intentionally not consulted here: a half-day approved leave marks the
// whole day as leave-covered.
func (s *attendanceService) leaveCoverage(ctx context.Context, start, end time.Time) (map[string]string, error) {
	requests, err := s.leaveRepo.GetApprovedInRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load approved leave: %w", err)
	}

	covered := make(map[string]string)
	for _, req := range requests {
		from := truncateToDay(req.StartDate)
		if from.Before(start) {
			from = start
		}
		to := truncateToDay(req.EndDate)
		if to.After(end) {
			to = end
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			covered[req.UserID+"|"+dateKey(d)] = leave.ResolveType(req.LeaveType)
		}
	}

	return covered, nil
}

func toDayResponses(days []attendance.AttendanceDay) []attendance.AttendanceDayResponse {
	responses := make([]attendance.AttendanceDayResponse, 0, len(days))
	for _, d := range days {
		resp := attendance.AttendanceDayResponse{
			UserID:       d.UserID,
			EmployeeName: d.EmployeeName,
			Date:         dateKey(d.Date),
			TotalHours:   d.TotalHours,
			ShiftType:    d.ShiftType,
			LeaveType:    d.LeaveType,
			Status:       string(d.Status),
		}
		if d.ClockIn != nil {
			in := d.ClockIn.UTC().Format(time.RFC3339)
			resp.ClockIn = &in
		}
		if d.ClockOut != nil {
			out := d.ClockOut.UTC().Format(time.RFC3339)
			resp.ClockOut = &out
		}
		responses = append(responses, resp)
	}
	return responses
}
