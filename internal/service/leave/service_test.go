package leave

import (
	"context"
	"testing"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/employee"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = "018f1a2b-3c4d-7e5f-8a6b-9c0d1e2f3a4b"

type fakeBalanceRepo struct {
	rows    []leave.LeaveBalance
	nextID  int
	updates int
}

func (f *fakeBalanceRepo) GetByUserAndYear(_ context.Context, userID, fy string) ([]leave.LeaveBalance, error) {
	var out []leave.LeaveBalance
	for _, b := range f.rows {
		if b.UserID == userID && b.FinancialYear == fy {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBalanceRepo) Create(_ context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	f.nextID++
	balance.ID = string(rune('a' + f.nextID))
	f.rows = append(f.rows, balance)
	return balance, nil
}

func (f *fakeBalanceRepo) UpdateBalance(_ context.Context, id string, balance float64) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Balance = balance
			f.updates++
			return nil
		}
	}
	return leave.ErrBalanceNotFound
}

type fakeRequestRepo struct {
	created []leave.LeaveRequest
}

func (f *fakeRequestRepo) GetApprovedInRange(_ context.Context, _, _ time.Time) ([]leave.LeaveRequest, error) {
	return nil, nil
}

func (f *fakeRequestRepo) Create(_ context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	req.ID = "req-1"
	f.created = append(f.created, req)
	return req, nil
}

type fakeEmployeeRepo struct {
	joinDate *time.Time
	missing  bool
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if f.missing {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return employee.Employee{ID: id, FullName: "Alice", JoinDate: f.joinDate}, nil
}

func (f *fakeEmployeeRepo) GetJoinDate(_ context.Context, _ string) (*time.Time, error) {
	if f.missing {
		return nil, nil
	}
	return f.joinDate, nil
}

func TestGetBalances_CreatesPrivilegeRowLazily(t *testing.T) {
	join := time.Now().UTC().AddDate(0, -2, 0)
	balanceRepo := &fakeBalanceRepo{}
	svc := NewLeaveService(balanceRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{joinDate: &join})

	balances, err := svc.GetBalances(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, balances, 1)
	assert.Equal(t, leave.TypePrivilegeLeave, balances[0].LeaveType)
	assert.InDelta(t, accruedLeave(join, time.Now()), balances[0].Balance, 0.001)
	assert.True(t, balances[0].IsProbation)
}

func TestGetBalances_ReconcilesDrift(t *testing.T) {
	now := time.Now().UTC()
	_, _, fyLabel := financialYear(now)
	join := now.AddDate(-1, 0, 0)

	balanceRepo := &fakeBalanceRepo{rows: []leave.LeaveBalance{
		{
			ID:            "bal-1",
			UserID:        testUserID,
			LeaveType:     "paid leave",
			FinancialYear: fyLabel,
			Availed:       2,
			Balance:       0, // stale
		},
	}}
	svc := NewLeaveService(balanceRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{joinDate: &join})

	balances, err := svc.GetBalances(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, balances, 1)
	expected := accruedLeave(join, now) - 2
	assert.InDelta(t, expected, balances[0].Balance, 0.001)
	assert.Equal(t, 1, balanceRepo.updates)
	assert.False(t, balances[0].IsProbation)
}

func TestGetBalances_NoJoinDateLeavesRowsUntouched(t *testing.T) {
	now := time.Now().UTC()
	_, _, fyLabel := financialYear(now)

	balanceRepo := &fakeBalanceRepo{rows: []leave.LeaveBalance{
		{ID: "bal-1", UserID: testUserID, LeaveType: "pl", FinancialYear: fyLabel, Balance: 3},
	}}
	svc := NewLeaveService(balanceRepo, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	balances, err := svc.GetBalances(context.Background(), testUserID)
	require.NoError(t, err)

	require.Len(t, balances, 1)
	assert.Equal(t, 3.0, balances[0].Balance)
	assert.Zero(t, balanceRepo.updates)
}

func TestGetBalances_UnknownUser(t *testing.T) {
	svc := NewLeaveService(&fakeBalanceRepo{}, &fakeRequestRepo{}, &fakeEmployeeRepo{missing: true})

	_, err := svc.GetBalances(context.Background(), testUserID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRequestLeave_InsufficientBalance(t *testing.T) {
	join := time.Now().UTC().AddDate(0, -1, 0) // roughly 2.5 days accrued
	svc := NewLeaveService(&fakeBalanceRepo{}, &fakeRequestRepo{}, &fakeEmployeeRepo{joinDate: &join})

	start := time.Now().UTC().AddDate(0, 0, 7)
	_, err := svc.RequestLeave(context.Background(), leave.CreateLeaveRequestRequest{
		UserID:    testUserID,
		LeaveType: "Paid Leave",
		StartDate: start.Format("2006-01-02"),
		EndDate:   start.AddDate(0, 0, 9).Format("2006-01-02"),
	})

	var insufficientErr *leave.InsufficientBalanceError
	require.ErrorAs(t, err, &insufficientErr)
	assert.Equal(t, leave.TypePrivilegeLeave, insufficientErr.LeaveType)
	assert.Equal(t, 10.0, insufficientErr.Requested)
	assert.Contains(t, err.Error(), "days requested")
}

func TestRequestLeave_HalfDaySession(t *testing.T) {
	join := time.Now().UTC().AddDate(-1, 0, 0)
	requestRepo := &fakeRequestRepo{}
	svc := NewLeaveService(&fakeBalanceRepo{}, requestRepo, &fakeEmployeeRepo{joinDate: &join})

	day := time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
	resp, err := svc.RequestLeave(context.Background(), leave.CreateLeaveRequestRequest{
		UserID:    testUserID,
		LeaveType: "Sick Leave",
		StartDate: day,
		EndDate:   day,
		Session:   string(leave.SessionFirstHalf),
	})
	require.NoError(t, err)

	assert.Equal(t, 0.5, resp.Days)
	assert.Equal(t, string(leave.RequestStatusPending), resp.Status)
	require.Len(t, requestRepo.created, 1)
}

func TestRequestLeave_HalfSessionOnMultiDayRejected(t *testing.T) {
	join := time.Now().UTC().AddDate(-1, 0, 0)
	svc := NewLeaveService(&fakeBalanceRepo{}, &fakeRequestRepo{}, &fakeEmployeeRepo{joinDate: &join})

	start := time.Now().UTC().AddDate(0, 0, 7)
	_, err := svc.RequestLeave(context.Background(), leave.CreateLeaveRequestRequest{
		UserID:    testUserID,
		LeaveType: "Sick Leave",
		StartDate: start.Format("2006-01-02"),
		EndDate:   start.AddDate(0, 0, 2).Format("2006-01-02"),
		Session:   string(leave.SessionSecondHalf),
	})
	assert.Error(t, err)
}

func TestRequestLeave_EndBeforeStart(t *testing.T) {
	svc := NewLeaveService(&fakeBalanceRepo{}, &fakeRequestRepo{}, &fakeEmployeeRepo{})

	_, err := svc.RequestLeave(context.Background(), leave.CreateLeaveRequestRequest{
		UserID:    testUserID,
		LeaveType: "Casual Leave",
		StartDate: "2024-06-10",
		EndDate:   "2024-06-08",
	})
	assert.Error(t, err)
}
