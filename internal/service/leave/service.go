package leave

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/employee"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

// balanceTolerance is the drift below which a recomputed balance is not
// written back.
const balanceTolerance = 0.01

type leaveService struct {
	balanceRepo  leave.LeaveBalanceRepository
	requestRepo  leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	balanceRepo leave.LeaveBalanceRepository,
	requestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &leaveService{
		balanceRepo:  balanceRepo,
		requestRepo:  requestRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *leaveService) GetBalances(ctx context.Context, userID string) ([]leave.LeaveBalanceResponse, error) {
	if !validator.IsValidUUID(userID) {
		return nil, validator.ValidationErrors{{Field: "user_id", Message: "must be a valid UUID"}}
	}
	if _, err := s.employeeRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	now := time.Now()
	balances, err := s.reconcile(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, toBalanceResponse(b))
	}
	return responses, nil
}

// reconcile returns the user's balances for the financial year containing
// now, with the privilege-leave row brought in line with the accrual derived
// from the join date. Without a resolvable join date the stored rows are
// returned as they are.
func (s *leaveService) reconcile(ctx context.Context, userID string, now time.Time) ([]leave.LeaveBalance, error) {
	_, _, fyLabel := financialYear(now)

	balances, err := s.balanceRepo.GetByUserAndYear(ctx, userID, fyLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to load leave balances: %w", err)
	}

	joinDate, err := s.employeeRepo.GetJoinDate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve join date: %w", err)
	}
	if joinDate == nil {
		return balances, nil
	}

	accrued := accruedLeave(*joinDate, now)
	probation := isProbation(*joinDate, now)

	for i, b := range balances {
		if !leave.IsPrivilegeType(b.LeaveType) {
			continue
		}

		newBalance := b.OpeningBalance + accrued - b.Availed - b.Lapse
		if math.Abs(newBalance-b.Balance) > balanceTolerance {
			if err := s.balanceRepo.UpdateBalance(ctx, b.ID, newBalance); err != nil {
				return nil, fmt.Errorf("failed to reconcile leave balance: %w", err)
			}
			balances[i].Balance = newBalance
		}
		balances[i].IsProbation = probation
		return balances, nil
	}

	// No privilege-leave row yet for this financial year; create it lazily.
	created, err := s.balanceRepo.Create(ctx, leave.LeaveBalance{
		UserID:        userID,
		LeaveType:     leave.TypePrivilegeLeave,
		FinancialYear: fyLabel,
		Balance:       accrued,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create leave balance: %w", err)
	}
	created.IsProbation = probation

	return append(balances, created), nil
}

func (s *leaveService) RequestLeave(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.UserID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	session := leave.Session(req.Session)
	if session == "" {
		session = leave.SessionFullDay
	}
	days := requestedDays(start, end, session)
	if days <= 0 {
		return leave.LeaveRequestResponse{}, validator.ValidationErrors{
			{Field: "session", Message: "half-day sessions apply to single-day requests only"},
		}
	}

	leaveType := leave.ResolveType(req.LeaveType)
	if leave.IsPrivilegeType(req.LeaveType) {
		balances, err := s.reconcile(ctx, req.UserID, time.Now())
		if err != nil {
			return leave.LeaveRequestResponse{}, err
		}
		available := 0.0
		for _, b := range balances {
			if leave.IsPrivilegeType(b.LeaveType) {
				available = b.Balance
				break
			}
		}
		if days > available {
			return leave.LeaveRequestResponse{}, &leave.InsufficientBalanceError{
				LeaveType: leaveType,
				Balance:   available,
				Requested: days,
			}
		}
	}

	created, err := s.requestRepo.Create(ctx, leave.LeaveRequest{
		UserID:    req.UserID,
		LeaveType: leaveType,
		StartDate: start,
		EndDate:   end,
		Session:   session,
		Status:    leave.RequestStatusPending,
		Reason:    req.Reason,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.LeaveRequestResponse{
		ID:        created.ID,
		UserID:    created.UserID,
		LeaveType: created.LeaveType,
		StartDate: created.StartDate.Format("2006-01-02"),
		EndDate:   created.EndDate.Format("2006-01-02"),
		Session:   string(created.Session),
		Status:    string(created.Status),
		Days:      days,
		Reason:    created.Reason,
	}, nil
}

// requestedDays counts the days a request spans, inclusive. A half-day
// session counts 0.5 and is only meaningful on a single-day request; a
// multi-day half session yields 0 so the caller can reject it.
func requestedDays(start, end time.Time, session leave.Session) float64 {
	days := float64(end.Sub(start)/(24*time.Hour)) + 1
	if session == leave.SessionFirstHalf || session == leave.SessionSecondHalf {
		if days != 1 {
			return 0
		}
		return 0.5
	}
	return days
}

func toBalanceResponse(b leave.LeaveBalance) leave.LeaveBalanceResponse {
	return leave.LeaveBalanceResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		LeaveType:      b.LeaveType,
		FinancialYear:  b.FinancialYear,
		OpeningBalance: b.OpeningBalance,
		Availed:        b.Availed,
		Lapse:          b.Lapse,
		Balance:        b.Balance,
		IsProbation:    b.IsProbation,
	}
}
