package payslip

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/audit"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/employee"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payslip"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/repository/postgresql"
)

type payslipService struct {
	db                *database.DB
	payslipRepo       payslip.PayslipRepository
	employeeRepo      employee.EmployeeRepository
	attendanceService attendance.AttendanceService
	auditRepo         audit.AuditLogRepository
	logger            *slog.Logger

	// Employer identity stamped onto a payslip when it is released.
	companyName    string
	companyAddress string
}

func NewPayslipService(
	db *database.DB,
	payslipRepo payslip.PayslipRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceService attendance.AttendanceService,
	auditRepo audit.AuditLogRepository,
	logger *slog.Logger,
	companyName, companyAddress string,
) payslip.PayslipService {
	return &payslipService{
		db:                db,
		payslipRepo:       payslipRepo,
		employeeRepo:      employeeRepo,
		attendanceService: attendanceService,
		auditRepo:         auditRepo,
		logger:            logger,
		companyName:       companyName,
		companyAddress:    companyAddress,
	}
}

func (s *payslipService) Generate(ctx context.Context, req payslip.GeneratePayslipsRequest) ([]payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	grid, err := s.attendanceService.ClassifyMonth(ctx, req.Month, req.Year, now)
	if err != nil {
		return nil, fmt.Errorf("failed to classify attendance: %w", err)
	}

	aggregates := aggregateDays(grid)

	var userIDs []string
	if req.UserID != nil {
		if _, ok := aggregates[*req.UserID]; !ok {
			return nil, payslip.ErrNoAttendanceData
		}
		userIDs = []string{*req.UserID}
	} else {
		for userID := range aggregates {
			userIDs = append(userIDs, userID)
		}
		sort.Strings(userIDs)
	}

	// Each employee is computed and upserted in isolation; one failure is
	// logged and skipped without rolling back earlier upserts.
	var generated []payslip.PayslipResponse
	for _, userID := range userIDs {
		resp, err := s.generateOne(ctx, userID, req.Month, req.Year, aggregates[userID], req.GeneratedBy)
		if err != nil {
			s.logger.ErrorContext(ctx, "payslip generation failed for employee",
				slog.String("user_id", userID),
				slog.Int("month", req.Month),
				slog.Int("year", req.Year),
				slog.String("error", err.Error()))
			continue
		}
		generated = append(generated, resp)
	}

	return generated, nil
}

func (s *payslipService) generateOne(ctx context.Context, userID string, month, year int, agg *dayAggregate, actor string) (payslip.PayslipResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, userID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	base := defaultBaseSalary
	if emp.PFBaseSalary != nil && emp.PFBaseSalary.IsPositive() {
		base = *emp.PFBaseSalary
	}

	breakup := computeSalary(base, agg.PaidDays, daysInMonth(month, year))

	p := payslip.Payslip{
		UserID:            userID,
		Month:             month,
		Year:              year,
		BasicPay:          breakup.Basic,
		HRA:               breakup.HRA,
		TotalEarnings:     breakup.Gross,
		PFEmployee:        breakup.PF,
		PFEmployer:        breakup.PF,
		ESIEmployee:       breakup.ESIEmployee,
		ESIEmployer:       breakup.ESIEmployer,
		ProfessionalTax:   breakup.ProfessionalTax,
		TotalDeductions:   breakup.TotalDeductions,
		NetPay:            breakup.NetPay,
		PaidDays:          agg.PaidDays,
		LOPDays:           agg.LOPDays,
		AttendanceSummary: marshalSummary(agg),
		Status:            payslip.StatusDraft,
	}

	// Regeneration is allowed to write over a locked slip: the batch path
	// always carries the administrative override.
	stored, created, err := s.payslipRepo.Upsert(ctx, p, true)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	s.recordAudit(ctx, stored, created, actor)

	return toPayslipResponse(stored), nil
}

func (s *payslipService) Upsert(ctx context.Context, req payslip.UpsertPayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.UserID); err != nil {
		return payslip.PayslipResponse{}, err
	}

	status := payslip.Status(req.Status)
	if status == "" {
		status = payslip.StatusDraft
	}

	totalEarnings := req.BasicPay.
		Add(req.HRA).
		Add(req.SpecialAllowance).
		Add(req.Bonus).
		Add(req.Incentives).
		Add(req.OtherEarnings)
	totalDeductions := req.PFEmployee.
		Add(req.ESIEmployee).
		Add(req.ProfessionalTax).
		Add(req.TDS)

	p := payslip.Payslip{
		UserID:            req.UserID,
		Month:             req.Month,
		Year:              req.Year,
		BasicPay:          req.BasicPay,
		HRA:               req.HRA,
		SpecialAllowance:  req.SpecialAllowance,
		Bonus:             req.Bonus,
		Incentives:        req.Incentives,
		OtherEarnings:     req.OtherEarnings,
		TotalEarnings:     totalEarnings,
		PFEmployee:        req.PFEmployee,
		PFEmployer:        req.PFEmployer,
		ESIEmployee:       req.ESIEmployee,
		ESIEmployer:       req.ESIEmployer,
		ProfessionalTax:   req.ProfessionalTax,
		TDS:               req.TDS,
		OtherDeductions:   req.OtherDeductions,
		TotalDeductions:   totalDeductions,
		NetPay:            totalEarnings.Sub(totalDeductions),
		PaidDays:          req.PaidDays,
		LOPDays:           req.LOPDays,
		AttendanceSummary: req.AttendanceSummary,
		Status:            status,
	}

	stored, created, err := s.payslipRepo.Upsert(ctx, p, req.Override)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	s.recordAudit(ctx, stored, created, req.PerformedBy)

	return toPayslipResponse(stored), nil
}

func (s *payslipService) Update(ctx context.Context, req payslip.UpdatePayslipRequest) (payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payslip.PayslipResponse{}, err
	}

	if err := s.payslipRepo.UpdateFields(ctx, req); err != nil {
		return payslip.PayslipResponse{}, err
	}

	updated, err := s.payslipRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	return toPayslipResponse(updated), nil
}

func (s *payslipService) Get(ctx context.Context, id string) (payslip.PayslipResponse, error) {
	p, err := s.payslipRepo.GetByID(ctx, id)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}
	return toPayslipResponse(p), nil
}

func (s *payslipService) List(ctx context.Context, req payslip.ListPayslipsRequest) ([]payslip.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	payslips, err := s.payslipRepo.ListByPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return nil, err
	}

	responses := make([]payslip.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, toPayslipResponse(p))
	}
	return responses, nil
}

func (s *payslipService) Release(ctx context.Context, id, actor string) (payslip.PayslipResponse, error) {
	var p payslip.Payslip
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		current, err := s.payslipRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if current.Status == payslip.StatusReleased || current.Status == payslip.StatusLocked {
			return payslip.ErrPayslipAlreadyReleased
		}

		if err := s.stampIdentity(txCtx, current); err != nil {
			return err
		}

		p, err = s.payslipRepo.Release(txCtx, id, actor)
		return err
	})
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	s.recordAuditAction(ctx, p, audit.ActionPayslipReleased, actor)

	return toPayslipResponse(p), nil
}

func (s *payslipService) Lock(ctx context.Context, id, actor string) (payslip.PayslipResponse, error) {
	p, err := s.payslipRepo.Lock(ctx, id, actor)
	if err != nil {
		return payslip.PayslipResponse{}, err
	}

	s.recordAuditAction(ctx, p, audit.ActionPayslipLocked, actor)

	return toPayslipResponse(p), nil
}

// stampIdentity fills in the payslip number, employer identity and issue
// date on release, without touching values already set on the slip.
func (s *payslipService) stampIdentity(ctx context.Context, p payslip.Payslip) error {
	req := payslip.UpdatePayslipRequest{ID: p.ID}
	dirty := false

	if p.PayslipID == nil {
		number := fmt.Sprintf("PSL-%d%02d-%s", p.Year, p.Month, uuid.NewString()[:8])
		req.PayslipID = &number
		dirty = true
	}
	if p.CompanyName == nil && s.companyName != "" {
		name := s.companyName
		req.CompanyName = &name
		dirty = true
	}
	if p.CompanyAddress == nil && s.companyAddress != "" {
		addr := s.companyAddress
		req.CompanyAddress = &addr
		dirty = true
	}
	if p.IssueDate == nil {
		today := time.Now().UTC().Format("2006-01-02")
		req.IssueDate = &today
		dirty = true
	}

	if !dirty {
		return nil
	}
	return s.payslipRepo.UpdateFields(ctx, req)
}

// recordAudit writes a created/updated audit entry. Audit is best-effort: a
// failure is logged and never blocks the primary write.
func (s *payslipService) recordAudit(ctx context.Context, p payslip.Payslip, created bool, actor string) {
	action := audit.ActionPayslipUpdated
	if created {
		action = audit.ActionPayslipCreated
	}
	s.recordAuditAction(ctx, p, action, actor)
}

func (s *payslipService) recordAuditAction(ctx context.Context, p payslip.Payslip, action string, actor string) {
	err := s.auditRepo.Record(ctx, audit.Entry{
		UserID:      p.UserID,
		Action:      action,
		EntityType:  "payslip",
		EntityID:    p.ID,
		PerformedBy: actor,
		Details:     fmt.Sprintf("month=%d year=%d", p.Month, p.Year),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "audit record failed",
			slog.String("action", action),
			slog.String("entity_id", p.ID),
			slog.String("error", err.Error()))
	}
}

func toPayslipResponse(p payslip.Payslip) payslip.PayslipResponse {
	resp := payslip.PayslipResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		Month:             p.Month,
		Year:              p.Year,
		BasicPay:          p.BasicPay,
		HRA:               p.HRA,
		SpecialAllowance:  p.SpecialAllowance,
		Bonus:             p.Bonus,
		Incentives:        p.Incentives,
		OtherEarnings:     p.OtherEarnings,
		TotalEarnings:     p.TotalEarnings,
		PFEmployee:        p.PFEmployee,
		PFEmployer:        p.PFEmployer,
		ESIEmployee:       p.ESIEmployee,
		ESIEmployer:       p.ESIEmployer,
		ProfessionalTax:   p.ProfessionalTax,
		TDS:               p.TDS,
		OtherDeductions:   p.OtherDeductions,
		TotalDeductions:   p.TotalDeductions,
		NetPay:            p.NetPay,
		PaidDays:          p.PaidDays,
		LOPDays:           p.LOPDays,
		AttendanceSummary: p.AttendanceSummary,
		PayslipID:         p.PayslipID,
		DocumentURL:       p.DocumentURL,
		CompanyName:       p.CompanyName,
		CompanyAddress:    p.CompanyAddress,
		Status:            string(p.Status),
		IsLocked:          p.IsLocked,
		ReleasedBy:        p.ReleasedBy,
		LockedBy:          p.LockedBy,
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.IssueDate != nil {
		d := p.IssueDate.Format("2006-01-02")
		resp.IssueDate = &d
	}
	if p.ReleasedAt != nil {
		t := p.ReleasedAt.UTC().Format(time.RFC3339)
		resp.ReleasedAt = &t
	}
	if p.LockedAt != nil {
		t := p.LockedAt.UTC().Format(time.RFC3339)
		resp.LockedAt = &t
	}
	return resp
}
