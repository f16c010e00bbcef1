package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/payslip"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

type payslipRepository struct {
	db *database.DB
}

func NewPayslipRepository(db *database.DB) payslip.PayslipRepository {
	return &payslipRepository{db: db}
}

const payslipColumns = `
	ps.id, ps.user_id, ps.month, ps.year,
	ps.basic_pay, ps.hra, ps.special_allowance, ps.bonus, ps.incentives, ps.other_earnings, ps.total_earnings,
	ps.pf_employee, ps.pf_employer, ps.esi_employee, ps.esi_employer, ps.professional_tax, ps.tds, ps.other_deductions, ps.total_deductions,
	ps.net_pay, ps.paid_days, ps.lop_days, ps.attendance_summary,
	ps.payslip_id, ps.document_url, ps.company_name, ps.company_address, ps.issue_date,
	ps.status, ps.is_locked, ps.released_at, ps.released_by, ps.locked_at, ps.locked_by,
	ps.created_at, ps.updated_at`

func scanPayslip(row pgx.Row, withName bool) (payslip.Payslip, error) {
	var p payslip.Payslip
	dest := []any{
		&p.ID, &p.UserID, &p.Month, &p.Year,
		&p.BasicPay, &p.HRA, &p.SpecialAllowance, &p.Bonus, &p.Incentives, &p.OtherEarnings, &p.TotalEarnings,
		&p.PFEmployee, &p.PFEmployer, &p.ESIEmployee, &p.ESIEmployer, &p.ProfessionalTax, &p.TDS, &p.OtherDeductions, &p.TotalDeductions,
		&p.NetPay, &p.PaidDays, &p.LOPDays, &p.AttendanceSummary,
		&p.PayslipID, &p.DocumentURL, &p.CompanyName, &p.CompanyAddress, &p.IssueDate,
		&p.Status, &p.IsLocked, &p.ReleasedAt, &p.ReleasedBy, &p.LockedAt, &p.LockedBy,
		&p.CreatedAt, &p.UpdatedAt,
	}
	if withName {
		dest = append(dest, &p.EmployeeName)
	}
	if err := row.Scan(dest...); err != nil {
		return payslip.Payslip{}, err
	}
	return p, nil
}

func (r *payslipRepository) GetByID(ctx context.Context, id string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, u.full_name AS employee_name
		FROM payslips ps
		JOIN users u ON ps.user_id = u.id
		WHERE ps.id = $1
	`, payslipColumns)

	p, err := scanPayslip(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) GetByUserPeriod(ctx context.Context, userID string, month, year int) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM payslips ps
		WHERE ps.user_id = $1 AND ps.month = $2 AND ps.year = $3
	`, payslipColumns)

	p, err := scanPayslip(q.QueryRow(ctx, query, userID, month, year), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) ListByPeriod(ctx context.Context, month, year int) ([]payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s, u.full_name AS employee_name
		FROM payslips ps
		JOIN users u ON ps.user_id = u.id
		WHERE ps.month = $1 AND ps.year = $2
		ORDER BY u.full_name
	`, payslipColumns)

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payslip.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, nil
}

func (r *payslipRepository) Upsert(ctx context.Context, p payslip.Payslip, override bool) (payslip.Payslip, bool, error) {
	q := GetQuerier(ctx, r.db)

	var isLocked bool
	created := false
	err := q.QueryRow(ctx,
		`SELECT is_locked FROM payslips WHERE user_id = $1 AND month = $2 AND year = $3`,
		p.UserID, p.Month, p.Year,
	).Scan(&isLocked)
	if err != nil {
		if err != pgx.ErrNoRows {
			return payslip.Payslip{}, false, fmt.Errorf("failed to check payslip lock: %w", err)
		}
		created = true
	}
	if !created && isLocked && !override {
		return payslip.Payslip{}, false, payslip.ErrPayslipLocked
	}

	// The conflict WHERE re-checks the lock so a row locked between the
	// check above and this statement is still left untouched.
	query := fmt.Sprintf(`
		INSERT INTO payslips AS ps (
			user_id, month, year,
			basic_pay, hra, special_allowance, bonus, incentives, other_earnings, total_earnings,
			pf_employee, pf_employer, esi_employee, esi_employer, professional_tax, tds, other_deductions, total_deductions,
			net_pay, paid_days, lop_days, attendance_summary, status, is_locked
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, false)
		ON CONFLICT (user_id, month, year) DO UPDATE SET
			basic_pay = EXCLUDED.basic_pay,
			hra = EXCLUDED.hra,
			special_allowance = EXCLUDED.special_allowance,
			bonus = EXCLUDED.bonus,
			incentives = EXCLUDED.incentives,
			other_earnings = EXCLUDED.other_earnings,
			total_earnings = EXCLUDED.total_earnings,
			pf_employee = EXCLUDED.pf_employee,
			pf_employer = EXCLUDED.pf_employer,
			esi_employee = EXCLUDED.esi_employee,
			esi_employer = EXCLUDED.esi_employer,
			professional_tax = EXCLUDED.professional_tax,
			tds = EXCLUDED.tds,
			other_deductions = EXCLUDED.other_deductions,
			total_deductions = EXCLUDED.total_deductions,
			net_pay = EXCLUDED.net_pay,
			paid_days = EXCLUDED.paid_days,
			lop_days = EXCLUDED.lop_days,
			attendance_summary = EXCLUDED.attendance_summary,
			status = CASE WHEN ps.is_locked AND NOT $24 THEN ps.status ELSE EXCLUDED.status END,
			updated_at = NOW()
		WHERE NOT ps.is_locked OR $24
		RETURNING %s
	`, strings.ReplaceAll(payslipColumns, "ps.", ""))

	stored, err := scanPayslip(q.QueryRow(ctx, query,
		p.UserID, p.Month, p.Year,
		p.BasicPay, p.HRA, p.SpecialAllowance, p.Bonus, p.Incentives, p.OtherEarnings, p.TotalEarnings,
		p.PFEmployee, p.PFEmployer, p.ESIEmployee, p.ESIEmployer, p.ProfessionalTax, p.TDS, p.OtherDeductions, p.TotalDeductions,
		p.NetPay, p.PaidDays, p.LOPDays, p.AttendanceSummary, p.Status,
		override,
	), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, false, payslip.ErrPayslipLocked
		}
		return payslip.Payslip{}, false, fmt.Errorf("failed to upsert payslip: %w", err)
	}

	return stored, created, nil
}

func (r *payslipRepository) UpdateFields(ctx context.Context, req payslip.UpdatePayslipRequest) error {
	q := GetQuerier(ctx, r.db)

	var isLocked bool
	err := q.QueryRow(ctx, `SELECT is_locked FROM payslips WHERE id = $1`, req.ID).Scan(&isLocked)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.ErrPayslipNotFound
		}
		return fmt.Errorf("failed to check payslip lock: %w", err)
	}
	if isLocked {
		return payslip.ErrPayslipLocked
	}

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	// Identifier columns keep their stored value while locked, so a racing
	// lock never lets a partial payload blank or overwrite them.
	lockGuarded := func(column string, value interface{}) {
		setParts = append(setParts, fmt.Sprintf("%s = CASE WHEN is_locked THEN %s ELSE $%d END", column, column, argIdx))
		args = append(args, value)
		argIdx++
	}

	if req.PayslipID != nil {
		lockGuarded("payslip_id", *req.PayslipID)
	}
	if req.DocumentURL != nil {
		lockGuarded("document_url", *req.DocumentURL)
	}
	if req.Status != nil {
		lockGuarded("status", *req.Status)
	}
	if req.CompanyName != nil {
		lockGuarded("company_name", *req.CompanyName)
	}
	if req.CompanyAddress != nil {
		lockGuarded("company_address", *req.CompanyAddress)
	}
	if req.IssueDate != nil {
		issueDate, err := time.Parse("2006-01-02", *req.IssueDate)
		if err == nil {
			lockGuarded("issue_date", issueDate)
		}
	}
	if req.OtherEarnings != nil {
		setParts = append(setParts, fmt.Sprintf("other_earnings = $%d", argIdx))
		args = append(args, *req.OtherEarnings)
		argIdx++
	}
	if req.OtherDeduction != nil {
		setParts = append(setParts, fmt.Sprintf("other_deductions = $%d", argIdx))
		args = append(args, *req.OtherDeduction)
		argIdx++
	}

	// Totals follow adjusted earnings/deductions. Other deductions are
	// informational and excluded from net, matching the generator.
	if req.OtherEarnings != nil || req.OtherDeduction != nil {
		setParts = append(setParts, `
			total_earnings = basic_pay + hra + special_allowance + bonus + incentives + other_earnings,
			net_pay = basic_pay + hra + special_allowance + bonus + incentives + other_earnings - total_deductions
		`)
	}

	query := fmt.Sprintf(`
		UPDATE payslips
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err = q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.ErrPayslipNotFound
		}
		return fmt.Errorf("failed to update payslip: %w", err)
	}

	return nil
}

func (r *payslipRepository) Release(ctx context.Context, id, actor string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	var status string
	err := q.QueryRow(ctx, `SELECT status FROM payslips WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to check payslip status: %w", err)
	}
	if status == string(payslip.StatusReleased) || status == string(payslip.StatusLocked) {
		return payslip.Payslip{}, payslip.ErrPayslipAlreadyReleased
	}

	query := fmt.Sprintf(`
		UPDATE payslips
		SET status = 'released', released_at = NOW(), released_by = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, strings.ReplaceAll(payslipColumns, "ps.", ""))

	p, err := scanPayslip(q.QueryRow(ctx, query, id, actor), false)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to release payslip: %w", err)
	}

	return p, nil
}

func (r *payslipRepository) Lock(ctx context.Context, id, actor string) (payslip.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	var isLocked bool
	err := q.QueryRow(ctx, `SELECT is_locked FROM payslips WHERE id = $1`, id).Scan(&isLocked)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payslip.Payslip{}, payslip.ErrPayslipNotFound
		}
		return payslip.Payslip{}, fmt.Errorf("failed to check payslip lock: %w", err)
	}
	if isLocked {
		return payslip.Payslip{}, payslip.ErrPayslipAlreadyLocked
	}

	query := fmt.Sprintf(`
		UPDATE payslips
		SET status = 'locked', is_locked = true, locked_at = NOW(), locked_by = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING %s
	`, strings.ReplaceAll(payslipColumns, "ps.", ""))

	p, err := scanPayslip(q.QueryRow(ctx, query, id, actor), false)
	if err != nil {
		return payslip.Payslip{}, fmt.Errorf("failed to lock payslip: %w", err)
	}

	return p, nil
}
