package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

type leaveBalanceRepository struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.LeaveBalanceRepository {
	return &leaveBalanceRepository{db: db}
}

func (r *leaveBalanceRepository) GetByUserAndYear(ctx context.Context, userID, financialYear string) ([]leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, financial_year,
			   opening_balance, availed, lapse, balance, created_at, updated_at
		FROM leave_balances
		WHERE user_id = $1 AND financial_year = $2
		ORDER BY leave_type
	`

	rows, err := q.Query(ctx, query, userID, financialYear)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.LeaveBalance
	for rows.Next() {
		var b leave.LeaveBalance
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.LeaveType, &b.FinancialYear,
			&b.OpeningBalance, &b.Availed, &b.Lapse, &b.Balance, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave balance: %w", err)
		}
		balances = append(balances, b)
	}

	return balances, nil
}

func (r *leaveBalanceRepository) Create(ctx context.Context, balance leave.LeaveBalance) (leave.LeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	// The unique key collapses concurrent lazy creations into one row; the
	// later writer wins on the figures.
	query := `
		INSERT INTO leave_balances (user_id, leave_type, financial_year, opening_balance, availed, lapse, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, leave_type, financial_year) DO UPDATE SET
			balance = EXCLUDED.balance,
			updated_at = NOW()
		RETURNING id, user_id, leave_type, financial_year,
			opening_balance, availed, lapse, balance, created_at, updated_at
	`

	var created leave.LeaveBalance
	err := q.QueryRow(ctx, query,
		balance.UserID, balance.LeaveType, balance.FinancialYear,
		balance.OpeningBalance, balance.Availed, balance.Lapse, balance.Balance,
	).Scan(
		&created.ID, &created.UserID, &created.LeaveType, &created.FinancialYear,
		&created.OpeningBalance, &created.Availed, &created.Lapse, &created.Balance,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveBalance{}, fmt.Errorf("failed to create leave balance: %w", err)
	}

	return created, nil
}

func (r *leaveBalanceRepository) UpdateBalance(ctx context.Context, id string, balance float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET balance = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query, id, balance).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.ErrBalanceNotFound
		}
		return fmt.Errorf("failed to update leave balance: %w", err)
	}

	return nil
}
