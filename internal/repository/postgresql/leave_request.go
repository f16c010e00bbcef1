package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/leave"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

func (r *leaveRequestRepository) GetApprovedInRange(ctx context.Context, start, end time.Time) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, session, status, reason, created_at, updated_at
		FROM leave_requests
		WHERE status = 'approved'
		  AND start_date <= $2 AND end_date >= $1
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var lr leave.LeaveRequest
		if err := rows.Scan(
			&lr.ID, &lr.UserID, &lr.LeaveType, &lr.StartDate, &lr.EndDate,
			&lr.Session, &lr.Status, &lr.Reason, &lr.CreatedAt, &lr.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, nil
}

func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (user_id, leave_type, start_date, end_date, session, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, leave_type, start_date, end_date, session, status, reason, created_at, updated_at
	`

	var created leave.LeaveRequest
	err := q.QueryRow(ctx, query,
		req.UserID, req.LeaveType, req.StartDate, req.EndDate, req.Session, req.Status, req.Reason,
	).Scan(
		&created.ID, &created.UserID, &created.LeaveType, &created.StartDate, &created.EndDate,
		&created.Session, &created.Status, &created.Reason, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}
