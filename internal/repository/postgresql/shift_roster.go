package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

type shiftRosterRepository struct {
	db *database.DB
}

func NewShiftRosterRepository(db *database.DB) attendance.ShiftRosterRepository {
	return &shiftRosterRepository{db: db}
}

func (r *shiftRosterRepository) GetAssignments(ctx context.Context, start, end time.Time) ([]attendance.ShiftAssignment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, date, shift_type
		FROM shift_assignments
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, user_id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get shift assignments: %w", err)
	}
	defer rows.Close()

	var assignments []attendance.ShiftAssignment
	for rows.Next() {
		var a attendance.ShiftAssignment
		if err := rows.Scan(&a.UserID, &a.Date, &a.ShiftType); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		assignments = append(assignments, a)
	}

	return assignments, nil
}
