package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/attendance"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
)

type clockEventRepository struct {
	db *database.DB
}

func NewClockEventRepository(db *database.DB) attendance.ClockEventRepository {
	return &clockEventRepository{db: db}
}

func (r *clockEventRepository) GetDailySummaries(ctx context.Context, start, end time.Time) ([]attendance.ClockDay, error) {
	q := GetQuerier(ctx, r.db)

	// One row per (employee, date): earliest in, latest out, summed hours.
	// MAX(clock_out) stays NULL while any interval of the day is still open.
	query := `
		SELECT user_id, date,
			   MIN(clock_in) AS clock_in,
			   MAX(clock_out) AS clock_out,
			   COALESCE(SUM(total_hours), 0) AS total_hours
		FROM clock_events
		WHERE date BETWEEN $1 AND $2 AND clock_in IS NOT NULL
		GROUP BY user_id, date
		ORDER BY date, user_id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get clock summaries: %w", err)
	}
	defer rows.Close()

	var days []attendance.ClockDay
	for rows.Next() {
		var d attendance.ClockDay
		if err := rows.Scan(&d.UserID, &d.Date, &d.ClockIn, &d.ClockOut, &d.TotalHours); err != nil {
			return nil, fmt.Errorf("failed to scan clock summary: %w", err)
		}
		days = append(days, d)
	}

	return days, nil
}
