package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/domain/employee"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/validator"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.full_name, u.email, u.is_admin,
			   COALESCE(e.timezone, '') AS timezone,
			   p.join_date, e.joining_date,
			   s.pf_base_salary,
			   u.created_at, u.updated_at
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		LEFT JOIN employees e ON e.user_id = u.id
		LEFT JOIN employee_salaries s ON s.user_id = u.id
		WHERE u.deleted_at IS NULL AND u.is_active = true
		ORDER BY u.full_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	return employees, nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.full_name, u.email, u.is_admin,
			   COALESCE(e.timezone, '') AS timezone,
			   p.join_date, e.joining_date,
			   s.pf_base_salary,
			   u.created_at, u.updated_at
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		LEFT JOIN employees e ON e.user_id = u.id
		LEFT JOIN employee_salaries s ON s.user_id = u.id
		WHERE u.id = $1 AND u.deleted_at IS NULL
	`

	row := q.QueryRow(ctx, query, id)
	emp, err := scanEmployee(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

func (r *employeeRepository) GetJoinDate(ctx context.Context, userID string) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.join_date, e.joining_date
		FROM users u
		LEFT JOIN user_profiles p ON p.user_id = u.id
		LEFT JOIN employees e ON e.user_id = u.id
		WHERE u.id = $1
	`

	var profileDate *time.Time
	var employeeDate *string
	err := q.QueryRow(ctx, query, userID).Scan(&profileDate, &employeeDate)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, employee.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get join date: %w", err)
	}

	return resolveJoinDate(profileDate, employeeDate), nil
}

// resolveJoinDate prefers the typed profile date; the legacy employee column
// is free text and only trusted when it is a strict YYYY-MM-DD date.
func resolveJoinDate(profileDate *time.Time, employeeDate *string) *time.Time {
	if profileDate != nil {
		return profileDate
	}
	if employeeDate != nil {
		if parsed, ok := validator.IsValidDate(*employeeDate); ok {
			return &parsed
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	var profileDate *time.Time
	var employeeDate *string

	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.Email, &emp.IsAdmin,
		&emp.Timezone,
		&profileDate, &employeeDate,
		&emp.PFBaseSalary,
		&emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	emp.JoinDate = resolveJoinDate(profileDate, employeeDate)
	return emp, nil
}
