package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const uniqueViolationCode = "23505"

// mapEmployeeConstraintError translates unique-index violations into domain
// errors so that a create racing a concurrent duplicate still surfaces the
// same field error as the pre-check path.
func mapEmployeeConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		switch pgErr.ConstraintName {
		case "employees_employee_code_key":
			return employee.ErrEmployeeCodeExists
		case "employees_email_key":
			return employee.ErrEmailExists
		}
	}
	return err
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT e.id, e.employee_code, e.full_name, e.email, e.department,
			e.created_at, e.updated_at,
			COUNT(a.id) FILTER (WHERE a.status = 'Present') AS present_days
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.id
		WHERE e.id = $1
		GROUP BY e.id
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.Department,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.PresentDays,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (employee_code, full_name, email, department)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_code, full_name, email, department, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.EmployeeCode, newEmployee.FullName, newEmployee.Email, newEmployee.Department,
	).Scan(
		&created.ID, &created.EmployeeCode, &created.FullName, &created.Email,
		&created.Department, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, mapEmployeeConstraintError(err)
	}

	return created, nil
}

// ExistsByCode implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByCode(ctx context.Context, employeeCode string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE employee_code = $1 AND ($2::uuid IS NULL OR id <> $2))`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeCode, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check employee code existence: %w", err)
	}
	return exists, nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ExistsByEmail(ctx context.Context, email string, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND ($2::uuid IS NULL OR id <> $2))`

	var exists bool
	if err := q.QueryRow(ctx, query, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, updated employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET employee_code = $1, full_name = $2, email = $3, department = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, employee_code, full_name, email, department, created_at, updated_at
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query,
		updated.EmployeeCode, updated.FullName, updated.Email, updated.Department, updated.ID,
	).Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email,
		&emp.Department, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, mapEmployeeConstraintError(err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository. Each employee is annotated with
// present_days in the same grouped query so listing stays a single round trip
// regardless of employee count.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
		SELECT e.id, e.employee_code, e.full_name, e.email, e.department,
			e.created_at, e.updated_at,
			COUNT(a.id) FILTER (WHERE a.status = 'Present') AS present_days
		FROM employees e
		LEFT JOIN attendance a ON a.employee_id = e.id
		GROUP BY e.id
		ORDER BY e.full_name ASC, e.id ASC
		LIMIT $1 OFFSET $2
	`

	offset := (filter.Page - 1) * filter.Limit
	rows, err := q.Query(ctx, query, filter.Limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.Department,
			&emp.CreatedAt, &emp.UpdatedAt, &emp.PresentDays,
		)
		if err != nil {
			return nil, 0, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
