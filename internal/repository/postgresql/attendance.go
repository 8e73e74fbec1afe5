package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

func mapAttendanceConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolationCode && pgErr.ConstraintName == "attendance_employee_id_date_key":
			return attendance.ErrDuplicateAttendance
		case pgErr.Code == "23503": // foreign key violation
			return attendance.ErrEmployeeNotFound
		}
	}
	return err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		WITH inserted AS (
			INSERT INTO attendance (employee_id, date, status)
			VALUES ($1, $2, $3)
			RETURNING id, employee_id, date, status, created_at, updated_at
		)
		SELECT i.id, i.employee_id, i.date, i.status, i.created_at, i.updated_at,
			e.full_name, e.employee_code
		FROM inserted i
		JOIN employees e ON e.id = i.employee_id
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID, newAttendance.Date, newAttendance.Status,
	).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status,
		&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName, &att.EmployeeCode,
	)
	if err != nil {
		return attendance.Attendance{}, mapAttendanceConstraintError(err)
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at,
			e.full_name, e.employee_code
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status,
		&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName, &att.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// ExistsByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID *string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS(
			SELECT 1 FROM attendance
			WHERE employee_id = $1 AND date = $2 AND ($3::uuid IS NULL OR id <> $3)
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, date, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check attendance existence: %w", err)
	}
	return exists, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, updated attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		WITH changed AS (
			UPDATE attendance
			SET employee_id = $1, date = $2, status = $3, updated_at = NOW()
			WHERE id = $4
			RETURNING id, employee_id, date, status, created_at, updated_at
		)
		SELECT c.id, c.employee_id, c.date, c.status, c.created_at, c.updated_at,
			e.full_name, e.employee_code
		FROM changed c
		JOIN employees e ON e.id = c.employee_id
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query,
		updated.EmployeeID, updated.Date, updated.Status, updated.ID,
	).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.Status,
		&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName, &att.EmployeeCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, mapAttendanceConstraintError(err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository. Filter predicates combine
// with AND; the from/to pair only applies when both ends are present.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{}
	args := []interface{}{}

	if filter.Date != nil {
		args = append(args, *filter.Date)
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", len(args)))
	}
	if filter.From != nil && filter.To != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", len(args)))
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendance a %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.employee_id, a.date, a.status, a.created_at, a.updated_at,
			e.full_name, e.employee_code
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		%s
		ORDER BY a.date DESC, a.id DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.Status,
			&att.CreatedAt, &att.UpdatedAt, &att.EmployeeName, &att.EmployeeCode,
		)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, att)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// DeleteByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepository) DeleteByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, a.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendance WHERE employee_id = $1`, employeeID); err != nil {
		return fmt.Errorf("failed to delete attendance for employee %s: %w", employeeID, err)
	}

	return nil
}
