package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record
	Create(ctx context.Context, newAttendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID with denormalized employee fields
	GetByID(ctx context.Context, id string) (Attendance, error)

	// ExistsByEmployeeAndDate reports whether a record for (employee, date)
	// exists, excluding excludeID when set. Used for friendly duplicate errors;
	// the unique index is the actual guarantee.
	ExistsByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, excludeID *string) (bool, error)

	// Update updates an existing attendance record
	Update(ctx context.Context, updated Attendance) (Attendance, error)

	// List retrieves attendance records with filters and pagination,
	// ordered by date descending
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error

	// DeleteByEmployee removes every attendance record owned by an employee.
	// Called inside the employee delete transaction; the FK cascade covers
	// any path that bypasses it.
	DeleteByEmployee(ctx context.Context, employeeID string) error
}
