package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID, annotated with present_days
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee creates a new employee after uniqueness validation
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial update to an existing employee
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// DeleteEmployee deletes an employee and all of its attendance records
	DeleteEmployee(ctx context.Context, id string) error

	// ListEmployees lists employees ordered by full name, annotated with present_days
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)
}
