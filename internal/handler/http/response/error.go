package response

import (
	"errors"
	"net/http"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Uniqueness violations are
// reported as field-level validation errors so clients can attach the message
// to the offending input.
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Employee domain errors
	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		ValidationError(w, map[string]string{"employee_id": "Employee ID already exists."})
	case errors.Is(err, employee.ErrEmailExists):
		ValidationError(w, map[string]string{"email": "Email already exists."})

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		ValidationError(w, map[string]string{"non_field_errors": "Attendance already marked for this employee on this date."})
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		ValidationError(w, map[string]string{"employee": "Employee not found."})

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
