package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("attendance already marked for this employee on this date")
	ErrEmployeeNotFound    = errors.New("referenced employee not found")
)
