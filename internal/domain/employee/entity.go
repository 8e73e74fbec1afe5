package employee

import (
	"time"
)

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        string
	Department   string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Derived from attendance rows at read time, never stored.
	PresentDays int
}
