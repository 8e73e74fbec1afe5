package database

import (
	"context"
	"fmt"
	"log/slog"
)

// RunMigrations applies the schema required by the application. Statements are
// idempotent so the runner is safe to execute on every startup.
//
// The unique indexes and the ON DELETE CASCADE foreign key are the actual
// correctness guarantees under concurrent requests; application-level checks
// only exist to produce friendlier error messages.
func RunMigrations(ctx context.Context, db *DB) error {
	slog.Info("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id UUID PRIMARY KEY DEFAULT uuidv7(),
			employee_code TEXT NOT NULL,
			full_name TEXT NOT NULL,
			email TEXT NOT NULL,
			department TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT employees_employee_code_key UNIQUE (employee_code),
			CONSTRAINT employees_email_key UNIQUE (email)
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT uuidv7(),
			employee_id UUID NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
			date DATE NOT NULL,
			status TEXT NOT NULL CHECK (status IN ('Present', 'Absent')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT attendance_employee_id_date_key UNIQUE (employee_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance (date DESC)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	slog.Info("Database migrations completed successfully")
	return nil
}
