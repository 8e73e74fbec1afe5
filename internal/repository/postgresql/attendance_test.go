package postgresql_test

import (
	"context"
	"testing"
	"time"

	attendanceDomain "github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceRepository_Create_DuplicatePairConstraint(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewAttendanceRepository(testDB)
	emp := createRepoTestEmployee(t, ctx)

	date := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(ctx, attendanceDomain.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		Status:     attendanceDomain.StatusPresent,
	})
	require.NoError(t, err)

	// Same pair, different status: the unique index decides, not the status.
	_, err = repo.Create(ctx, attendanceDomain.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		Status:     attendanceDomain.StatusAbsent,
	})
	assert.ErrorIs(t, err, attendanceDomain.ErrDuplicateAttendance)
}

func TestAttendanceRepository_Update_DuplicatePairConstraint(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewAttendanceRepository(testDB)
	emp := createRepoTestEmployee(t, ctx)

	first := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC)

	_, err := repo.Create(ctx, attendanceDomain.Attendance{
		EmployeeID: emp.ID, Date: first, Status: attendanceDomain.StatusPresent,
	})
	require.NoError(t, err)
	rec, err := repo.Create(ctx, attendanceDomain.Attendance{
		EmployeeID: emp.ID, Date: second, Status: attendanceDomain.StatusPresent,
	})
	require.NoError(t, err)

	rec.Date = first
	_, err = repo.Update(ctx, rec)
	assert.ErrorIs(t, err, attendanceDomain.ErrDuplicateAttendance)
}

func TestAttendanceRepository_Create_UnknownEmployeeConstraint(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewAttendanceRepository(testDB)

	// Well-formed uuid with no matching employee row trips the foreign key.
	_, err := repo.Create(ctx, attendanceDomain.Attendance{
		EmployeeID: uuid.NewString(),
		Date:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:     attendanceDomain.StatusPresent,
	})
	assert.ErrorIs(t, err, attendanceDomain.ErrEmployeeNotFound)
}
