package postgresql_test

import (
	"context"
	"fmt"
	"testing"

	employeeDomain "github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the unique indexes directly, bypassing the service-level
// pre-checks, so the constraint-name translation stays in line with the DDL.
// This is the path a create racing a concurrent duplicate takes.

func TestEmployeeRepository_Create_DuplicateCodeConstraint(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewEmployeeRepository(testDB)

	code := "EMP-" + uuid.NewString()[:8]
	_, err := repo.Create(ctx, employeeDomain.Employee{
		EmployeeCode: code,
		FullName:     "First",
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()[:13]),
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employeeDomain.Employee{
		EmployeeCode: code,
		FullName:     "Second",
		Email:        fmt.Sprintf("%s@example.com", uuid.NewString()[:13]),
	})
	assert.ErrorIs(t, err, employeeDomain.ErrEmployeeCodeExists)
}

func TestEmployeeRepository_Create_DuplicateEmailConstraint(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewEmployeeRepository(testDB)

	email := fmt.Sprintf("%s@example.com", uuid.NewString()[:13])
	_, err := repo.Create(ctx, employeeDomain.Employee{
		EmployeeCode: "EMP-" + uuid.NewString()[:8],
		FullName:     "First",
		Email:        email,
	})
	require.NoError(t, err)

	_, err = repo.Create(ctx, employeeDomain.Employee{
		EmployeeCode: "EMP-" + uuid.NewString()[:8],
		FullName:     "Second",
		Email:        email,
	})
	assert.ErrorIs(t, err, employeeDomain.ErrEmailExists)
}

func TestEmployeeRepository_Update_DuplicateConstraints(t *testing.T) {
	ctx := context.Background()
	truncateTables(t, ctx)
	repo := postgresql.NewEmployeeRepository(testDB)

	first := createRepoTestEmployee(t, ctx)
	second := createRepoTestEmployee(t, ctx)

	second.Email = first.Email
	_, err := repo.Update(ctx, second)
	assert.ErrorIs(t, err, employeeDomain.ErrEmailExists)

	second.Email = fmt.Sprintf("%s@example.com", uuid.NewString()[:13])
	second.EmployeeCode = first.EmployeeCode
	_, err = repo.Update(ctx, second)
	assert.ErrorIs(t, err, employeeDomain.ErrEmployeeCodeExists)
}
