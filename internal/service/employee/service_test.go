package employee

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

func newEmployeeTestService(t *testing.T) *EmployeeServiceImpl {
	s, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return NewEmployeeService(s)
}

func TestEmployeeService_List_ReturnsSeedEmployees(t *testing.T) {
	svc := newEmployeeTestService(t)

	employees, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 3)
	assert.Equal(t, "John Doe", employees[0].Name)
	assert.Equal(t, "jane@company.com", employees[1].Email)
}

func TestEmployeeService_Create_RoundTrip(t *testing.T) {
	svc := newEmployeeTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:     "Alice",
		Email:    "alice@company.com",
		Position: "Developer",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, employee.DefaultLeaveBalance, created.LeaveBalance)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "alice@company.com", got.Email)
	assert.Equal(t, "Developer", got.Position)
	assert.Equal(t, 2, got.LeaveBalance)
}

func TestEmployeeService_Create_Validation(t *testing.T) {
	svc := newEmployeeTestService(t)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		Name:  "Alice",
		Email: "not-an-email",
	})
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 2)
}

func TestEmployeeService_Update_PartialFields(t *testing.T) {
	svc := newEmployeeTestService(t)
	ctx := context.Background()

	position := "Senior Developer"
	updated, err := svc.Update(ctx, 1, employee.UpdateEmployeeRequest{
		Position: &position,
	})
	require.NoError(t, err)

	// Only the provided field changes.
	assert.Equal(t, "Senior Developer", updated.Position)
	assert.Equal(t, "John Doe", updated.Name)
	assert.Equal(t, "john@company.com", updated.Email)
}

func TestEmployeeService_Update_NotFound(t *testing.T) {
	svc := newEmployeeTestService(t)

	name := "Nobody"
	_, err := svc.Update(context.Background(), 999, employee.UpdateEmployeeRequest{Name: &name})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Delete(t *testing.T) {
	svc := newEmployeeTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 2))

	_, err := svc.Get(ctx, 2)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	employees, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, employees, 2)

	assert.ErrorIs(t, svc.Delete(ctx, 2), employee.ErrEmployeeNotFound)
}

func TestEmployeeService_Create_IDsNotReusedAfterDelete(t *testing.T) {
	svc := newEmployeeTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, 3))

	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		Name:     "Carol",
		Email:    "carol@company.com",
		Position: "Analyst",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, created.ID)
}
