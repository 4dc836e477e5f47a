package employee

import (
	"context"
)

// EmployeeService defines business logic for employee records
type EmployeeService interface {
	// List retrieves every employee in insertion order
	List(ctx context.Context) ([]Employee, error)

	// Get retrieves a single employee by id
	Get(ctx context.Context, id int) (Employee, error)

	// Create adds a new employee with the default leave balance
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// Update applies a partial update; absent fields keep their value
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (Employee, error)

	// Delete removes an employee; related records are not cascaded
	Delete(ctx context.Context, id int) error
}
