package leave

import (
	"context"
)

// LeaveService defines business logic for leave requests
type LeaveService interface {
	// List retrieves requests, optionally filtered by status
	List(ctx context.Context, status string) ([]LeaveRequest, error)

	// Get retrieves a single request by id
	Get(ctx context.Context, id int) (LeaveRequest, error)

	// ListByEmployee retrieves all requests for one employee
	ListByEmployee(ctx context.Context, employeeID int) ([]LeaveRequest, error)

	// Create adds a new Pending request and notifies the reviewers
	Create(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)

	// Review approves or rejects a pending request. Approval resets
	// the employee's balance on a new calendar month, then deducts the
	// inclusive day span, failing with ErrInsufficientBalance if the
	// balance cannot cover it.
	Review(ctx context.Context, id int, req ReviewLeaveRequestRequest) (LeaveRequest, error)

	// Delete removes a request by id
	Delete(ctx context.Context, id int) error
}
