package issue

import (
	"context"
)

// IssueService defines business logic for issue reporting
type IssueService interface {
	// List retrieves every issue
	List(ctx context.Context) ([]Issue, error)

	// ListByEmployee retrieves issues reported by one employee
	ListByEmployee(ctx context.Context, employeeID int) ([]Issue, error)

	// ListByDepartment retrieves issues routed to a department. "hr"
	// sees everything; other departments match assignedTo or the
	// legacy department alias case-insensitively.
	ListByDepartment(ctx context.Context, department string) ([]Issue, error)

	// Create adds an Open issue, notifies the assigned department and
	// annotates the stored issue with the delivery outcome
	Create(ctx context.Context, req CreateIssueRequest) (Issue, error)

	// Update patches status (forward transitions only), assignment,
	// priority and resolution fields
	Update(ctx context.Context, id int, req UpdateIssueRequest) (Issue, error)

	// Delete removes an issue by id
	Delete(ctx context.Context, id int) error
}
