package task

import (
	"context"
)

// TaskService defines business logic for task tracking
type TaskService interface {
	// List retrieves tasks, optionally filtered by status. Recurring
	// tasks completed on an earlier day are rolled back to In Progress
	// before the filter applies.
	List(ctx context.Context, status string) ([]Task, error)

	// Get retrieves a single task by id
	Get(ctx context.Context, id int) (Task, error)

	// ListByEmployee retrieves all tasks assigned to one employee
	ListByEmployee(ctx context.Context, employeeID int) ([]Task, error)

	// Create adds a new In Progress task; deadline defaults to today
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)

	// Update completes a task (action=complete) or sets its status
	Update(ctx context.Context, id int, req UpdateTaskRequest) (Task, error)

	// Delete removes a task by id
	Delete(ctx context.Context, id int) error
}
