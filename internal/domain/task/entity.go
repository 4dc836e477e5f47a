package task

import (
	"time"
)

type Status string

const (
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// ValidStatuses lists the accepted task statuses. Tasks move freely
// between the two: completing sets Completed, recurring tasks roll
// back to In Progress on the next day's listing.
var ValidStatuses = []string{
	string(StatusInProgress),
	string(StatusCompleted),
}

type Task struct {
	ID          int    `json:"id"`
	EmployeeID  int    `json:"employeeId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
	Status      Status `json:"status"`
	IsRecurring bool   `json:"isRecurring"`
	// LastCompletedDate is the YYYY-MM-DD day a recurring task was last
	// completed; nil until the first completion.
	LastCompletedDate *string    `json:"lastCompletedDate"`
	CreatedAt         time.Time  `json:"createdAt"`
	CompletedAt       *time.Time `json:"completedAt"`
	ApprovedAt        *time.Time `json:"approvedAt"`
}
