package issue

import (
	"time"
)

type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

var ValidStatuses = []string{
	string(StatusOpen),
	string(StatusInProgress),
	string(StatusResolved),
	string(StatusClosed),
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

var ValidPriorities = []string{
	string(PriorityLow),
	string(PriorityMedium),
	string(PriorityHigh),
}

// statusRank orders the issue lifecycle. Transitions may skip forward
// but never move backward or stay in place.
var statusRank = map[Status]int{
	StatusOpen:       0,
	StatusInProgress: 1,
	StatusResolved:   2,
	StatusClosed:     3,
}

// CanTransition reports whether an issue may move from one status to
// another.
func CanTransition(from, to Status) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// IsTerminal reports whether a status stamps resolvedAt.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

type Issue struct {
	ID          int      `json:"id"`
	EmployeeID  int      `json:"employeeId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	AssignedTo  string   `json:"assignedTo"`
	// Department mirrors AssignedTo for older dashboard builds that
	// still read it.
	Department   string     `json:"department"`
	CreatedAt    time.Time  `json:"createdAt"`
	AssignedAt   time.Time  `json:"assignedAt"`
	ResolvedAt   *time.Time `json:"resolvedAt,omitempty"`
	ResolvedBy   *string    `json:"resolvedBy,omitempty"`
	Resolution   *string    `json:"resolution,omitempty"`
	ReassignedAt *time.Time `json:"reassignedAt,omitempty"`

	// Delivery annotations written after the post-create notification.
	EmailNotificationSent *bool    `json:"emailNotificationSent,omitempty"`
	EmailSentTo           []string `json:"emailSentTo,omitempty"`
	EmailError            *string  `json:"emailError,omitempty"`
}
