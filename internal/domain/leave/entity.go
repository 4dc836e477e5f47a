package leave

import (
	"time"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Reviewable statuses a pending request may move to. Approved and
// Rejected are terminal.
var ReviewStatuses = []string{
	string(StatusApproved),
	string(StatusRejected),
}

type LeaveRequest struct {
	ID          int        `json:"id"`
	EmployeeID  int        `json:"employeeId"`
	StartDate   string     `json:"startDate"`
	EndDate     string     `json:"endDate"`
	Type        string     `json:"type"`
	Reason      string     `json:"reason"`
	Status      Status     `json:"status"`
	RequestedAt time.Time  `json:"requestedAt"`
	ReviewedAt  *time.Time `json:"reviewedAt"`
}

// DaySpan returns the inclusive number of calendar days the request
// covers, e.g. 2024-01-01..2024-01-02 spans 2 days. Dates must already
// be validated as YYYY-MM-DD.
func (l *LeaveRequest) DaySpan() int {
	start, err := time.Parse("2006-01-02", l.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse("2006-01-02", l.EndDate)
	if err != nil {
		return 0
	}
	return int(end.Sub(start)/(24*time.Hour)) + 1
}
