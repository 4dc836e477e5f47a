package attendance

import (
	"time"
)

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusWFH     Status = "WFH"
)

// ValidStatuses lists the accepted attendance statuses.
var ValidStatuses = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusWFH),
}

// Record is one attendance mark. At most one record exists per
// (EmployeeID, Date) pair; marking again replaces the previous record.
type Record struct {
	ID         int       `json:"id"`
	EmployeeID int       `json:"employeeId"`
	Date       string    `json:"date"`
	Status     Status    `json:"status"`
	MarkedAt   time.Time `json:"markedAt"`
}
