package employee

import (
	"time"
)

type Employee struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Position         string    `json:"position"`
	Department       string    `json:"department,omitempty"`
	Role             string    `json:"role,omitempty"`
	LeaveBalance     int       `json:"leaveBalance"`
	LastBalanceReset time.Time `json:"lastBalanceReset"`
}

// DefaultLeaveBalance is granted on creation and restored by the
// monthly reset during leave approval.
const DefaultLeaveBalance = 2
