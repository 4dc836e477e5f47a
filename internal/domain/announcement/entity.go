package announcement

import (
	"time"
)

const (
	TypeCompany    = "company"
	TypeIndividual = "individual"
)

var ValidTypes = []string{TypeCompany, TypeIndividual}

type Announcement struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	// TargetEmployeeID is set only for individual announcements.
	TargetEmployeeID *int      `json:"targetEmployeeId"`
	CreatedAt        time.Time `json:"createdAt"`
}
