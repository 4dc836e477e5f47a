package workhours

import (
	"math"
	"time"
)

// StandardWorkDayHours is the baseline above which time counts as
// overtime.
const StandardWorkDayHours = 8.0

// Entry is one check-in/check-out pair. CheckOut stays nil while the
// entry is open; at most one open entry exists per (EmployeeID, Date).
type Entry struct {
	ID         int        `json:"id"`
	EmployeeID int        `json:"employeeId"`
	Date       string     `json:"date"`
	CheckIn    time.Time  `json:"checkIn"`
	CheckOut   *time.Time `json:"checkOut"`
	TotalHours float64    `json:"totalHours"`
	Overtime   float64    `json:"overtime"`
}

// Close stamps the check-out time and computes the derived hour
// totals, rounded to two decimals.
func (e *Entry) Close(checkOut time.Time) {
	e.CheckOut = &checkOut
	hours := checkOut.Sub(e.CheckIn).Hours()
	e.TotalHours = Round2(hours)
	e.Overtime = Round2(math.Max(0, hours-StandardWorkDayHours))
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type WeeklySummary struct {
	TotalHours    float64 `json:"totalHours"`
	TotalOvertime float64 `json:"totalOvertime"`
	Entries       []Entry `json:"entries"`
}
