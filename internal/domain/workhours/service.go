package workhours

import (
	"context"
)

// WorkHoursService defines business logic for check-in/check-out
type WorkHoursService interface {
	// List retrieves every entry
	List(ctx context.Context) ([]Entry, error)

	// ListByEmployee retrieves all entries for one employee
	ListByEmployee(ctx context.Context, employeeID int) ([]Entry, error)

	// CheckIn opens today's entry; at most one open entry may exist
	// per employee per day
	CheckIn(ctx context.Context, req CheckInRequest) (Entry, error)

	// CheckOut closes today's open entry and computes hour totals
	CheckOut(ctx context.Context, req CheckOutRequest) (Entry, error)

	// WeeklySummary sums hours and overtime over the past seven days
	WeeklySummary(ctx context.Context, employeeID int) (WeeklySummary, error)
}
