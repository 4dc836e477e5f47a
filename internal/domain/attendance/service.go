package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance marking
type AttendanceService interface {
	// List retrieves all records, optionally filtered by date
	List(ctx context.Context, date string) ([]Record, error)

	// ListByEmployee retrieves all records for one employee
	ListByEmployee(ctx context.Context, employeeID int) ([]Record, error)

	// Mark records attendance for a day, replacing any prior record
	// for the same employee and date
	Mark(ctx context.Context, req MarkAttendanceRequest) (Record, error)

	// Delete removes a record by id
	Delete(ctx context.Context, id int) error
}
