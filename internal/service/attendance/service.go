package attendance

import (
	"context"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

type AttendanceServiceImpl struct {
	store *store.Store
	now   func() time.Time
}

func NewAttendanceService(s *store.Store) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		store: s,
		now:   time.Now,
	}
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, date string) ([]attendance.Record, error) {
	result := []attendance.Record{}
	s.store.View(func(d *store.Document) {
		for _, r := range d.Attendance {
			if date == "" || r.Date == date {
				result = append(result, r)
			}
		}
	})
	return result, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID int) ([]attendance.Record, error) {
	result := []attendance.Record{}
	s.store.View(func(d *store.Document) {
		for _, r := range d.Attendance {
			if r.EmployeeID == employeeID {
				result = append(result, r)
			}
		}
	})
	return result, nil
}

// Mark implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}

	var created attendance.Record
	err := s.store.Update(func(d *store.Document) error {
		// Replace any existing record for this employee and date.
		kept := d.Attendance[:0]
		for _, r := range d.Attendance {
			if !(r.EmployeeID == req.EmployeeID && r.Date == req.Date) {
				kept = append(kept, r)
			}
		}
		d.Attendance = kept

		created = attendance.Record{
			ID:         d.NextID(store.CollectionAttendance),
			EmployeeID: req.EmployeeID,
			Date:       req.Date,
			Status:     attendance.Status(req.Status),
			MarkedAt:   s.now(),
		}
		d.Attendance = append(d.Attendance, created)
		return nil
	})
	if err != nil {
		return attendance.Record{}, err
	}
	return created, nil
}

// Delete implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Delete(ctx context.Context, id int) error {
	return s.store.Update(func(d *store.Document) error {
		for i := range d.Attendance {
			if d.Attendance[i].ID == id {
				d.Attendance = append(d.Attendance[:i], d.Attendance[i+1:]...)
				return nil
			}
		}
		return attendance.ErrRecordNotFound
	})
}
