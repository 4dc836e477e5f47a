package workhours

import (
	"context"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

type WorkHoursServiceImpl struct {
	store *store.Store
	now   func() time.Time
}

func NewWorkHoursService(s *store.Store) *WorkHoursServiceImpl {
	return &WorkHoursServiceImpl{
		store: s,
		now:   time.Now,
	}
}

// List implements workhours.WorkHoursService.
func (s *WorkHoursServiceImpl) List(ctx context.Context) ([]workhours.Entry, error) {
	result := []workhours.Entry{}
	s.store.View(func(d *store.Document) {
		result = append(result, d.WorkHours...)
	})
	return result, nil
}

// ListByEmployee implements workhours.WorkHoursService.
func (s *WorkHoursServiceImpl) ListByEmployee(ctx context.Context, employeeID int) ([]workhours.Entry, error) {
	result := []workhours.Entry{}
	s.store.View(func(d *store.Document) {
		for _, e := range d.WorkHours {
			if e.EmployeeID == employeeID {
				result = append(result, e)
			}
		}
	})
	return result, nil
}

// CheckIn implements workhours.WorkHoursService.
func (s *WorkHoursServiceImpl) CheckIn(ctx context.Context, req workhours.CheckInRequest) (workhours.Entry, error) {
	if err := req.Validate(); err != nil {
		return workhours.Entry{}, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	var created workhours.Entry
	err := s.store.Update(func(d *store.Document) error {
		for _, e := range d.WorkHours {
			if e.EmployeeID == req.EmployeeID && e.Date == today && e.CheckOut == nil {
				return workhours.ErrAlreadyCheckedIn
			}
		}

		created = workhours.Entry{
			ID:         d.NextID(store.CollectionWorkHours),
			EmployeeID: req.EmployeeID,
			Date:       today,
			CheckIn:    now,
		}
		d.WorkHours = append(d.WorkHours, created)
		return nil
	})
	if err != nil {
		return workhours.Entry{}, err
	}
	return created, nil
}

// CheckOut implements workhours.WorkHoursService.
func (s *WorkHoursServiceImpl) CheckOut(ctx context.Context, req workhours.CheckOutRequest) (workhours.Entry, error) {
	if err := req.Validate(); err != nil {
		return workhours.Entry{}, err
	}

	now := s.now()
	today := now.Format("2006-01-02")

	var closed workhours.Entry
	err := s.store.Update(func(d *store.Document) error {
		for i := range d.WorkHours {
			e := &d.WorkHours[i]
			if e.EmployeeID == req.EmployeeID && e.Date == today && e.CheckOut == nil {
				e.Close(now)
				closed = *e
				return nil
			}
		}
		return workhours.ErrNoOpenEntry
	})
	if err != nil {
		return workhours.Entry{}, err
	}
	return closed, nil
}

// WeeklySummary implements workhours.WorkHoursService.
func (s *WorkHoursServiceImpl) WeeklySummary(ctx context.Context, employeeID int) (workhours.WeeklySummary, error) {
	today := s.now()
	weekAgo := today.AddDate(0, 0, -7)

	summary := workhours.WeeklySummary{Entries: []workhours.Entry{}}
	s.store.View(func(d *store.Document) {
		for _, e := range d.WorkHours {
			if e.EmployeeID != employeeID {
				continue
			}
			entryDate, err := time.Parse("2006-01-02", e.Date)
			if err != nil {
				continue
			}
			if entryDate.Before(weekAgo) || entryDate.After(today) {
				continue
			}
			summary.Entries = append(summary.Entries, e)
			summary.TotalHours += e.TotalHours
			summary.TotalOvertime += e.Overtime
		}
	})
	summary.TotalHours = workhours.Round2(summary.TotalHours)
	summary.TotalOvertime = workhours.Round2(summary.TotalOvertime)
	return summary, nil
}
