package employee

import (
	"context"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

type EmployeeServiceImpl struct {
	store *store.Store
	now   func() time.Time
}

func NewEmployeeService(s *store.Store) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		store: s,
		now:   time.Now,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	s.store.View(func(d *store.Document) {
		result = append([]employee.Employee{}, d.Employees...)
	})
	return result, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id int) (employee.Employee, error) {
	var result employee.Employee
	found := false
	s.store.View(func(d *store.Document) {
		for _, e := range d.Employees {
			if e.ID == id {
				result = e
				found = true
				return
			}
		}
	})
	if !found {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return result, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var created employee.Employee
	err := s.store.Update(func(d *store.Document) error {
		created = employee.Employee{
			ID:               d.NextID(store.CollectionEmployees),
			Name:             req.Name,
			Email:            req.Email,
			Position:         req.Position,
			Department:       req.Department,
			Role:             req.Role,
			LeaveBalance:     employee.DefaultLeaveBalance,
			LastBalanceReset: s.now(),
		}
		d.Employees = append(d.Employees, created)
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	var updated employee.Employee
	err := s.store.Update(func(d *store.Document) error {
		for i := range d.Employees {
			if d.Employees[i].ID != id {
				continue
			}
			e := &d.Employees[i]
			if req.Name != nil {
				e.Name = *req.Name
			}
			if req.Email != nil {
				e.Email = *req.Email
			}
			if req.Position != nil {
				e.Position = *req.Position
			}
			if req.Department != nil {
				e.Department = *req.Department
			}
			if req.Role != nil {
				e.Role = *req.Role
			}
			updated = *e
			return nil
		}
		return employee.ErrEmployeeNotFound
	})
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int) error {
	return s.store.Update(func(d *store.Document) error {
		for i := range d.Employees {
			if d.Employees[i].ID == id {
				d.Employees = append(d.Employees[:i], d.Employees[i+1:]...)
				return nil
			}
		}
		return employee.ErrEmployeeNotFound
	})
}
