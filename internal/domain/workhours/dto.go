package workhours

import "github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"

type CheckInRequest struct {
	EmployeeID int `json:"employeeId"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Employee ID is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID int `json:"employeeId"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "Employee ID is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
