package issue

import "github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"

type CreateIssueRequest struct {
	EmployeeID  int    `json:"employeeId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
	AssignedTo  string `json:"assignedTo"`
	Department  string `json:"department,omitempty"`
}

func (r *CreateIssueRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}

	if validator.IsEmpty(r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignedTo",
			Message: "assignedTo is required",
		})
	}

	if !validator.IsEmpty(r.Priority) && !validator.IsInSlice(r.Priority, ValidPriorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of low, medium, high",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateIssueRequest struct {
	Status     *string `json:"status,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Department *string `json:"department,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	ResolvedBy *string `json:"resolvedBy,omitempty"`
	Resolution *string `json:"resolution,omitempty"`
}

func (r *UpdateIssueRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of Open, In Progress, Resolved, Closed",
		})
	}

	if r.AssignedTo != nil && validator.IsEmpty(*r.AssignedTo) {
		errs = append(errs, validator.ValidationError{
			Field:   "assignedTo",
			Message: "assignedTo must not be empty",
		})
	}

	if r.Priority != nil && !validator.IsInSlice(*r.Priority, ValidPriorities) {
		errs = append(errs, validator.ValidationError{
			Field:   "priority",
			Message: "priority must be one of low, medium, high",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
