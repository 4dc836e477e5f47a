package task

import "github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"

type CreateTaskRequest struct {
	EmployeeID  int    `json:"employeeId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Deadline    string `json:"deadline,omitempty"`
	IsRecurring bool   `json:"isRecurring,omitempty"`
}

func (r *CreateTaskRequest) Validate() error {
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

	if !validator.IsEmpty(r.Deadline) {
		if _, ok := validator.IsValidDate(r.Deadline); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "deadline",
				Message: "deadline must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ActionComplete marks a task done; recurring tasks additionally record
// the completion day so the daily rollover can reset them.
const ActionComplete = "complete"

type UpdateTaskRequest struct {
	Status *string `json:"status,omitempty"`
	Action *string `json:"action,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != nil && *r.Action != ActionComplete {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be \"complete\"",
		})
	}

	if r.Action == nil && r.Status == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status or action is required",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of In Progress, Completed",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
