package announcement

import "github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"

type CreateAnnouncementRequest struct {
	Title            string `json:"title"`
	Message          string `json:"message"`
	Type             string `json:"type,omitempty"`
	TargetEmployeeID *int   `json:"targetEmployeeId,omitempty"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}

	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{
			Field:   "message",
			Message: "message is required",
		})
	}

	if !validator.IsEmpty(r.Type) && !validator.IsInSlice(r.Type, ValidTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of company, individual",
		})
	}

	if r.Type == TypeIndividual && (r.TargetEmployeeID == nil || *r.TargetEmployeeID <= 0) {
		errs = append(errs, validator.ValidationError{
			Field:   "targetEmployeeId",
			Message: "targetEmployeeId is required for individual announcements",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
