package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/announcement"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/issue"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Validation errors carry their own messages
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return
	}

	switch {
	// Not-found errors
	case errors.Is(err, employee.ErrEmployeeNotFound),
		errors.Is(err, attendance.ErrRecordNotFound),
		errors.Is(err, task.ErrTaskNotFound),
		errors.Is(err, leave.ErrLeaveRequestNotFound),
		errors.Is(err, announcement.ErrAnnouncementNotFound),
		errors.Is(err, issue.ErrIssueNotFound):
		NotFound(w, err.Error())

	// Auth errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidSession):
		Unauthorized(w, err.Error())

	// Business-rule errors
	case errors.Is(err, leave.ErrInsufficientBalance),
		errors.Is(err, leave.ErrAlreadyProcessed),
		errors.Is(err, issue.ErrInvalidTransition),
		errors.Is(err, workhours.ErrAlreadyCheckedIn),
		errors.Is(err, workhours.ErrNoOpenEntry),
		errors.Is(err, auth.ErrUsernameTaken):
		BadRequest(w, err.Error())

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
