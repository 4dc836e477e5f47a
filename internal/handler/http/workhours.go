package http

import (
	"encoding/json"
	"net/http"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/workhours"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

type WorkHoursHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	WeeklySummary(w http.ResponseWriter, r *http.Request)
}

type workHoursHandlerImpl struct {
	workHoursService workhours.WorkHoursService
}

func NewWorkHoursHandler(workHoursService workhours.WorkHoursService) WorkHoursHandler {
	return &workHoursHandlerImpl{
		workHoursService: workHoursService,
	}
}

// List implements WorkHoursHandler.
func (h *workHoursHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.workHoursService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}

// ListByEmployee implements WorkHoursHandler.
func (h *workHoursHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := intParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid employee ID")
		return
	}

	result, err := h.workHoursService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}

// CheckIn implements WorkHoursHandler.
func (h *workHoursHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req workhours.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.workHoursService.CheckIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, result)
}

// CheckOut implements WorkHoursHandler.
func (h *workHoursHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	var req workhours.CheckOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.workHoursService.CheckOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}

// WeeklySummary implements WorkHoursHandler.
func (h *workHoursHandlerImpl) WeeklySummary(w http.ResponseWriter, r *http.Request) {
	employeeID, err := intParam(r, "employeeId")
	if err != nil {
		response.BadRequest(w, "Invalid employee ID")
		return
	}

	result, err := h.workHoursService.WeeklySummary(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}
