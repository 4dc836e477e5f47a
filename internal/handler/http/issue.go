package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/issue"
	"github.com/cmlabs-hris/ems-backend-go/internal/handler/http/response"
)

type IssueHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	ListByDepartment(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type issueHandlerImpl struct {
	issueService issue.IssueService
}

func NewIssueHandler(issueService issue.IssueService) IssueHandler {
	return &issueHandlerImpl{
		issueService: issueService,
	}
}

// List implements IssueHandler.
func (h *issueHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.issueService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}

// ListByEmployee implements IssueHandler.
func (h *issueHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID, err := intParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid employee ID")
		return
	}

	result, err := h.issueService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}

// ListByDepartment implements IssueHandler.
func (h *issueHandlerImpl) ListByDepartment(w http.ResponseWriter, r *http.Request) {
	department := chi.URLParam(r, "dept")
	if department == "" {
		response.BadRequest(w, "Department is required")
		return
	}

	result, err := h.issueService.ListByDepartment(r.Context(), department)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}

// Create implements IssueHandler.
func (h *issueHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req issue.CreateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.issueService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, result)
}

// Update implements IssueHandler.
func (h *issueHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid issue ID")
		return
	}

	var req issue.UpdateIssueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	result, err := h.issueService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.OK(w, result)
}

// Delete implements IssueHandler.
func (h *issueHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := intParam(r, "id")
	if err != nil {
		response.BadRequest(w, "Invalid issue ID")
		return
	}

	if err := h.issueService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.Message(w, "Issue deleted successfully")
}
