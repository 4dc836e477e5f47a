package issue

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/issue"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/email"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

// DepartmentHR sees every issue regardless of assignment.
const DepartmentHR = "hr"

type IssueServiceImpl struct {
	store        *store.Store
	emailService email.Service
	now          func() time.Time
}

func NewIssueService(s *store.Store, emailService email.Service) *IssueServiceImpl {
	return &IssueServiceImpl{
		store:        s,
		emailService: emailService,
		now:          time.Now,
	}
}

// List implements issue.IssueService.
func (s *IssueServiceImpl) List(ctx context.Context) ([]issue.Issue, error) {
	result := []issue.Issue{}
	s.store.View(func(d *store.Document) {
		result = append(result, d.Issues...)
	})
	return result, nil
}

// ListByEmployee implements issue.IssueService.
func (s *IssueServiceImpl) ListByEmployee(ctx context.Context, employeeID int) ([]issue.Issue, error) {
	result := []issue.Issue{}
	s.store.View(func(d *store.Document) {
		for _, i := range d.Issues {
			if i.EmployeeID == employeeID {
				result = append(result, i)
			}
		}
	})
	return result, nil
}

// ListByDepartment implements issue.IssueService.
func (s *IssueServiceImpl) ListByDepartment(ctx context.Context, department string) ([]issue.Issue, error) {
	dept := strings.ToLower(department)
	result := []issue.Issue{}
	s.store.View(func(d *store.Document) {
		for _, i := range d.Issues {
			if dept == DepartmentHR ||
				strings.EqualFold(i.AssignedTo, department) ||
				strings.EqualFold(i.Department, department) {
				result = append(result, i)
			}
		}
	})
	return result, nil
}

// Create implements issue.IssueService.
func (s *IssueServiceImpl) Create(ctx context.Context, req issue.CreateIssueRequest) (issue.Issue, error) {
	if err := req.Validate(); err != nil {
		return issue.Issue{}, err
	}

	priority := req.Priority
	if priority == "" {
		priority = string(issue.PriorityMedium)
	}
	department := req.Department
	if department == "" {
		department = req.AssignedTo
	}

	var created issue.Issue
	var reporter employee.Employee
	err := s.store.Update(func(d *store.Document) error {
		now := s.now()
		created = issue.Issue{
			ID:          d.NextID(store.CollectionIssues),
			EmployeeID:  req.EmployeeID,
			Title:       req.Title,
			Description: req.Description,
			Priority:    issue.Priority(priority),
			Status:      issue.StatusOpen,
			AssignedTo:  req.AssignedTo,
			Department:  department,
			CreatedAt:   now,
			AssignedAt:  now,
		}
		d.Issues = append(d.Issues, created)
		for _, e := range d.Employees {
			if e.ID == req.EmployeeID {
				reporter = e
				break
			}
		}
		return nil
	})
	if err != nil {
		return issue.Issue{}, err
	}

	// Notify the assigned department, then annotate the stored issue
	// with the outcome so the dashboard can show delivery state.
	result, sendErr := s.emailService.SendIssueNotification(ctx, email.IssueNotification{
		Title:        created.Title,
		Description:  created.Description,
		Priority:     string(created.Priority),
		AssignedTo:   created.AssignedTo,
		EmployeeName: reporter.Name,
		CreatedAt:    created.CreatedAt,
	})
	if sendErr != nil {
		slog.Error("Failed to send issue notification", "issue_id", created.ID, "error", sendErr)
	}

	annotateErr := s.store.Update(func(d *store.Document) error {
		for i := range d.Issues {
			if d.Issues[i].ID != created.ID {
				continue
			}
			sent := result.Sent
			d.Issues[i].EmailNotificationSent = &sent
			if result.Sent {
				d.Issues[i].EmailSentTo = result.Recipients
			} else {
				msg := result.Message
				if sendErr != nil {
					msg = sendErr.Error()
				}
				d.Issues[i].EmailError = &msg
			}
			created = d.Issues[i]
			return nil
		}
		return nil
	})
	if annotateErr != nil {
		return issue.Issue{}, annotateErr
	}

	return created, nil
}

// Update implements issue.IssueService.
func (s *IssueServiceImpl) Update(ctx context.Context, id int, req issue.UpdateIssueRequest) (issue.Issue, error) {
	if err := req.Validate(); err != nil {
		return issue.Issue{}, err
	}

	var updated issue.Issue
	err := s.store.Update(func(d *store.Document) error {
		for i := range d.Issues {
			if d.Issues[i].ID != id {
				continue
			}
			iss := &d.Issues[i]

			if req.Status != nil {
				to := issue.Status(*req.Status)
				if !issue.CanTransition(iss.Status, to) {
					return issue.ErrInvalidTransition
				}
				iss.Status = to
				if to.IsTerminal() {
					resolvedAt := s.now()
					iss.ResolvedAt = &resolvedAt
					if req.ResolvedBy != nil {
						iss.ResolvedBy = req.ResolvedBy
					}
					if req.Resolution != nil {
						iss.Resolution = req.Resolution
					}
				}
			}

			if req.AssignedTo != nil && *req.AssignedTo != iss.AssignedTo {
				reassignedAt := s.now()
				iss.AssignedTo = *req.AssignedTo
				iss.Department = *req.AssignedTo
				iss.ReassignedAt = &reassignedAt
			}
			if req.Department != nil {
				iss.Department = *req.Department
			}
			if req.Priority != nil {
				iss.Priority = issue.Priority(*req.Priority)
			}

			updated = *iss
			return nil
		}
		return issue.ErrIssueNotFound
	})
	if err != nil {
		return issue.Issue{}, err
	}
	return updated, nil
}

// Delete implements issue.IssueService.
func (s *IssueServiceImpl) Delete(ctx context.Context, id int) error {
	return s.store.Update(func(d *store.Document) error {
		for i := range d.Issues {
			if d.Issues[i].ID == id {
				d.Issues = append(d.Issues[:i], d.Issues[i+1:]...)
				return nil
			}
		}
		return issue.ErrIssueNotFound
	})
}
