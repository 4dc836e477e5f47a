// Package email sends transactional notifications through the Resend
// API. Sends are best-effort: an unconfigured API key turns every send
// into a no-op result rather than an error, and callers decide whether
// a failed SendResult matters.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/cmlabs-hris/ems-backend-go/internal/config"
)

// SendResult reports the outcome of one notification attempt.
type SendResult struct {
	Sent       bool     `json:"sent"`
	MessageID  string   `json:"messageId,omitempty"`
	Recipients []string `json:"recipients,omitempty"`
	Message    string   `json:"message,omitempty"`
}

type IssueNotification struct {
	Title        string
	Description  string
	Priority     string
	AssignedTo   string
	EmployeeName string
	CreatedAt    time.Time
}

// LeaveAction selects the leave notification wording.
type LeaveAction string

const (
	LeaveActionCreate  LeaveAction = "create"
	LeaveActionApprove LeaveAction = "approve"
	LeaveActionReject  LeaveAction = "reject"
)

type LeaveNotification struct {
	Action        LeaveAction
	EmployeeName  string
	EmployeeEmail string
	StartDate     string
	EndDate       string
	Type          string
	Reason        string
}

type AnnouncementNotification struct {
	Title   string
	Message string
	Type    string
	// TargetEmail is set for individual announcements; company
	// announcements go to the department lists instead.
	TargetEmail string
}

type Service interface {
	SendIssueNotification(ctx context.Context, n IssueNotification) (SendResult, error)
	SendLeaveNotification(ctx context.Context, n LeaveNotification) (SendResult, error)
	SendAnnouncementNotification(ctx context.Context, n AnnouncementNotification) (SendResult, error)
	SendTestEmail(ctx context.Context) (SendResult, error)
}

type resendService struct {
	client *resend.Client
	cfg    config.EmailConfig
}

// NewService creates the Resend-backed notification service. With no
// API key configured every send returns a disabled no-op result.
func NewService(cfg config.EmailConfig) Service {
	s := &resendService{cfg: cfg}
	if cfg.APIKey != "" {
		s.client = resend.NewClient(cfg.APIKey)
		slog.Info("Email notifications enabled", "provider", "resend")
	} else {
		slog.Warn("RESEND_API_KEY not configured, email notifications disabled")
	}
	return s
}

func (s *resendService) SendIssueNotification(ctx context.Context, n IssueNotification) (SendResult, error) {
	recipients := s.departmentRecipients()
	subject := fmt.Sprintf("New %s Issue Reported - %s", strings.ToUpper(n.Priority), n.Title)
	html := fmt.Sprintf(
		"<h2>New Issue Report</h2><p><strong>%s</strong></p><p>%s</p><p>Reported by: %s<br>Department: %s<br>Priority: %s<br>Created: %s</p>",
		n.Title, n.Description, orUnknown(n.EmployeeName), n.AssignedTo, n.Priority, n.CreatedAt.Format(time.RFC1123),
	)
	return s.send(ctx, recipients, subject, html)
}

func (s *resendService) SendLeaveNotification(ctx context.Context, n LeaveNotification) (SendResult, error) {
	var recipients []string
	var subject string
	switch n.Action {
	case LeaveActionApprove:
		recipients = employeeOrDepartment(n.EmployeeEmail, s.departmentRecipients())
		subject = fmt.Sprintf("Leave Request Approved - %s", orUnknown(n.EmployeeName))
	case LeaveActionReject:
		recipients = employeeOrDepartment(n.EmployeeEmail, s.departmentRecipients())
		subject = fmt.Sprintf("Leave Request Rejected - %s", orUnknown(n.EmployeeName))
	default:
		// New requests go to the reviewers.
		recipients = s.departmentRecipients()
		subject = fmt.Sprintf("New Leave Request - %s", orUnknown(n.EmployeeName))
	}

	html := fmt.Sprintf(
		"<h2>Leave Request</h2><p>Employee: %s<br>Type: %s<br>From: %s<br>To: %s</p><p>Reason: %s</p>",
		orUnknown(n.EmployeeName), n.Type, n.StartDate, n.EndDate, n.Reason,
	)
	return s.send(ctx, recipients, subject, html)
}

func (s *resendService) SendAnnouncementNotification(ctx context.Context, n AnnouncementNotification) (SendResult, error) {
	recipients := s.departmentRecipients()
	if n.TargetEmail != "" {
		recipients = []string{n.TargetEmail}
	}
	subject := fmt.Sprintf("New Announcement: %s", n.Title)
	html := fmt.Sprintf("<h2>%s</h2><p>%s</p>", n.Title, n.Message)
	return s.send(ctx, recipients, subject, html)
}

func (s *resendService) SendTestEmail(ctx context.Context) (SendResult, error) {
	recipients := s.departmentRecipients()
	return s.send(ctx, recipients, "Test Email - Employee Management System",
		"<p>This is a test email confirming the notification service is configured correctly.</p>")
}

func (s *resendService) send(ctx context.Context, recipients []string, subject, html string) (SendResult, error) {
	if s.client == nil {
		slog.Debug("Email service disabled, skipping notification", "subject", subject)
		return SendResult{Sent: false, Message: "Email service not configured"}, nil
	}
	if len(recipients) == 0 {
		return SendResult{Sent: false, Message: "No recipients configured"}, nil
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.cfg.From,
		To:      recipients,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return SendResult{Sent: false, Recipients: recipients, Message: err.Error()}, err
	}

	slog.Info("Email notification sent", "subject", subject, "message_id", sent.Id, "recipients", recipients)
	return SendResult{
		Sent:       true,
		MessageID:  sent.Id,
		Recipients: recipients,
		Message:    "Email notification sent via Resend API successfully",
	}, nil
}

// departmentRecipients merges the HR and department-head lists from
// the environment, trimmed, deduplicated and filtered to plausible
// addresses.
func (s *resendService) departmentRecipients() []string {
	seen := make(map[string]bool)
	var result []string
	for _, addr := range append(append([]string{}, s.cfg.HREmails...), s.cfg.DepartmentHeadEmails...) {
		addr = strings.TrimSpace(addr)
		if addr == "" || !strings.Contains(addr, "@") || seen[addr] {
			continue
		}
		seen[addr] = true
		result = append(result, addr)
	}
	return result
}

func employeeOrDepartment(employeeEmail string, department []string) []string {
	if strings.Contains(employeeEmail, "@") {
		return []string{employeeEmail}
	}
	return department
}

func orUnknown(name string) string {
	if name == "" {
		return "Unknown Employee"
	}
	return name
}
