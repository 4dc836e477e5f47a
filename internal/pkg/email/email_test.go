package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/ems-backend-go/internal/config"
)

func TestNewService_DisabledWithoutAPIKey(t *testing.T) {
	svc := NewService(config.EmailConfig{
		From:     "noreply@company.com",
		HREmails: []string{"hr@company.com"},
	})

	result, err := svc.SendTestEmail(context.Background())
	require.NoError(t, err)
	assert.False(t, result.Sent)
	assert.Equal(t, "Email service not configured", result.Message)
}

func TestDepartmentRecipients_DedupeAndFilter(t *testing.T) {
	s := &resendService{cfg: config.EmailConfig{
		HREmails:             []string{"hr@company.com", " hr@company.com ", "", "not-an-email"},
		DepartmentHeadEmails: []string{"head@company.com", "hr@company.com"},
	}}

	got := s.departmentRecipients()
	assert.Equal(t, []string{"hr@company.com", "head@company.com"}, got)
}

func TestEmployeeOrDepartment(t *testing.T) {
	department := []string{"hr@company.com"}

	assert.Equal(t, []string{"jane@company.com"}, employeeOrDepartment("jane@company.com", department))
	// An employee without a usable address falls back to the
	// department lists.
	assert.Equal(t, department, employeeOrDepartment("", department))
}
