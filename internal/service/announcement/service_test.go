package announcement

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/announcement"
	"github.com/cmlabs-hris/ems-backend-go/internal/pkg/email"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

// stubEmailService records announcement notifications without sending.
type stubEmailService struct {
	announcements []email.AnnouncementNotification
}

func (s *stubEmailService) SendIssueNotification(ctx context.Context, n email.IssueNotification) (email.SendResult, error) {
	return email.SendResult{}, nil
}

func (s *stubEmailService) SendLeaveNotification(ctx context.Context, n email.LeaveNotification) (email.SendResult, error) {
	return email.SendResult{}, nil
}

func (s *stubEmailService) SendAnnouncementNotification(ctx context.Context, n email.AnnouncementNotification) (email.SendResult, error) {
	s.announcements = append(s.announcements, n)
	return email.SendResult{Sent: true}, nil
}

func (s *stubEmailService) SendTestEmail(ctx context.Context) (email.SendResult, error) {
	return email.SendResult{}, nil
}

func newAnnouncementTestService(t *testing.T) (*AnnouncementServiceImpl, *stubEmailService) {
	s, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	emails := &stubEmailService{}
	return NewAnnouncementService(s, emails), emails
}

func intPtr(v int) *int { return &v }

func TestAnnouncementService_Create_DefaultsToCompany(t *testing.T) {
	svc, emails := newAnnouncementTestService(t)

	created, err := svc.Create(context.Background(), announcement.CreateAnnouncementRequest{
		Title:   "Office closed",
		Message: "Maintenance on Friday",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, announcement.TypeCompany, created.Type)
	assert.Nil(t, created.TargetEmployeeID)

	require.Len(t, emails.announcements, 1)
	assert.Empty(t, emails.announcements[0].TargetEmail)
}

func TestAnnouncementService_Create_IndividualTargetsEmployee(t *testing.T) {
	svc, emails := newAnnouncementTestService(t)

	created, err := svc.Create(context.Background(), announcement.CreateAnnouncementRequest{
		Title:            "Desk move",
		Message:          "You are moving to floor 2",
		Type:             announcement.TypeIndividual,
		TargetEmployeeID: intPtr(2),
	})
	require.NoError(t, err)
	require.NotNil(t, created.TargetEmployeeID)
	assert.Equal(t, 2, *created.TargetEmployeeID)

	require.Len(t, emails.announcements, 1)
	assert.Equal(t, "jane@company.com", emails.announcements[0].TargetEmail)
}

func TestAnnouncementService_Create_IndividualRequiresTarget(t *testing.T) {
	svc, _ := newAnnouncementTestService(t)

	_, err := svc.Create(context.Background(), announcement.CreateAnnouncementRequest{
		Title:   "Desk move",
		Message: "x",
		Type:    announcement.TypeIndividual,
	})
	assert.Error(t, err)
}

func TestAnnouncementService_Create_TargetIgnoredForCompany(t *testing.T) {
	svc, _ := newAnnouncementTestService(t)

	created, err := svc.Create(context.Background(), announcement.CreateAnnouncementRequest{
		Title:            "All hands",
		Message:          "Monday 10am",
		Type:             announcement.TypeCompany,
		TargetEmployeeID: intPtr(1),
	})
	require.NoError(t, err)
	assert.Nil(t, created.TargetEmployeeID)
}

func TestAnnouncementService_Delete(t *testing.T) {
	svc, _ := newAnnouncementTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, announcement.CreateAnnouncementRequest{Title: "a", Message: "b"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), announcement.ErrAnnouncementNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
