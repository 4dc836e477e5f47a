package attendance

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

func newAttendanceTestService(t *testing.T) *AttendanceServiceImpl {
	s, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return NewAttendanceService(s)
}

func TestAttendanceService_Mark(t *testing.T) {
	svc := newAttendanceTestService(t)

	record, err := svc.Mark(context.Background(), attendance.MarkAttendanceRequest{
		EmployeeID: 1,
		Date:       "2024-03-01",
		Status:     "Present",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, record.ID)
	assert.Equal(t, attendance.StatusPresent, record.Status)
	assert.False(t, record.MarkedAt.IsZero())
}

func TestAttendanceService_Mark_ReplacesSameDay(t *testing.T) {
	svc := newAttendanceTestService(t)
	ctx := context.Background()

	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-03-01", Status: "Present"})
	require.NoError(t, err)

	replaced, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-03-01", Status: "WFH"})
	require.NoError(t, err)

	records, err := svc.ListByEmployee(ctx, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, attendance.StatusWFH, records[0].Status)
	assert.Equal(t, replaced.ID, records[0].ID)

	// A different date keeps its own record.
	_, err = svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-03-02", Status: "Absent"})
	require.NoError(t, err)
	records, err = svc.ListByEmployee(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestAttendanceService_Mark_Validation(t *testing.T) {
	svc := newAttendanceTestService(t)
	ctx := context.Background()

	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "03/01/2024", Status: "Present"})
	assert.Error(t, err)

	_, err = svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-03-01", Status: "Late"})
	assert.Error(t, err)
}

func TestAttendanceService_List_FilterByDate(t *testing.T) {
	svc := newAttendanceTestService(t)
	ctx := context.Background()

	_, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-03-01", Status: "Present"})
	require.NoError(t, err)
	_, err = svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 2, Date: "2024-03-01", Status: "Absent"})
	require.NoError(t, err)
	_, err = svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-03-02", Status: "Present"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	filtered, err := svc.List(ctx, "2024-03-01")
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}

func TestAttendanceService_Delete(t *testing.T) {
	svc := newAttendanceTestService(t)
	ctx := context.Background()

	record, err := svc.Mark(ctx, attendance.MarkAttendanceRequest{EmployeeID: 1, Date: "2024-03-01", Status: "Present"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, record.ID))
	assert.ErrorIs(t, svc.Delete(ctx, record.ID), attendance.ErrRecordNotFound)
}
