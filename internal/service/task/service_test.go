package task

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

func newTaskTestService(t *testing.T) *TaskServiceImpl {
	s, err := store.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return NewTaskService(s)
}

func strPtr(s string) *string { return &s }

func TestTaskService_Create_Defaults(t *testing.T) {
	svc := newTaskTestService(t)

	created, err := svc.Create(context.Background(), task.CreateTaskRequest{
		EmployeeID:  1,
		Title:       "Write report",
		Description: "Quarterly summary",
		Deadline:    "2024-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, task.StatusInProgress, created.Status)
	assert.False(t, created.IsRecurring)
	assert.Nil(t, created.CompletedAt)
}

func TestTaskService_Update_CompleteNonRecurring(t *testing.T) {
	svc := newTaskTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		EmployeeID: 1, Title: "One-off", Description: "x", Deadline: "2024-04-01",
	})
	require.NoError(t, err)

	completed, err := svc.Update(ctx, created.ID, task.UpdateTaskRequest{Action: strPtr(task.ActionComplete)})
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	assert.Nil(t, completed.LastCompletedDate)

	// Non-recurring completion is permanent across later list calls.
	tasks, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.StatusCompleted, tasks[0].Status)
}

func TestTaskService_RecurringTaskResetsNextDay(t *testing.T) {
	svc := newTaskTestService(t)
	ctx := context.Background()

	day1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }

	created, err := svc.Create(ctx, task.CreateTaskRequest{
		EmployeeID: 1, Title: "Daily standup notes", Description: "x", Deadline: "2024-03-01", IsRecurring: true,
	})
	require.NoError(t, err)

	completed, err := svc.Update(ctx, created.ID, task.UpdateTaskRequest{Action: strPtr(task.ActionComplete)})
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, completed.Status)
	require.NotNil(t, completed.LastCompletedDate)
	assert.Equal(t, "2024-03-01", *completed.LastCompletedDate)

	// Same day: stays completed.
	tasks, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.StatusCompleted, tasks[0].Status)

	// Next day: rolls back to In Progress on list.
	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	tasks, err = svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, task.StatusInProgress, tasks[0].Status)
}

func TestTaskService_List_FilterByStatus(t *testing.T) {
	svc := newTaskTestService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, task.CreateTaskRequest{EmployeeID: 1, Title: "A", Description: "x", Deadline: "2024-04-01"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, task.CreateTaskRequest{EmployeeID: 2, Title: "B", Description: "x", Deadline: "2024-04-01"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, first.ID, task.UpdateTaskRequest{Action: strPtr(task.ActionComplete)})
	require.NoError(t, err)

	completed, err := svc.List(ctx, string(task.StatusCompleted))
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, first.ID, completed[0].ID)

	inProgress, err := svc.List(ctx, string(task.StatusInProgress))
	require.NoError(t, err)
	assert.Len(t, inProgress, 1)
}

func TestTaskService_Update_DirectStatus(t *testing.T) {
	svc := newTaskTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, task.CreateTaskRequest{EmployeeID: 1, Title: "A", Description: "x", Deadline: "2024-04-01"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, task.UpdateTaskRequest{Status: strPtr(string(task.StatusCompleted))})
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, updated.Status)
	// Direct status sets do not stamp completion metadata.
	assert.Nil(t, updated.CompletedAt)
}

func TestTaskService_Update_RequiresStatusOrAction(t *testing.T) {
	svc := newTaskTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, task.CreateTaskRequest{EmployeeID: 1, Title: "A", Description: "x", Deadline: "2024-04-01"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, task.UpdateTaskRequest{})
	assert.Error(t, err)
}

func TestTaskService_Delete(t *testing.T) {
	svc := newTaskTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, task.CreateTaskRequest{EmployeeID: 1, Title: "A", Description: "x", Deadline: "2024-04-01"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}
