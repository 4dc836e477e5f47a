package task

import (
	"context"
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/ems-backend-go/internal/store"
)

type TaskServiceImpl struct {
	store *store.Store
	now   func() time.Time
}

func NewTaskService(s *store.Store) *TaskServiceImpl {
	return &TaskServiceImpl{
		store: s,
		now:   time.Now,
	}
}

// List implements task.TaskService.
func (s *TaskServiceImpl) List(ctx context.Context, status string) ([]task.Task, error) {
	today := s.today()

	// Lazy daily rollover: recurring tasks completed on a previous day
	// go back to In Progress. Checked under a read lock first so the
	// common no-op path never rewrites the data file.
	needsRollover := false
	s.store.View(func(d *store.Document) {
		for i := range d.Tasks {
			if rolloverDue(&d.Tasks[i], today) {
				needsRollover = true
				return
			}
		}
	})

	if needsRollover {
		if err := s.store.Update(func(d *store.Document) error {
			for i := range d.Tasks {
				if rolloverDue(&d.Tasks[i], today) {
					d.Tasks[i].Status = task.StatusInProgress
				}
			}
			return nil
		}); err != nil {
			return nil, err
		}
	}

	result := []task.Task{}
	s.store.View(func(d *store.Document) {
		for _, t := range d.Tasks {
			if status == "" || string(t.Status) == status {
				result = append(result, t)
			}
		}
	})
	return result, nil
}

func rolloverDue(t *task.Task, today string) bool {
	return t.IsRecurring &&
		t.Status == task.StatusCompleted &&
		t.LastCompletedDate != nil &&
		*t.LastCompletedDate != today
}

// Get implements task.TaskService.
func (s *TaskServiceImpl) Get(ctx context.Context, id int) (task.Task, error) {
	var result task.Task
	found := false
	s.store.View(func(d *store.Document) {
		for _, t := range d.Tasks {
			if t.ID == id {
				result = t
				found = true
				return
			}
		}
	})
	if !found {
		return task.Task{}, task.ErrTaskNotFound
	}
	return result, nil
}

// ListByEmployee implements task.TaskService.
func (s *TaskServiceImpl) ListByEmployee(ctx context.Context, employeeID int) ([]task.Task, error) {
	result := []task.Task{}
	s.store.View(func(d *store.Document) {
		for _, t := range d.Tasks {
			if t.EmployeeID == employeeID {
				result = append(result, t)
			}
		}
	})
	return result, nil
}

// Create implements task.TaskService.
func (s *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	deadline := req.Deadline
	if deadline == "" {
		deadline = s.today()
	}

	var created task.Task
	err := s.store.Update(func(d *store.Document) error {
		created = task.Task{
			ID:          d.NextID(store.CollectionTasks),
			EmployeeID:  req.EmployeeID,
			Title:       req.Title,
			Description: req.Description,
			Deadline:    deadline,
			Status:      task.StatusInProgress,
			IsRecurring: req.IsRecurring,
			CreatedAt:   s.now(),
		}
		d.Tasks = append(d.Tasks, created)
		return nil
	})
	if err != nil {
		return task.Task{}, err
	}
	return created, nil
}

// Update implements task.TaskService.
func (s *TaskServiceImpl) Update(ctx context.Context, id int, req task.UpdateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}

	var updated task.Task
	err := s.store.Update(func(d *store.Document) error {
		for i := range d.Tasks {
			if d.Tasks[i].ID != id {
				continue
			}
			t := &d.Tasks[i]

			if req.Action != nil && *req.Action == task.ActionComplete {
				completedAt := s.now()
				t.Status = task.StatusCompleted
				t.CompletedAt = &completedAt
				if t.IsRecurring {
					// Recurring completions only hold until the next day.
					today := s.today()
					t.LastCompletedDate = &today
				}
			} else if req.Status != nil {
				t.Status = task.Status(*req.Status)
			}

			updated = *t
			return nil
		}
		return task.ErrTaskNotFound
	})
	if err != nil {
		return task.Task{}, err
	}
	return updated, nil
}

// Delete implements task.TaskService.
func (s *TaskServiceImpl) Delete(ctx context.Context, id int) error {
	return s.store.Update(func(d *store.Document) error {
		for i := range d.Tasks {
			if d.Tasks[i].ID == id {
				d.Tasks = append(d.Tasks[:i], d.Tasks[i+1:]...)
				return nil
			}
		}
		return task.ErrTaskNotFound
	})
}

func (s *TaskServiceImpl) today() string {
	return s.now().Format("2006-01-02")
}
