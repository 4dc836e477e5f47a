package store

import (
	"time"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/announcement"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/issue"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/leave"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/task"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/workhours"
)

// Collection names, used as sequence keys in the persisted document.
const (
	CollectionEmployees     = "employees"
	CollectionAttendance    = "attendance"
	CollectionTasks         = "tasks"
	CollectionLeaveRequests = "leaveRequests"
	CollectionAnnouncements = "announcements"
	CollectionIssues        = "issues"
	CollectionWorkHours     = "workHours"
)

// Document is the whole persisted state, serialized as one JSON file.
// Sequences carries the per-collection id counters so ids stay
// monotonic across restarts; documents written by older backends
// without it are reconciled on load.
type Document struct {
	Employees     []employee.Employee         `json:"employees"`
	Attendance    []attendance.Record         `json:"attendance"`
	Tasks         []task.Task                 `json:"tasks"`
	LeaveRequests []leave.LeaveRequest        `json:"leaveRequests"`
	Announcements []announcement.Announcement `json:"announcements"`
	Issues        []issue.Issue               `json:"issues"`
	WorkHours     []workhours.Entry           `json:"workHours"`
	Sequences     map[string]int              `json:"sequences,omitempty"`
}

// NextID returns the next id for a collection, advancing its sequence.
func (d *Document) NextID(collection string) int {
	if d.Sequences == nil {
		d.Sequences = make(map[string]int)
	}
	d.Sequences[collection]++
	return d.Sequences[collection]
}

// reconcileSequences raises every sequence to at least the highest id
// present in its collection, so documents predating the sequence map
// keep assigning fresh ids.
func (d *Document) reconcileSequences() {
	if d.Sequences == nil {
		d.Sequences = make(map[string]int)
	}

	raise := func(collection string, max int) {
		if d.Sequences[collection] < max {
			d.Sequences[collection] = max
		}
	}

	maxID := 0
	for _, e := range d.Employees {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	raise(CollectionEmployees, maxID)

	maxID = 0
	for _, a := range d.Attendance {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	raise(CollectionAttendance, maxID)

	maxID = 0
	for _, t := range d.Tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	raise(CollectionTasks, maxID)

	maxID = 0
	for _, l := range d.LeaveRequests {
		if l.ID > maxID {
			maxID = l.ID
		}
	}
	raise(CollectionLeaveRequests, maxID)

	maxID = 0
	for _, a := range d.Announcements {
		if a.ID > maxID {
			maxID = a.ID
		}
	}
	raise(CollectionAnnouncements, maxID)

	maxID = 0
	for _, i := range d.Issues {
		if i.ID > maxID {
			maxID = i.ID
		}
	}
	raise(CollectionIssues, maxID)

	maxID = 0
	for _, w := range d.WorkHours {
		if w.ID > maxID {
			maxID = w.ID
		}
	}
	raise(CollectionWorkHours, maxID)
}

// seedDocument builds the initial state written when no data file
// exists yet: three demo employees and empty collections.
func seedDocument() *Document {
	now := time.Now()
	doc := &Document{
		Employees: []employee.Employee{
			{ID: 1, Name: "John Doe", Email: "john@company.com", Position: "Developer", LeaveBalance: employee.DefaultLeaveBalance, LastBalanceReset: now},
			{ID: 2, Name: "Jane Smith", Email: "jane@company.com", Position: "Designer", LeaveBalance: employee.DefaultLeaveBalance, LastBalanceReset: now},
			{ID: 3, Name: "Bob Johnson", Email: "bob@company.com", Position: "Manager", LeaveBalance: employee.DefaultLeaveBalance, LastBalanceReset: now},
		},
		Attendance:    []attendance.Record{},
		Tasks:         []task.Task{},
		LeaveRequests: []leave.LeaveRequest{},
		Announcements: []announcement.Announcement{},
		Issues:        []issue.Issue{},
		WorkHours:     []workhours.Entry{},
		Sequences:     map[string]int{CollectionEmployees: 3},
	}
	return doc
}
