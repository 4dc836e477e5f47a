package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/ems-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/ems-backend-go/internal/domain/task"
)

func TestStore_Open_SeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s, err := Open(path)
	require.NoError(t, err)

	s.View(func(d *Document) {
		assert.Len(t, d.Employees, 3)
		assert.Equal(t, "John Doe", d.Employees[0].Name)
		assert.Equal(t, employee.DefaultLeaveBalance, d.Employees[0].LeaveBalance)
		assert.Empty(t, d.Tasks)
		assert.Equal(t, 3, d.Sequences[CollectionEmployees])
	})

	// The seed document is written immediately.
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Len(t, doc.Employees, 3)
}

func TestStore_Open_MalformedFileFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s, err := Open(path)
	require.NoError(t, err)

	s.View(func(d *Document) {
		assert.Len(t, d.Employees, 3)
	})
}

func TestStore_Open_ReconcilesSequences(t *testing.T) {
	// A document written by an older backend carries no sequence map;
	// counters must resume past the highest existing ids.
	path := filepath.Join(t.TempDir(), "data.json")
	doc := Document{
		Employees: []employee.Employee{{ID: 7, Name: "Ada", Email: "ada@company.com", Position: "Engineer"}},
		Tasks:     []task.Task{{ID: 12, EmployeeID: 7, Title: "Migrate"}},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	s, err := Open(path)
	require.NoError(t, err)

	var nextEmployeeID, nextTaskID int
	require.NoError(t, s.Update(func(d *Document) error {
		nextEmployeeID = d.NextID(CollectionEmployees)
		nextTaskID = d.NextID(CollectionTasks)
		return nil
	}))
	assert.Equal(t, 8, nextEmployeeID)
	assert.Equal(t, 13, nextTaskID)
}

func TestStore_Update_PersistsAndReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, s.Update(func(d *Document) error {
		d.Employees = append(d.Employees, employee.Employee{
			ID:       d.NextID(CollectionEmployees),
			Name:     "Grace",
			Email:    "grace@company.com",
			Position: "Engineer",
		})
		return nil
	}))

	reloaded, err := Open(path)
	require.NoError(t, err)
	reloaded.View(func(d *Document) {
		require.Len(t, d.Employees, 4)
		assert.Equal(t, 4, d.Employees[3].ID)
		assert.Equal(t, "Grace", d.Employees[3].Name)
		assert.Equal(t, 4, d.Sequences[CollectionEmployees])
	})

	// No temp files left behind after the atomic rename.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStore_Update_ErrorAbortsPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	s, err := Open(path)
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	wantErr := assert.AnError
	err = s.Update(func(d *Document) error {
		return wantErr
	})
	assert.ErrorIs(t, err, wantErr)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestDocument_NextID_Monotonic(t *testing.T) {
	d := &Document{}
	assert.Equal(t, 1, d.NextID(CollectionIssues))
	assert.Equal(t, 2, d.NextID(CollectionIssues))
	assert.Equal(t, 1, d.NextID(CollectionTasks))
}
