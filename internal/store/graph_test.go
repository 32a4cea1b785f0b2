package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskar-dragon/ccflow/internal/model"
)

func TestBlockedTasksWithOpenDependency(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/e/epic.md", "")
	writeFile(t, root, "epics/e/1.md", "status: open\n")
	writeFile(t, root, "epics/e/2.md", "status: open\ndepends_on: [1]\n")

	blocked := New(root).BlockedTasks()
	require.Len(t, blocked, 1)
	assert.Equal(t, "2", blocked[0].ID)
	assert.Equal(t, []string{"1"}, blocked[0].OpenDependencies)
}

func TestBlockedTasksKeepsTasksWhoseDependenciesClosed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/e/epic.md", "")
	writeFile(t, root, "epics/e/1.md", "status: closed\n")
	writeFile(t, root, "epics/e/2.md", "status: open\ndepends_on: [1]\n")

	blocked := New(root).BlockedTasks()
	require.Len(t, blocked, 1)
	assert.Equal(t, "2", blocked[0].ID)
	assert.Empty(t, blocked[0].OpenDependencies)
	assert.NotNil(t, blocked[0].OpenDependencies)
}

func TestBlockedTasksMissingDependencyIsOpen(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/e/2.md", "depends_on: [1, 5]\n")
	writeFile(t, root, "epics/e/1.md", "status: completed\n")

	blocked := New(root).BlockedTasks()
	require.Len(t, blocked, 1)
	assert.Equal(t, []string{"5"}, blocked[0].OpenDependencies)
}

func TestTasksWithoutDependencies(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/a/epic.md", "")
	writeFile(t, root, "epics/a/1.md", "name: free\nstatus: open\n")
	writeFile(t, root, "epics/a/2.md", "name: unset\n")
	writeFile(t, root, "epics/a/3.md", "name: done\nstatus: closed\n")
	writeFile(t, root, "epics/a/4.md", "name: waits\nstatus: open\ndepends_on: [1]\n")
	writeFile(t, root, "epics/a/5.md", "name: ready\nstatus: in-progress\ndepends_on: [3]\n")

	s := New(root)
	blocked := s.BlockedTasks()
	blockedIDs := map[string]bool{}
	for _, b := range blocked {
		blockedIDs[b.ID] = true
		assert.NotEmpty(t, b.Dependencies)
	}
	assert.False(t, blockedIDs["1"])
	assert.False(t, blockedIDs["2"])
	assert.False(t, blockedIDs["3"])
	assert.True(t, blockedIDs["4"])
	assert.True(t, blockedIDs["5"])

	var available []string
	for _, task := range s.AvailableTasks() {
		available = append(available, task.ID)
	}
	assert.Equal(t, []string{"1", "2", "5"}, available)
}

func TestAvailableTasksAcrossEpics(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/b/epic.md", "")
	writeFile(t, root, "epics/b/1.md", "status: open\n")
	writeFile(t, root, "epics/a/epic.md", "")
	writeFile(t, root, "epics/a/1.md", "status: open\n")

	tasks := New(root).AvailableTasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].EpicName)
	assert.Equal(t, "b", tasks[1].EpicName)
}

func TestQueriesOnMissingRoot(t *testing.T) {
	s := New(t.TempDir())
	assert.Empty(t, s.AvailableTasks())
	assert.Empty(t, s.BlockedTasks())
	assert.Equal(t, model.TaskStats{}, s.TaskStats())
}

func TestEpicTaskStats(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "epics/e/epic.md", "")
	writeFile(t, root, "epics/e/1.md", "status: closed\n")
	writeFile(t, root, "epics/e/2.md", "status: completed\n")
	writeFile(t, root, "epics/e/3.md", "status: open\ndepends_on: [1]\n")
	writeFile(t, root, "epics/e/4.md", "status: open\n")
	writeFile(t, root, "epics/other/1.md", "status: open\n")

	s := New(root)
	stats := s.EpicTaskStats("e")
	assert.Equal(t, model.TaskStats{Total: 4, Open: 2, Closed: 2, Blocked: 1, Available: 1}, stats)
	assert.Equal(t, 50, stats.Completion())
	assert.Equal(t, 5, s.TaskStats().Total)
}
