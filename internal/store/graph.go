package store

import (
	"path/filepath"

	"github.com/oskar-dragon/ccflow/internal/frontmatter"
	"github.com/oskar-dragon/ccflow/internal/model"
)

// dependencyClosed reports whether sibling task dep in dir exists and is
// closed. A missing file reads as an empty, therefore open, status.
func dependencyClosed(dir, dep string) bool {
	return model.IsClosedStatus(frontmatter.ReadField(filepath.Join(dir, dep+".md"), "status"))
}

// openDependencies returns the dependencies of t whose task is open or missing.
func openDependencies(dir string, t model.Task) []string {
	open := []string{}
	for _, dep := range t.Dependencies {
		if !dependencyClosed(dir, dep) {
			open = append(open, dep)
		}
	}
	return open
}

// allTasks walks every epic directory in enumeration order, including epic
// directories without an epic.md.
func (s *Store) allTasks(fn func(dir string, t model.Task)) {
	for _, name := range s.EpicNames() {
		dir := s.EpicDir(name)
		for _, t := range s.ListTasks(name) {
			fn(dir, t)
		}
	}
}

// AvailableTasks returns open tasks whose dependencies are all closed. A task
// without dependencies is always available while open.
func (s *Store) AvailableTasks() []model.Task {
	tasks := []model.Task{}
	s.allTasks(func(dir string, t model.Task) {
		if t.IsClosed() {
			return
		}
		if len(openDependencies(dir, t)) == 0 {
			tasks = append(tasks, t)
		}
	})
	return tasks
}

// BlockedTasks returns every open task that declares at least one dependency,
// annotated with the dependencies that are still open or missing. A task
// whose dependencies have all closed is still listed, with an empty
// OpenDependencies.
func (s *Store) BlockedTasks() []model.BlockedTask {
	blocked := []model.BlockedTask{}
	s.allTasks(func(dir string, t model.Task) {
		if t.IsClosed() || len(t.Dependencies) == 0 {
			return
		}
		blocked = append(blocked, model.BlockedTask{Task: t, OpenDependencies: openDependencies(dir, t)})
	})
	return blocked
}

// TaskStats counts tasks across all epics.
func (s *Store) TaskStats() model.TaskStats {
	var stats model.TaskStats
	s.allTasks(func(_ string, t model.Task) { stats.Add(t) })
	return stats
}

// EpicTaskStats counts the tasks of one epic.
func (s *Store) EpicTaskStats(epicName string) model.TaskStats {
	var stats model.TaskStats
	for _, t := range s.ListTasks(epicName) {
		stats.Add(t)
	}
	return stats
}
