package model

// Task statuses with special meaning. Any other value, including "", is open.
const (
	TaskStatusOpen      = "open"
	TaskStatusClosed    = "closed"
	TaskStatusCompleted = "completed"
)

// Task is a numbered markdown file inside an epic directory.
type Task struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	EpicName     string   `json:"epic_name" yaml:"epic_name"`
	Status       string   `json:"status" yaml:"status"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
	Parallel     bool     `json:"parallel,omitempty" yaml:"parallel,omitempty"`
	FilePath     string   `json:"file_path" yaml:"file_path"`
}

// IsClosed reports whether the task is finished.
func (t Task) IsClosed() bool {
	return IsClosedStatus(t.Status)
}

// IsClosedStatus reports whether a task status counts as closed.
func IsClosedStatus(status string) bool {
	return status == TaskStatusClosed || status == TaskStatusCompleted
}

// BlockedTask is an open task with dependencies, annotated with the subset of
// those dependencies that are still open or missing. OpenDependencies may be
// empty when every dependency has already closed.
type BlockedTask struct {
	Task             `yaml:",inline"`
	OpenDependencies []string `json:"open_dependencies" yaml:"open_dependencies"`
}

// TaskStats counts tasks by state.
type TaskStats struct {
	Total     int `json:"total" yaml:"total"`
	Open      int `json:"open" yaml:"open"`
	Closed    int `json:"closed" yaml:"closed"`
	Blocked   int `json:"blocked" yaml:"blocked"`
	Available int `json:"available" yaml:"available"`
}

// Add folds t into the stats. Open tasks with any dependency count as
// blocked, the rest as available.
func (s *TaskStats) Add(t Task) {
	s.Total++
	switch {
	case t.IsClosed():
		s.Closed++
	case len(t.Dependencies) > 0:
		s.Open++
		s.Blocked++
	default:
		s.Open++
		s.Available++
	}
}

// Completion returns the closed share as a floored percentage.
func (s TaskStats) Completion() int {
	return Completion(s.Closed, s.Total)
}

// Completion returns floor(closed*100/total), or 0 when total is 0.
func Completion(closed, total int) int {
	if total <= 0 {
		return 0
	}
	return closed * 100 / total
}
