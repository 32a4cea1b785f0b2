// Package store reads PRDs, epics and tasks from a .claude directory tree.
// Every call goes back to disk; nothing is cached between queries. Missing or
// unreadable files and directories degrade to empty or default values.
package store

import (
	"cmp"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/oskar-dragon/ccflow/internal/frontmatter"
	"github.com/oskar-dragon/ccflow/internal/model"
)

// Directory and file names under the root.
const (
	PrdsDir      = "prds"
	EpicsDir     = "epics"
	RulesDir     = "rules"
	EpicFileName = "epic.md"
)

var taskFileRe = regexp.MustCompile(`^\d+\.md$`)

// IsTaskFile reports whether name looks like a task file ("digits.md").
func IsTaskFile(name string) bool {
	return taskFileRe.MatchString(name)
}

// Store is a read-only view over one .claude root.
type Store struct {
	root string
}

// New returns a store rooted at root (normally ".claude").
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the directory the store reads from.
func (s *Store) Root() string { return s.root }

// PrdsDir returns the PRDs root.
func (s *Store) PrdsDir() string { return filepath.Join(s.root, PrdsDir) }

// EpicsDir returns the epics root.
func (s *Store) EpicsDir() string { return filepath.Join(s.root, EpicsDir) }

// EpicDir returns the directory of the named epic.
func (s *Store) EpicDir(name string) string { return filepath.Join(s.root, EpicsDir, name) }

// ReadDir lists dir in name order, logging and returning nil when it cannot
// be read.
func ReadDir(dir string) []os.DirEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		slog.Debug("read directory", "dir", dir, "err", err)
		return nil
	}
	return entries
}

// LoadPrd builds a PRD record from path. It never fails: an unreadable file
// yields a record holding only defaults keyed by the file name.
func (s *Store) LoadPrd(path string) model.Prd {
	fileName := strings.TrimSuffix(filepath.Base(path), ".md")
	prd := model.Prd{
		Name:        fileName,
		FileName:    fileName,
		Description: model.DefaultPrdDescription,
		Status:      model.DefaultPrdStatus,
		FilePath:    path,
	}
	content, ok := frontmatter.ReadFile(path)
	if !ok {
		return prd
	}
	if v := frontmatter.ExtractField(content, "name"); v != "" {
		prd.Name = v
	}
	if v := frontmatter.ExtractField(content, "description"); v != "" {
		prd.Description = v
	}
	if v := frontmatter.ExtractField(content, "status"); v != "" {
		prd.Status = v
	}
	return prd
}

// ListPrds returns every *.md file directly under the PRDs root.
func (s *Store) ListPrds() []model.Prd {
	prds := []model.Prd{}
	dir := s.PrdsDir()
	for _, e := range ReadDir(dir) {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		prds = append(prds, s.LoadPrd(filepath.Join(dir, e.Name())))
	}
	return prds
}

// EpicMetadata reads epic.md inside dir. When epic.md cannot be read the
// record carries the directory name, zero tasks and blank fields.
func (s *Store) EpicMetadata(dir string) model.Epic {
	dirName := filepath.Base(dir)
	epic := model.Epic{
		Name:     dirName,
		DirName:  dirName,
		Progress: model.DefaultEpicProgress,
		FilePath: filepath.Join(dir, EpicFileName),
	}
	content, ok := frontmatter.ReadFile(epic.FilePath)
	if !ok {
		return epic
	}
	if v := frontmatter.ExtractField(content, "name"); v != "" {
		epic.Name = v
	}
	if v := frontmatter.ExtractField(content, "progress"); v != "" {
		epic.Progress = v
	}
	epic.Status = frontmatter.ExtractField(content, "status")
	epic.GitHub = frontmatter.ExtractField(content, "github")
	epic.GitHubIssueNumber = model.IssueNumberFromURL(epic.GitHub)
	epic.Created = frontmatter.ExtractField(content, "created")
	epic.TaskCount = len(taskFiles(dir))
	return epic
}

// EpicNames returns the names of all epic subdirectories, with or without an
// epic.md.
func (s *Store) EpicNames() []string {
	names := []string{}
	for _, e := range ReadDir(s.EpicsDir()) {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	return names
}

// EpicExists reports whether the named epic has a readable epic.md.
func (s *Store) EpicExists(name string) bool {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return false
	}
	_, ok := frontmatter.ReadFile(filepath.Join(s.EpicDir(name), EpicFileName))
	return ok
}

// ListEpics returns every epic directory whose epic.md is readable.
func (s *Store) ListEpics() []model.Epic {
	epics := []model.Epic{}
	for _, name := range s.EpicNames() {
		if !s.EpicExists(name) {
			continue
		}
		epics = append(epics, s.EpicMetadata(s.EpicDir(name)))
	}
	return epics
}

// taskFiles returns the task file names in dir in directory order.
func taskFiles(dir string) []string {
	var files []string
	for _, e := range ReadDir(dir) {
		if !e.IsDir() && IsTaskFile(e.Name()) {
			files = append(files, e.Name())
		}
	}
	return files
}

func loadTask(dir, epicName, file string) model.Task {
	path := filepath.Join(dir, file)
	task := model.Task{
		ID:           strings.TrimSuffix(file, ".md"),
		EpicName:     epicName,
		Dependencies: []string{},
		FilePath:     path,
	}
	content, ok := frontmatter.ReadFile(path)
	if !ok {
		return task
	}
	task.Name = frontmatter.ExtractField(content, "name")
	task.Status = frontmatter.ExtractField(content, "status")
	task.Dependencies = frontmatter.ParseDependencies(content)
	task.Parallel = frontmatter.ExtractField(content, "parallel") == "true"
	return task
}

// compareIDs orders digit-only ids by numeric value without overflowing on
// long ids.
func compareIDs(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

// ListTasks returns the tasks of the named epic sorted by numeric id.
func (s *Store) ListTasks(epicName string) []model.Task {
	dir := s.EpicDir(epicName)
	tasks := []model.Task{}
	for _, f := range taskFiles(dir) {
		tasks = append(tasks, loadTask(dir, epicName, f))
	}
	slices.SortStableFunc(tasks, func(a, b model.Task) int { return compareIDs(a.ID, b.ID) })
	return tasks
}
